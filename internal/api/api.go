package api

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/recipebox/backend/internal/middleware"
	"github.com/recipebox/backend/internal/service"
)

// maxUploadBytes limits image uploads to 5 MiB.
const maxUploadBytes = 5 << 20

// ImageUploader relays an in-memory image buffer to blob storage and
// returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, data []byte, contentType, key string) (string, error)
}

// HealthCheck reports service status.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "RecipeBox API is running",
		"status":  "online",
	})
}

// RegisterRoutes wires all API routes. authLimiter may be nil when Redis is
// not configured; rate limiting is then skipped.
func RegisterRoutes(
	router *gin.Engine,
	auth *service.AuthService,
	profiles *service.ProfileService,
	recipes *service.RecipeService,
	favorites *service.FavoriteService,
	uploader ImageUploader,
	authLimiter *middleware.RateLimiter,
) {
	router.GET("/", HealthCheck)

	authHandler := NewAuthHandler(auth, uploader)
	profileHandler := NewProfileHandler(profiles, uploader)
	recipeHandler := NewRecipeHandler(recipes, uploader)
	favoriteHandler := NewFavoriteHandler(favorites)

	api := router.Group("/api")

	public := api.Group("")
	if authLimiter != nil {
		public.Use(authLimiter.Middleware(func(c *gin.Context) string {
			return c.ClientIP()
		}))
	}
	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(auth))
	{
		protected.GET("/verify-token", authHandler.VerifyToken)
		protected.GET("/profile", profileHandler.GetProfile)
		protected.PUT("/profile", profileHandler.UpdateProfile)
		protected.GET("/recipes", recipeHandler.ListRecipes)
		protected.POST("/recipes", recipeHandler.CreateRecipe)
		protected.GET("/my-recipes", recipeHandler.ListMyRecipes)
		protected.GET("/recipes/:id", recipeHandler.GetRecipe)
		protected.POST("/recipes/:id/favorite", favoriteHandler.AddFavorite)
		protected.DELETE("/recipes/:id/favorite", favoriteHandler.RemoveFavorite)
		protected.GET("/recipes/:id/is-favorite", favoriteHandler.CheckFavorite)
		protected.GET("/favorites", favoriteHandler.ListFavorites)
	}
}

// writeError maps store errors to HTTP statuses. Validation and conflict
// errors carry their message; anything unexpected is logged server-side and
// reported as an opaque 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrDuplicateUser),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAlreadyFavorited),
		errors.Is(err, service.ErrNotFavorited):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// recipeIDParam parses the :id path parameter, writing a 400 on failure.
func recipeIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return 0, false
	}
	return uint(id), true
}

// formImage reads an optional uploaded image from the multipart form.
// Returns ok=false when the request carries no file under that field.
func formImage(c *gin.Context, field string) (data []byte, contentType, filename string, ok bool, err error) {
	fileHeader, ferr := c.FormFile(field)
	if ferr != nil {
		// Not a multipart request or no file part; both mean no image.
		return nil, "", "", false, nil
	}
	if fileHeader.Size > maxUploadBytes {
		return nil, "", "", false, errors.New("image exceeds the 5MB upload limit")
	}

	f, ferr := fileHeader.Open()
	if ferr != nil {
		return nil, "", "", false, ferr
	}
	defer func(f multipart.File) { _ = f.Close() }(f)

	data, ferr = io.ReadAll(f)
	if ferr != nil {
		return nil, "", "", false, ferr
	}

	return data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename, true, nil
}
