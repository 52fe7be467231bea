package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/backend/internal/types"
)

func TestCreateRecipeEndpoint(t *testing.T) {
	router, _, _ := setupTestRouter(t)
	token := registerUser(t, router, "chef1")

	id := createRecipe(t, router, token, "Tacos")
	assert.NotZero(t, id)

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/recipes/%d", id), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view types.RecipeView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "Tacos", view.Title)
	assert.Equal(t, "chef1", view.Author)
	assert.False(t, view.IsFavorite)
}

func TestCreateRecipeMissingFields(t *testing.T) {
	router, _, _ := setupTestRouter(t)
	token := registerUser(t, router, "chef1")

	w := doJSON(t, router, http.MethodPost, "/api/recipes", token, map[string]string{
		"title": "Only a title",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRecipeUploadsImageFirst(t *testing.T) {
	router, _, uploader := setupTestRouter(t)
	token := registerUser(t, router, "chef1")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Tacos"))
	require.NoError(t, mw.WriteField("description", "With a photo"))
	require.NoError(t, mw.WriteField("ingredients", "tortillas"))
	require.NoError(t, mw.WriteField("instructions", "Assemble."))
	part, err := mw.CreateFormFile("image", "tacos.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/recipes", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	require.Len(t, uploader.keys, 1)
	assert.Contains(t, uploader.keys[0], "recipe-images/")

	body := decodeBody(t, w)
	recipe := body["recipe"].(map[string]any)
	assert.Contains(t, recipe["image_url"], "https://images.test/recipe-images/")
}

func TestListRecipesAnnotatedPerUser(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	chef1 := registerUser(t, router, "chef1")
	recipeID := createRecipe(t, router, chef1, "Tacos")

	chef2 := registerUser(t, router, "chef2")

	w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/recipes/%d/favorite", recipeID), chef2, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var views []types.RecipeView

	// chef2 sees the recipe flagged as favorited.
	w = doJSON(t, router, http.MethodGet, "/api/recipes", chef2, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.True(t, views[0].IsFavorite)
	assert.Equal(t, "chef1", views[0].Author)

	// chef1's view of the same list is unaffected.
	w = doJSON(t, router, http.MethodGet, "/api/recipes", chef1, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.False(t, views[0].IsFavorite)
}

func TestListMyRecipes(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	chef1 := registerUser(t, router, "chef1")
	chef2 := registerUser(t, router, "chef2")
	createRecipe(t, router, chef1, "Tacos")
	createRecipe(t, router, chef2, "Soup")

	w := doJSON(t, router, http.MethodGet, "/api/my-recipes", chef1, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var recipes []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipes))
	require.Len(t, recipes, 1)
	assert.Equal(t, "Tacos", recipes[0]["title"])
}
