package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/backend/internal/models"
	"github.com/recipebox/backend/internal/testhelpers"
	"github.com/recipebox/backend/internal/types"
)

func TestRegister(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	user, err := svc.Register(context.Background(), "chef1", "chef1@example.com", "secret123", "secret123", "")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "chef1", user.Username)
	assert.Equal(t, "chef1@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())

	// The credential hash never appears in the serialized user.
	body, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), user.PasswordHash)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register(context.Background(), "chef1", "chef1@example.com", "secret123", "secret123", "")
	require.NoError(t, err)

	// Same username, different email.
	_, err = svc.Register(context.Background(), "chef1", "other@example.com", "secret123", "secret123", "")
	assert.ErrorIs(t, err, ErrDuplicateUser)

	// Same email, different username.
	_, err = svc.Register(context.Background(), "chef2", "chef1@example.com", "secret123", "secret123", "")
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

func TestRegisterValidation(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register(context.Background(), "chef1", "chef1@example.com", "12345", "12345", "")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	_, err = svc.Register(context.Background(), "chef1", "chef1@example.com", "secret123", "different", "")
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	_, err = svc.Register(context.Background(), "", "chef1@example.com", "secret123", "secret123", "")
	assert.ErrorIs(t, err, ErrMissingFields)

	// None of the rejected registrations wrote a row.
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLogin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	_, err := svc.Register(context.Background(), "chef1", "chef1@example.com", "secret123", "secret123", "")
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "chef1", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "chef1", user.Username)

	_, err = svc.Login(context.Background(), "chef1", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenRoundTrip(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	user := testhelpers.CreateTestUser(t, db, "chef1", "chef1@example.com")

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "chef1", claims.Username)
}

func TestValidateTokenRejectsBadSignature(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	user := testhelpers.CreateTestUser(t, db, "chef1", "chef1@example.com")

	other := NewAuthService(db, "other-secret")
	token, err := other.GenerateToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAuthService(db, "test-secret")

	claims := types.TokenClaims{
		UserID:   1,
		Username: "chef1",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(expired)
	assert.Error(t, err)
}
