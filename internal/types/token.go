package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims carried by a session token.
type TokenClaims struct {
	UserID   uint   `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
