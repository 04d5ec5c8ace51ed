package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenPayload captures the data available when minting a JWT.
type TokenPayload struct {
	UserID uuid.UUID
	Name   string
	Email  string
}

// Claims represents the typed JWT carried in the auth cookie.
type Claims struct {
	UserID uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}
