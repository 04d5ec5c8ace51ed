package auth

import "github.com/ravikumar1136/sail-backend/internal/users"

// SignupRequest carries a new account registration.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest carries a credential check.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult pairs the public user shape with a freshly minted token. The
// controller turns the token into the auth cookie.
type AuthResult struct {
	User  *users.UserDTO
	Token string
}
