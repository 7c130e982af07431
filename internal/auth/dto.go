package auth

import "github.com/angelmondragon/mentormatch-backend/pkg/enums"

// SignupRequest is the registration payload.
type SignupRequest struct {
	Email    string         `json:"email" validate:"required,email"`
	Password string         `json:"password" validate:"required,min=1"`
	Name     string         `json:"name" validate:"required"`
	Role     enums.UserRole `json:"role" validate:"required,oneof=mentor mentee"`
}

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the bearer token produced by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}
