package dto

import (
	"time"

	teamModel "helix_backend/internals/features/team/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginResponse carries the token plus the caller's access record so the
// admin panel can gate its tabs without a second round trip.
type LoginResponse struct {
	AccessToken string                   `json:"access_token"`
	ExpiresAt   time.Time                `json:"expires_at"`
	User        LoginUser                `json:"user"`
	Role        *teamModel.UserRoleModel `json:"role,omitempty"`
}
