package dto

import (
	"time"

	"helix_backend/internals/features/team/model"
)

// ============================
// Request DTOs
// ============================

type CreateTeamMemberRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=editor admin super_admin"`
}

type UpdateUserRoleRequest struct {
	Role        string              `json:"role" validate:"required,oneof=editor admin super_admin"`
	Permissions model.PermissionSet `json:"permissions"`
}

// ============================
// Response DTO
// ============================

type UserRoleDTO struct {
	UserID      string              `json:"user_id"`
	Email       string              `json:"email"`
	Role        string              `json:"role"`
	Permissions model.PermissionSet `json:"permissions"`
	CreatedAt   time.Time           `json:"created_at"`
}

func ToUserRoleDTO(m model.UserRoleModel) UserRoleDTO {
	return UserRoleDTO{
		UserID:      m.UserID.String(),
		Email:       m.Email,
		Role:        m.Role,
		Permissions: m.Permissions,
		CreatedAt:   m.CreatedAt,
	}
}
