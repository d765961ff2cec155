package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRoleModel is the access record for one authenticated identity. One row
// per identity; deleting the row revokes access without touching the identity.
type UserRoleModel struct {
	UserID      uuid.UUID     `gorm:"column:user_id;primaryKey;type:uuid" json:"user_id"`
	Email       string        `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Role        string        `gorm:"column:role;type:varchar(20);not null;default:'editor'" json:"role"`
	Permissions PermissionSet `gorm:"column:permissions;type:jsonb;not null;default:'{}'" json:"permissions"`
	CreatedAt   time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}
