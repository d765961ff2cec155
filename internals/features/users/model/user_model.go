package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the credential identity behind a team member. Access is
// governed by the user_roles row, not by this record; revoking access leaves
// the identity in place.
type UserModel struct {
	ID        uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password;type:text;not null" json:"-"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
