package model

import (
	"time"

	"github.com/google/uuid"
)

type ServiceModel struct {
	ID          uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	// Lucide icon name rendered by the frontend.
	Icon        string    `gorm:"column:icon;type:varchar(50)" json:"icon"`
	IsSpecialty bool      `gorm:"column:is_specialty;not null;default:false" json:"is_specialty"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ServiceModel) TableName() string {
	return "services"
}
