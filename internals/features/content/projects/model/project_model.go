package model

import (
	"time"

	"github.com/google/uuid"
)

// Project categories shown in the showroom filter.
const (
	CategoryCerakote    = "Cerakote"
	CategoryRebuild     = "Rebuild"
	CategoryMaintenance = "Maintenance"
	CategoryCustom      = "Custom"
)

type ProjectModel struct {
	ID             uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name           string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Category       string    `gorm:"column:category;type:varchar(50);not null" json:"category"`
	ServiceDetails string    `gorm:"column:service_details;type:text" json:"service_details"`
	Image          string    `gorm:"column:image;type:text" json:"image"`
	Description    string    `gorm:"column:description;type:text" json:"description"`
	CompletedDate  string    `gorm:"column:completed_date;type:varchar(50)" json:"completed_date"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProjectModel) TableName() string {
	return "projects"
}
