package dto

import (
	"time"

	"helix_backend/internals/features/content/projects/model"
)

// ============================
// Response DTO
// ============================

type ProjectDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	ServiceDetails string    `json:"service_details"`
	Image          string    `json:"image"`
	Description    string    `json:"description"`
	CompletedDate  string    `json:"completed_date"`
	CreatedAt      time.Time `json:"created_at"`
}

// ============================
// Create & Update Request DTO
// ============================

type SaveProjectRequest struct {
	// A client-side temporary id (prefix "new_") routes to the insert path and
	// is never persisted.
	ID             string `json:"id"`
	Name           string `json:"name" validate:"required,min=2"`
	Category       string `json:"category" validate:"required,oneof=Cerakote Rebuild Maintenance Custom"`
	ServiceDetails string `json:"service_details"`
	Image          string `json:"image"`
	Description    string `json:"description"`
	CompletedDate  string `json:"completed_date"`
}

// ============================
// Converter
// ============================

func ToProjectDTO(m model.ProjectModel) ProjectDTO {
	return ProjectDTO{
		ID:             m.ID.String(),
		Name:           m.Name,
		Category:       m.Category,
		ServiceDetails: m.ServiceDetails,
		Image:          m.Image,
		Description:    m.Description,
		CompletedDate:  m.CompletedDate,
		CreatedAt:      m.CreatedAt,
	}
}
