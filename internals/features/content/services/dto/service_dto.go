package dto

import (
	"helix_backend/internals/features/content/services/model"
)

type ServiceDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsSpecialty bool   `json:"is_specialty"`
}

type SaveServiceRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required,min=2"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsSpecialty bool   `json:"is_specialty"`
}

func ToServiceDTO(m model.ServiceModel) ServiceDTO {
	return ServiceDTO{
		ID:          m.ID.String(),
		Title:       m.Title,
		Description: m.Description,
		Icon:        m.Icon,
		IsSpecialty: m.IsSpecialty,
	}
}
