package dto

import (
	"time"

	"helix_backend/internals/features/content/cerakote/model"
)

type SaveProductRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required,max=150"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	FinishCode  string `json:"finish_code" validate:"omitempty,max=20"`
}

type SaveFinishRequest struct {
	ID       string `json:"id"`
	Code     string `json:"code" validate:"required,max=20"`
	Name     string `json:"name" validate:"required,max=100"`
	HexColor string `json:"hex_color" validate:"omitempty,hexcolor"`
}

type ProductDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	FinishCode  string    `json:"finish_code"`
	CreatedAt   time.Time `json:"created_at"`
}

type FinishDTO struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	HexColor string `json:"hex_color"`
}

func ToProductDTO(p model.CerakoteProductModel) ProductDTO {
	return ProductDTO{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		FinishCode:  p.FinishCode,
		CreatedAt:   p.CreatedAt,
	}
}

func ToFinishDTO(f model.CerakoteFinishModel) FinishDTO {
	return FinishDTO{
		ID:       f.ID.String(),
		Code:     f.Code,
		Name:     f.Name,
		HexColor: f.HexColor,
	}
}
