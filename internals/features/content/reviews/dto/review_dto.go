package dto

import (
	"helix_backend/internals/features/content/reviews/model"
)

type ReviewDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

type SaveReviewRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name" validate:"required,min=2"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

// ReviewSettingsRequest toggles rider-review visibility on the public site.
type ReviewSettingsRequest struct {
	ShowReviews bool `json:"show_reviews"`
}

func ToReviewDTO(m model.ReviewModel) ReviewDTO {
	return ReviewDTO{
		ID:     m.ID.String(),
		Name:   m.Name,
		Rating: m.Rating,
		Text:   m.Text,
		Date:   m.Date,
	}
}
