package dto

import (
	"time"

	"helix_backend/internals/features/content/messages/model"
)

type ContactMessageRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

type MessageIDsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

type MessageStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=unread read"`
}

type MessageDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	IsArchived bool      `json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToMessageDTO(m model.MessageModel) MessageDTO {
	return MessageDTO{
		ID:         m.ID.String(),
		Name:       m.Name,
		Email:      m.Email,
		Message:    m.Message,
		Status:     m.Status,
		IsArchived: m.IsArchived,
		CreatedAt:  m.CreatedAt,
	}
}
