package dto

type ChatTurn struct {
	Role string `json:"role" validate:"required,oneof=user model"`
	Text string `json:"text" validate:"required,max=4000"`
}

type ChatRequest struct {
	Message string     `json:"message" validate:"required,max=4000"`
	History []ChatTurn `json:"history" validate:"omitempty,max=20,dive"`
}
