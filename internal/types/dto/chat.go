package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatCommandRequest struct {
	SessionID uuid.UUID `json:"session_id" validate:"required"`
	Command   string    `json:"command" validate:"required"`
}

type ChatCommandResponse struct {
	Reply string `json:"reply"`
}

type ChatTurn struct {
	ID        uuid.UUID `json:"turn_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatHistoryResponse struct {
	SessionID uuid.UUID  `json:"session_id"`
	Turns     []ChatTurn `json:"turns"`
}

type HealthResponse struct {
	Healthy   bool   `json:"healthy"`
	UserCount int    `json:"user_count,omitempty"`
	Error     string `json:"error,omitempty"`
}
