package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatTurn struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Role      string
	Content   string
	CreatedAt time.Time
}
