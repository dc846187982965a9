package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/srinipusuluri/sfdc-adminX/internal/response"
	"github.com/srinipusuluri/sfdc-adminX/internal/types/domain"
	"github.com/srinipusuluri/sfdc-adminX/internal/types/dto"
)

type Chat interface {
	HandleCommand(ctx context.Context, sessionID uuid.UUID, command string) string
	History(ctx context.Context, sessionID uuid.UUID) ([]dto.ChatTurn, error)
}

type HealthChecker interface {
	Health(ctx context.Context) (int, error)
}

type Validator interface {
	Validate(i interface{}) error
}

type ChatHandler struct {
	chat      Chat
	health    HealthChecker
	validator Validator
}

func NewChatHandler(chat Chat, health HealthChecker, validator Validator) *ChatHandler {
	return &ChatHandler{chat: chat, health: health, validator: validator}
}

func (h *ChatHandler) Command(c *gin.Context) {
	var req dto.ChatCommandRequest
	if err := c.BindJSON(&req); err != nil {
		log.Logger.Warn().Err(err).Msg("failed to bind json")
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.validator.Validate(req); err != nil {
		log.Logger.Warn().Err(err).Msg("validation error")
		response.BadRequest(c, fmt.Sprintf("validation error: %s", err.Error()))
		return
	}

	reply := h.chat.HandleCommand(c.Request.Context(), req.SessionID, req.Command)

	c.JSON(http.StatusOK, dto.ChatCommandResponse{Reply: reply})
}

func (h *ChatHandler) GetHistory(c *gin.Context) {
	raw := c.Query("session_id")
	if raw == "" {
		response.BadRequest(c, "missing query param 'session_id'")
		return
	}

	sessionID, err := uuid.Parse(raw)
	if err != nil {
		response.BadRequest(c, "invalid session_id")
		return
	}

	turns, err := h.chat.History(c.Request.Context(), sessionID)
	if err != nil {
		log.Logger.Error().Err(err).Str("session_id", raw).Msg("failed to get chat history")
		response.InternalServerError(c)
		return
	}

	c.JSON(http.StatusOK, dto.ChatHistoryResponse{SessionID: sessionID, Turns: turns})
}

// GetFields lists the User fields an update command may target.
func (h *ChatHandler) GetFields(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": domain.UpdatableUserFields})
}

func (h *ChatHandler) GetHealth(c *gin.Context) {
	count, err := h.health.Health(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Healthy: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{Healthy: true, UserCount: count})
}
