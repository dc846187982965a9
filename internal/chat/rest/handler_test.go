package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/srinipusuluri/sfdc-adminX/internal/types/dto"
	"github.com/srinipusuluri/sfdc-adminX/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChat struct {
	reply      string
	turns      []dto.ChatTurn
	historyErr error

	lastSession uuid.UUID
	lastCommand string
}

func (s *stubChat) HandleCommand(_ context.Context, sessionID uuid.UUID, command string) string {
	s.lastSession = sessionID
	s.lastCommand = command
	return s.reply
}

func (s *stubChat) History(_ context.Context, _ uuid.UUID) ([]dto.ChatTurn, error) {
	return s.turns, s.historyErr
}

type stubHealth struct {
	count int
	err   error
}

func (s *stubHealth) Health(_ context.Context) (int, error) {
	return s.count, s.err
}

func setupRouter(chat *stubChat, health *stubHealth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewChatHandler(chat, health, validator.New())

	r := gin.New()
	r.POST("/api/chat/command", h.Command)
	r.GET("/api/chat/history", h.GetHistory)
	r.GET("/api/fields", h.GetFields)
	r.GET("/api/health", h.GetHealth)
	return r
}

func TestCommand(t *testing.T) {
	chat := &stubChat{reply: "User deactivated successfully!"}
	r := setupRouter(chat, &stubHealth{})

	sessionID := uuid.New()
	body, _ := json.Marshal(dto.ChatCommandRequest{
		SessionID: sessionID,
		Command:   "Deactivate the user john@example.com",
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/chat/command", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ChatCommandResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User deactivated successfully!", resp.Reply)
	assert.Equal(t, sessionID, chat.lastSession)
	assert.Equal(t, "Deactivate the user john@example.com", chat.lastCommand)
}

func TestCommandInvalidBody(t *testing.T) {
	r := setupRouter(&stubChat{}, &stubHealth{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/chat/command", bytes.NewBufferString("{broken"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommandMissingFields(t *testing.T) {
	r := setupRouter(&stubChat{}, &stubHealth{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/chat/command", bytes.NewBufferString(`{"command":""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation error")
}

func TestGetHistory(t *testing.T) {
	sessionID := uuid.New()
	chat := &stubChat{turns: []dto.ChatTurn{
		{ID: uuid.New(), Role: "user", Content: "hello"},
		{ID: uuid.New(), Role: "assistant", Content: "hi"},
	}}
	r := setupRouter(chat, &stubHealth{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/chat/history?session_id="+sessionID.String(), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ChatHistoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, sessionID, resp.SessionID)
	assert.Len(t, resp.Turns, 2)
}

func TestGetHistoryMissingSessionID(t *testing.T) {
	r := setupRouter(&stubChat{}, &stubHealth{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/chat/history", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHistoryServiceError(t *testing.T) {
	chat := &stubChat{historyErr: errors.New("boom")}
	r := setupRouter(chat, &stubHealth{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/chat/history?session_id="+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetFields(t *testing.T) {
	r := setupRouter(&stubChat{}, &stubHealth{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/fields", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Fields []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "Department")
	assert.Contains(t, resp.Fields, "Phone")
}

func TestGetHealth(t *testing.T) {
	r := setupRouter(&stubChat{}, &stubHealth{count: 42})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Healthy)
	assert.Equal(t, 42, resp.UserCount)
}

func TestGetHealthUnavailable(t *testing.T) {
	r := setupRouter(&stubChat{}, &stubHealth{err: errors.New("no connection")})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
