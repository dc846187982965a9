package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/srinipusuluri/sfdc-adminX/internal/interpreter"
	"github.com/srinipusuluri/sfdc-adminX/internal/salesforce"
	"github.com/srinipusuluri/sfdc-adminX/internal/types/domain"
	"github.com/srinipusuluri/sfdc-adminX/internal/types/dto"
	"github.com/srinipusuluri/sfdc-adminX/pkg/errutils"
)

const rephraseMessage = "I couldn't understand your command. Please try rephrasing or using one of the example formats:\n" +
	"- Create user John Doe john@email.com\n" +
	"- Update user john@email.com to have last name Smith\n" +
	"- Deactivate user john@email.com"

type Parser interface {
	Parse(ctx context.Context, command string) domain.Command
}

type Executor interface {
	CreateUser(ctx context.Context, cmd domain.Command) (string, error)
	UpdateUser(ctx context.Context, id string, updates map[string]string) error
	DeactivateUser(ctx context.Context, id string) error
	ResolveUserID(ctx context.Context, identifier string) (string, error)
	GetUserDetails(ctx context.Context, identifier string) (domain.SalesforceUser, error)
}

type History interface {
	AppendTurn(ctx context.Context, turn domain.ChatTurn) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.ChatTurn, error)
}

type Auditor interface {
	Record(message, response string)
}

// Chat runs one interpretation cycle per user utterance: model-backed parse,
// deterministic fallback, validation, then execution against Salesforce.
// Each stage runs strictly in sequence and nothing is shared between
// sessions; the conversation log is owned by the caller through its session
// ID and persisted via History.
type Chat struct {
	parser   Parser
	executor Executor
	history  History
	audit    Auditor
}

func NewChat(parser Parser, executor Executor, history History, audit Auditor) *Chat {
	return &Chat{parser: parser, executor: executor, history: history, audit: audit}
}

// HandleCommand interprets and executes one raw command, returning the
// assistant reply. Every failure mode degrades to a user-facing message;
// nothing propagates as an error, which is why there is no error return.
func (s *Chat) HandleCommand(ctx context.Context, sessionID uuid.UUID, command string) string {
	cmd := s.parser.Parse(ctx, command)

	// An empty primary result is the defined fallback trigger. A non-empty
	// but malformed result goes straight to validation instead.
	if cmd.IsEmpty() {
		if intent := interpreter.Classify(command); intent != domain.IntentUnknown {
			cmd = interpreter.ParseFallback(command, intent)
		}
	}

	var reply string
	switch {
	case cmd.IsEmpty():
		reply = rephraseMessage
	default:
		if ok, reason := interpreter.Validate(cmd); !ok {
			reply = "Invalid command format: " + reason
		} else {
			reply = s.execute(ctx, cmd)
		}
	}

	s.record(ctx, sessionID, command, reply)
	return reply
}

func (s *Chat) execute(ctx context.Context, cmd domain.Command) string {
	switch cmd.Operation {
	case domain.OperationCreateUser:
		return s.executeCreate(ctx, cmd)
	case domain.OperationUpdateUser:
		return s.executeUpdate(ctx, cmd)
	case domain.OperationDeactivateUser:
		return s.executeDeactivate(ctx, cmd)
	default:
		// Unreachable after validation; kept total anyway.
		return fmt.Sprintf("Unsupported operation: %s", cmd.Operation)
	}
}

func (s *Chat) executeCreate(ctx context.Context, cmd domain.Command) string {
	id, err := s.executor.CreateUser(ctx, cmd)
	if err != nil {
		return fmt.Sprintf("Failed to create user: %s", err)
	}

	user, err := s.executor.GetUserDetails(ctx, id)
	if err != nil {
		return fmt.Sprintf("User created successfully! ID: %s", id)
	}
	return "User created successfully!\n\n" + salesforce.FormatUserDisplay(user)
}

func (s *Chat) executeUpdate(ctx context.Context, cmd domain.Command) string {
	id, err := s.executor.ResolveUserID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Sprintf("User not found: %s", salesforce.Sanitize(cmd.UserID))
		}
		return fmt.Sprintf("Failed to update user: %s", err)
	}

	if err := s.executor.UpdateUser(ctx, id, cmd.Updates); err != nil {
		return fmt.Sprintf("Failed to update user: %s", err)
	}

	user, err := s.executor.GetUserDetails(ctx, id)
	if err != nil {
		return "User updated successfully! (could not verify updated details)"
	}

	fields := make([]string, 0, len(cmd.Updates))
	for field := range cmd.Updates {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return fmt.Sprintf(
		"Successfully updated %s %s.\nChanges applied: %s\n\n%s",
		user.FirstName, user.LastName,
		strings.Join(fields, ", "),
		salesforce.FormatUserDisplay(user),
	)
}

func (s *Chat) executeDeactivate(ctx context.Context, cmd domain.Command) string {
	id, err := s.executor.ResolveUserID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Sprintf("User not found: %s", salesforce.Sanitize(cmd.UserID))
		}
		return fmt.Sprintf("Failed to deactivate user: %s", err)
	}

	if err := s.executor.DeactivateUser(ctx, id); err != nil {
		return fmt.Sprintf("Failed to deactivate user: %s", err)
	}
	return fmt.Sprintf("User deactivated successfully! User %s has been disabled.", cmd.UserID)
}

// record appends both turns to durable history and the audit file. Failures
// here never affect the reply already produced.
func (s *Chat) record(ctx context.Context, sessionID uuid.UUID, command, reply string) {
	now := time.Now()
	turns := []domain.ChatTurn{
		{ID: uuid.New(), SessionID: sessionID, Role: domain.RoleUser, Content: command, CreatedAt: now},
		{ID: uuid.New(), SessionID: sessionID, Role: domain.RoleAssistant, Content: reply, CreatedAt: now},
	}

	for _, turn := range turns {
		if err := s.history.AppendTurn(ctx, turn); err != nil {
			log.Logger.Warn().Err(err).Str("session_id", sessionID.String()).Msg("failed to persist chat turn")
		}
	}

	s.audit.Record(command, reply)
}

func (s *Chat) History(ctx context.Context, sessionID uuid.UUID) ([]dto.ChatTurn, error) {
	const op = "service.chat.History"

	turns, err := s.history.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, errutils.Wrap(op, err)
	}

	out := make([]dto.ChatTurn, len(turns))
	for i, turn := range turns {
		out[i] = dto.ChatTurn{
			ID:        turn.ID,
			Role:      turn.Role,
			Content:   turn.Content,
			CreatedAt: turn.CreatedAt,
		}
	}
	return out, nil
}
