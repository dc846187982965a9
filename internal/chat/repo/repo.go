package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/srinipusuluri/sfdc-adminX/internal/types/domain"
	"github.com/srinipusuluri/sfdc-adminX/pkg/errutils"
)

// ChatRepo persists the append-only conversation log. Turns are only ever
// inserted and read back in order; nothing updates or deletes them.
type ChatRepo struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *ChatRepo {
	return &ChatRepo{db: db}
}

func (r *ChatRepo) AppendTurn(ctx context.Context, turn domain.ChatTurn) error {
	query := `
		INSERT INTO chat_turns (id, session_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`

	if _, err := r.db.Exec(ctx, query, turn.ID, turn.SessionID, turn.Role, turn.Content, turn.CreatedAt); err != nil {
		return errutils.Wrap("failed to insert chat turn", err)
	}

	return nil
}

func (r *ChatRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.ChatTurn, error) {
	query := `
		SELECT id, session_id, role, content, created_at
		FROM chat_turns
		WHERE session_id = $1
		ORDER BY created_at, id;
	`

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, errutils.Wrap("failed to query chat turns", err)
	}
	defer rows.Close()

	var turns []domain.ChatTurn
	for rows.Next() {
		var t domain.ChatTurn
		if err := rows.Scan(&t.ID, &t.SessionID, &t.Role, &t.Content, &t.CreatedAt); err != nil {
			return nil, errutils.Wrap("failed to scan chat turn", err)
		}
		turns = append(turns, t)
	}

	if err := rows.Err(); err != nil {
		return nil, errutils.Wrap("rows iteration error", err)
	}

	return turns, nil
}
