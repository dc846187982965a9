package interpreter

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/srinipusuluri/sfdc-adminX/internal/types/domain"
)

type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ModelParser delegates command understanding to an external language model.
// It is the primary interpretation path; the deterministic fallback takes
// over only when this parser yields the empty command.
type ModelParser struct {
	llm Completer
}

func NewModelParser(llm Completer) *ModelParser {
	return &ModelParser{llm: llm}
}

// Parse sends the fixed instruction template plus the raw command and
// expects a single JSON object back. Every failure mode — unreachable
// service, bad credentials, timeout, prose around the JSON, malformed
// JSON — folds into the empty command. An empty result is the defined
// signal that triggers fallback parsing, so no error escapes.
func (p *ModelParser) Parse(ctx context.Context, command string) domain.Command {
	reply, err := p.llm.Complete(ctx, systemPrompt, buildPrompt(command))
	if err != nil {
		log.Logger.Warn().Err(err).Msg("model parse failed, falling back")
		return domain.Command{}
	}

	var cmd domain.Command
	if err := json.Unmarshal([]byte(strings.TrimSpace(reply)), &cmd); err != nil {
		log.Logger.Warn().Err(err).Msg("model returned non-JSON reply, falling back")
		return domain.Command{}
	}

	return cmd
}
