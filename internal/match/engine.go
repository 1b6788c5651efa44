package match

import (
	"fmt"
	"log/slog"

	"artlink/internal/lexicon"
	"artlink/internal/logging"
)

// Engine scores record/asset pairs and resolves assignments under one
// policy and lexicon. Engines are safe for concurrent resolution passes:
// all per-pass state lives in local values.
type Engine struct {
	policy Policy
	lex    *lexicon.Lexicon
	logger *slog.Logger
}

// New constructs an Engine. Malformed policy values are the only failure
// mode; a nil lexicon falls back to the built-in tables and a nil logger
// discards output.
func New(policy Policy, lex *lexicon.Lexicon, logger *slog.Logger) (*Engine, error) {
	policy = policy.normalized()
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Engine{
		policy: policy,
		lex:    lex,
		logger: logging.NewComponentLogger(logger, "match-engine"),
	}, nil
}

// Policy returns the normalized policy in effect.
func (e *Engine) Policy() Policy {
	return e.policy
}
