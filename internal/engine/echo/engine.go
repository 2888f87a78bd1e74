// Package echo provides a testing engine that echoes back the last user turn.
// It implements the domain.Engine interface without loading a model,
// providing deterministic output for testing and development purposes.
package echo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davidbz/synexis/internal/domain"
	"github.com/davidbz/synexis/internal/engine"
	"github.com/davidbz/synexis/internal/observability"
)

// Engine implements domain.Engine by repeating the prompt's final user turn.
// maxTokens is treated as a word budget.
type Engine struct {
	profile    engine.Profile
	chunkDelay time.Duration
}

// Option configures an echo engine.
type Option func(*Engine)

// WithChunkDelay pauses before each streamed word.
func WithChunkDelay(delay time.Duration) Option {
	return func(e *Engine) {
		e.chunkDelay = delay
	}
}

// New creates an echo engine for the given chat profile.
func New(profile engine.Profile, opts ...Option) *Engine {
	e := &Engine{
		profile: profile,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Template returns the chat template of the profile.
func (e *Engine) Template() string {
	return e.profile.Template
}

// Tokens returns the special tokens of the profile.
func (e *Engine) Tokens() map[string]string {
	return e.profile.TokensCopy()
}

// Complete returns the whole echo at once.
func (e *Engine) Complete(ctx context.Context, task *domain.GenerationTask) (domain.Generation, error) {
	if task == nil {
		return domain.Generation{}, errors.New("task cannot be nil")
	}

	if err := ctx.Err(); err != nil {
		return domain.Generation{}, err
	}

	words, finishReason := e.reply(task)

	observability.FromContext(ctx).Debug("echo completed",
		observability.Int("words", len(words)),
		observability.String("finish_reason", finishReason))

	return domain.Generation{
		Text:         strings.Join(words, ""),
		FinishReason: finishReason,
	}, nil
}

// CompleteStream returns the echo one word per fragment.
func (e *Engine) CompleteStream(ctx context.Context, task *domain.GenerationTask) (domain.EngineStream, error) {
	if task == nil {
		return nil, errors.New("task cannot be nil")
	}

	words, _ := e.reply(task)

	observability.FromContext(ctx).Debug("streaming echo", observability.Int("words", len(words)))

	return &stream{
		ctx:   ctx,
		words: words,
		delay: e.chunkDelay,
	}, nil
}

// reply splits the echo into words that concatenate back to the full text,
// trimmed to the word budget.
func (e *Engine) reply(task *domain.GenerationTask) ([]string, string) {
	text := lastUserTurn(task.Prompt(), e.profile.Tokens)
	if count := task.MediaCount(); count > 0 {
		text = strings.TrimSpace(fmt.Sprintf("[%d media] %s", count, text))
	}

	if text == "" {
		return nil, domain.FinishReasonStop
	}

	words := strings.SplitAfter(text, " ")
	if limit := task.MaxTokens(); limit > 0 && len(words) > limit {
		return words[:limit], domain.FinishReasonLength
	}

	return words, domain.FinishReasonStop
}

// lastUserTurn extracts the text of the final user turn from a rendered prompt.
// Without turn markers the whole prompt is echoed.
func lastUserTurn(prompt string, tokens map[string]string) string {
	start := tokens[engine.TokenStartOfTurn]
	end := tokens[engine.TokenEndOfTurn]

	turn := prompt
	if start != "" {
		marker := start + "user\n"
		if i := strings.LastIndex(prompt, marker); i >= 0 {
			turn = prompt[i+len(marker):]
			if end != "" {
				if j := strings.Index(turn, end); j >= 0 {
					turn = turn[:j]
				}
			}
		}
	}

	if mediaMarker := tokens[engine.TokenMediaMarker]; mediaMarker != "" {
		turn = strings.ReplaceAll(turn, mediaMarker, "")
	}

	return strings.TrimSpace(turn)
}

type stream struct {
	ctx     context.Context //nolint:containedctx // stream is bound to the request context
	words   []string
	pos     int
	current string
	delay   time.Duration
	err     error
}

func (s *stream) Next() bool {
	if s.err != nil || s.pos >= len(s.words) {
		return false
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-s.ctx.Done():
			s.err = s.ctx.Err()
			return false
		}
	} else if err := s.ctx.Err(); err != nil {
		s.err = err
		return false
	}

	s.current = s.words[s.pos]
	s.pos++
	return true
}

func (s *stream) Current() string {
	return s.current
}

func (s *stream) Err() error {
	return s.err
}

func (s *stream) Close() error {
	s.pos = len(s.words)
	return nil
}
