package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/davidbz/synexis/internal/observability"
)

// CompletionService submits tasks to the engine and shapes the results.
type CompletionService struct {
	engine Engine
	model  string
	now    func() time.Time
	newID  func() string
}

// NewCompletionService creates a completion service (DI constructor).
// model is the identifier reported in every envelope.
func NewCompletionService(engine Engine, model string) *CompletionService {
	return &CompletionService{
		engine: engine,
		model:  model,
		now:    time.Now,
		newID:  observability.GenerateCompletionID,
	}
}

// Complete blocks until the engine has generated the full output.
func (s *CompletionService) Complete(ctx context.Context, task *GenerationTask) (*CompletionResult, error) {
	if task == nil {
		return nil, errors.New("task cannot be nil")
	}

	generation, err := s.engine.Complete(ctx, task)
	if err != nil {
		return nil, wrapEngineError("complete", err)
	}

	finishReason := generation.FinishReason
	if finishReason == "" {
		finishReason = FinishReasonStop
	}

	return &CompletionResult{
		ID:      s.newID(),
		Object:  ObjectChatCompletion,
		Created: s.now().Unix(),
		Model:   s.model,
		Result: ResultChoice{
			Message: AssistantMessage{
				Role:    RoleAssistant,
				Content: generation.Text,
			},
			FinishReason: finishReason,
		},
		Usage: UnknownUsage(),
	}, nil
}

// CompleteStream starts generation and returns the token stream.
// The engine only makes progress as the caller advances the stream.
func (s *CompletionService) CompleteStream(ctx context.Context, task *GenerationTask) (*TokenStream, error) {
	if task == nil {
		return nil, errors.New("task cannot be nil")
	}

	streamCtx, cancel := context.WithCancel(ctx)

	source, err := s.engine.CompleteStream(streamCtx, task)
	if err != nil {
		cancel()
		return nil, wrapEngineError("stream", err)
	}

	return newTokenStream(source, cancel), nil
}

// TokenStream is a single-pass sequence of generated fragments.
//
//	for stream.Next() {
//		fmt.Print(stream.Current())
//	}
//	if err := stream.Err(); err != nil { ... }
//
// Closing the stream before it is exhausted cancels generation.
// A TokenStream is not safe for concurrent use.
type TokenStream struct {
	source   EngineStream
	cancel   context.CancelFunc
	current  string
	err      error
	closed   bool
	chunks   int
	onFinish func(chunks int, err error)
}

func newTokenStream(source EngineStream, cancel context.CancelFunc) *TokenStream {
	return &TokenStream{
		source: source,
		cancel: cancel,
	}
}

// Next advances to the next fragment, blocking until it is available.
// It returns false when the sequence has ended or failed.
func (s *TokenStream) Next() bool {
	if s.closed {
		return false
	}

	if !s.source.Next() {
		if err := s.source.Err(); err != nil {
			s.err = wrapEngineError("stream", err)
		}
		_ = s.Close()
		return false
	}

	s.current = s.source.Current()
	s.chunks++
	return true
}

// Current returns the fragment produced by the last call to Next.
func (s *TokenStream) Current() string {
	return s.current
}

// Err returns the terminal error, nil when the sequence ended cleanly.
func (s *TokenStream) Err() error {
	return s.err
}

// Close releases the engine stream. It is safe to call more than once.
func (s *TokenStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	s.cancel()
	closeErr := s.source.Close()

	if s.onFinish != nil {
		s.onFinish(s.chunks, s.err)
	}

	return closeErr
}

// Collect drains the stream and returns the concatenated fragments.
func (s *TokenStream) Collect() (string, error) {
	var builder strings.Builder
	for s.Next() {
		builder.WriteString(s.Current())
	}
	return builder.String(), s.Err()
}
