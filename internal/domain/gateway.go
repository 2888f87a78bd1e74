package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/davidbz/synexis/internal/observability"
)

const (
	modeSync   = "sync"
	modeStream = "stream"

	statusOK    = "ok"
	statusError = "error"
)

// GatewayService orchestrates chat completions: render, build, complete.
type GatewayService struct {
	engine     Engine
	renderer   PromptRenderer
	builder    *RequestBuilder
	completion *CompletionService
}

// NewGatewayService creates a new gateway service (DI constructor).
func NewGatewayService(
	engine Engine,
	renderer PromptRenderer,
	builder *RequestBuilder,
	completion *CompletionService,
) *GatewayService {
	return &GatewayService{
		engine:     engine,
		renderer:   renderer,
		builder:    builder,
		completion: completion,
	}
}

// CreateCompletion handles a non-streaming completion request.
func (g *GatewayService) CreateCompletion(
	ctx context.Context,
	req *CompletionRequest,
) (*CompletionResult, error) {
	task, err := g.prepare(ctx, req)
	if err != nil {
		observability.CompletionsTotal.WithLabelValues(modeSync, statusError).Inc()
		return nil, err
	}

	logger := observability.FromContext(ctx)

	start := time.Now()
	result, err := g.completion.Complete(ctx, task)
	observability.EngineLatency.WithLabelValues(modeSync).Observe(time.Since(start).Seconds())
	if err != nil {
		observability.CompletionsTotal.WithLabelValues(modeSync, statusError).Inc()
		logger.Error("completion failed", observability.Error(err))
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	observability.CompletionsTotal.WithLabelValues(modeSync, statusOK).Inc()
	logger.Info("completion succeeded",
		observability.String("completion_id", result.ID),
		observability.String("finish_reason", result.Result.FinishReason),
		observability.Int("content_length", len(result.Result.Message.Content)),
		observability.Duration("elapsed", time.Since(start)))

	return result, nil
}

// StreamCompletion handles a streaming completion request.
// The caller must drain or Close the returned stream.
func (g *GatewayService) StreamCompletion(
	ctx context.Context,
	req *CompletionRequest,
) (*TokenStream, error) {
	task, err := g.prepare(ctx, req)
	if err != nil {
		observability.CompletionsTotal.WithLabelValues(modeStream, statusError).Inc()
		return nil, err
	}

	logger := observability.FromContext(ctx)

	start := time.Now()
	stream, err := g.completion.CompleteStream(ctx, task)
	if err != nil {
		observability.CompletionsTotal.WithLabelValues(modeStream, statusError).Inc()
		logger.Error("failed to start stream", observability.Error(err))
		return nil, fmt.Errorf("failed to start stream: %w", err)
	}

	observability.ActiveStreams.Inc()
	stream.onFinish = func(chunks int, streamErr error) {
		observability.ActiveStreams.Dec()
		observability.StreamChunksTotal.Add(float64(chunks))
		observability.EngineLatency.WithLabelValues(modeStream).Observe(time.Since(start).Seconds())

		if streamErr != nil {
			observability.CompletionsTotal.WithLabelValues(modeStream, statusError).Inc()
			logger.Error("stream ended with error",
				observability.Int("chunks", chunks),
				observability.Error(streamErr))
			return
		}

		observability.CompletionsTotal.WithLabelValues(modeStream, statusOK).Inc()
		logger.Info("stream finished",
			observability.Int("chunks", chunks),
			observability.Duration("elapsed", time.Since(start)))
	}

	return stream, nil
}

// prepare renders the conversation and builds the generation task.
// The engine is never called when this fails.
func (g *GatewayService) prepare(ctx context.Context, req *CompletionRequest) (*GenerationTask, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request cannot be nil", ErrInvalidRequest)
	}

	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("%w: messages cannot be empty", ErrInvalidRequest)
	}

	logger := observability.FromContext(ctx)
	logger.Info("rendering chat template",
		observability.Int("messages", len(req.Messages)),
		observability.Bool("stream", req.Stream))

	rendered, err := g.renderer.Render(req.Messages, g.engine.Tokens())
	if err != nil {
		logger.Error("template rendering failed", observability.Error(err))
		return nil, err
	}

	task, err := g.builder.Build(ctx, rendered, req.SamplingOptions)
	if err != nil {
		if !errors.Is(err, ErrMediaNotFound) && !errors.Is(err, ErrMediaRead) {
			logger.Error("failed to build generation task", observability.Error(err))
		}
		return nil, err
	}

	return task, nil
}
