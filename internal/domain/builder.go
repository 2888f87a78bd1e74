package domain

import (
	"context"
	"errors"

	"github.com/davidbz/synexis/internal/observability"
)

// RequestBuilder assembles generation tasks from rendered requests.
type RequestBuilder struct {
	media    MediaResolver
	defaults GenerationDefaults
}

// NewRequestBuilder creates a request builder (DI constructor).
func NewRequestBuilder(media MediaResolver, defaults GenerationDefaults) *RequestBuilder {
	return &RequestBuilder{
		media:    media,
		defaults: defaults,
	}
}

// Build resolves the media of a rendered request, in order, and attaches the
// sampling parameters. Any media failure aborts the build and is returned as is.
func (b *RequestBuilder) Build(
	ctx context.Context,
	rendered *RenderedRequest,
	options SamplingOptions,
) (*GenerationTask, error) {
	if rendered == nil {
		return nil, errors.New("rendered request cannot be nil")
	}

	params, maxTokens, err := options.Apply(b.defaults)
	if err != nil {
		return nil, err
	}

	logger := observability.FromContext(ctx)
	if len(options.Stop) > 0 {
		logger.Warn("stop sequences are not supported and were ignored",
			observability.Strings("stop", options.Stop))
	}

	media := make([][]byte, 0, len(rendered.MediaPaths))
	for _, path := range rendered.MediaPaths {
		data, resolveErr := b.media.Resolve(ctx, path)
		if resolveErr != nil {
			logger.Error("media resolution failed",
				observability.String("path", path),
				observability.Error(resolveErr))
			return nil, resolveErr
		}
		media = append(media, data)
	}

	logger.Debug("generation task built",
		observability.Int("prompt_length", len(rendered.Prompt)),
		observability.Int("media_count", len(media)),
		observability.Int("max_tokens", maxTokens))

	return NewGenerationTask(rendered.Prompt, media, params, maxTokens), nil
}
