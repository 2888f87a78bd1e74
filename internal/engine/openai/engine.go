// Package openai binds the domain.Engine capability to an OpenAI-compatible
// inference server (llama.cpp server, vLLM) through the official SDK's
// completions API. Prompts are sent pre-rendered, so the server's own chat
// template is bypassed.
package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"

	"github.com/davidbz/synexis/internal/domain"
	"github.com/davidbz/synexis/internal/engine"
	"github.com/davidbz/synexis/internal/observability"
)

// Config contains the connection settings of the remote engine.
// All fields map to SDK options:
//   - BaseURL: option.WithBaseURL()
//   - APIKey: option.WithAPIKey()
//   - Timeout: option.WithRequestTimeout() (in seconds)
//   - MaxRetries: option.WithMaxRetries()
type Config struct {
	BaseURL    string
	APIKey     string
	Model      string
	Timeout    int
	MaxRetries int
}

// ConfigFrom derives the remote engine settings from the engine config.
func ConfigFrom(cfg engine.Config) Config {
	return Config{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		Model:      cfg.ModelPath,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
	}
}

// Engine implements domain.Engine on top of the OpenAI SDK.
type Engine struct {
	client  openai.Client
	model   string
	profile engine.Profile
}

// New creates a remote engine.
func New(config Config, profile engine.Profile) (*Engine, error) {
	if config.BaseURL == "" {
		return nil, &domain.ConfigurationError{
			Field:  "ENGINE_BASE_URL",
			Reason: "base URL is required for the openai backend",
		}
	}

	if config.Model == "" {
		return nil, &domain.ConfigurationError{
			Field:  "MODEL_PATH",
			Reason: "model identifier is required",
		}
	}

	opts := []option.RequestOption{
		option.WithBaseURL(config.BaseURL),
		option.WithMaxRetries(config.MaxRetries),
	}

	if config.APIKey != "" {
		opts = append(opts, option.WithAPIKey(config.APIKey))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	return &Engine{
		client:  openai.NewClient(opts...),
		model:   config.Model,
		profile: profile,
	}, nil
}

// Template returns the chat template of the profile.
func (e *Engine) Template() string {
	return e.profile.Template
}

// Tokens returns the special tokens of the profile.
func (e *Engine) Tokens() map[string]string {
	return e.profile.TokensCopy()
}

// Complete sends the task and waits for the full generation.
func (e *Engine) Complete(ctx context.Context, task *domain.GenerationTask) (domain.Generation, error) {
	if task == nil {
		return domain.Generation{}, errors.New("task cannot be nil")
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling completions API", observability.Int("media_count", task.MediaCount()))

	resp, err := e.client.Completions.New(ctx, e.toSDKParams(task), e.extraFields(task)...)
	if err != nil {
		logger.Error("completions API call failed", observability.Error(err))
		return domain.Generation{}, fmt.Errorf("completions API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return domain.Generation{}, errors.New("completions API returned no choices")
	}

	choice := resp.Choices[0]
	logger.Debug("completions API call succeeded",
		observability.String("finish_reason", string(choice.FinishReason)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)))

	return domain.Generation{
		Text:         choice.Text,
		FinishReason: string(choice.FinishReason),
	}, nil
}

// CompleteStream opens a server-sent event stream for the task.
// The request is issued immediately; fragments are read as the caller pulls.
func (e *Engine) CompleteStream(ctx context.Context, task *domain.GenerationTask) (domain.EngineStream, error) {
	if task == nil {
		return nil, errors.New("task cannot be nil")
	}

	observability.FromContext(ctx).Debug("calling streaming completions API",
		observability.Int("media_count", task.MediaCount()))

	sdkStream := e.client.Completions.NewStreaming(ctx, e.toSDKParams(task), e.extraFields(task)...)
	if err := sdkStream.Err(); err != nil {
		_ = sdkStream.Close()
		return nil, fmt.Errorf("streaming completions API call failed: %w", err)
	}

	return &stream{sdk: sdkStream}, nil
}

// toSDKParams converts a task to SDK CompletionNewParams.
func (e *Engine) toSDKParams(task *domain.GenerationTask) openai.CompletionNewParams {
	sampling := task.Sampling()

	params := openai.CompletionNewParams{
		Model: openai.CompletionNewParamsModel(e.model),
		Prompt: openai.CompletionNewParamsPromptUnion{
			OfString: openai.String(task.Prompt()),
		},
		Temperature: openai.Float(sampling.Temperature),
		TopP:        openai.Float(sampling.TopP),
		Seed:        openai.Int(int64(sampling.Seed)),
	}

	if task.MaxTokens() > 0 {
		params.MaxTokens = openai.Int(int64(task.MaxTokens()))
	}

	return params
}

// extraFields carries the sampling parameters and media the SDK has no fields for.
func (e *Engine) extraFields(task *domain.GenerationTask) []option.RequestOption {
	sampling := task.Sampling()

	opts := []option.RequestOption{
		option.WithJSONSet("top_k", sampling.TopK),
		option.WithJSONSet("min_p", sampling.MinP),
		option.WithJSONSet("repeat_penalty", sampling.RepeatPenalty),
	}

	if media := task.Media(); len(media) > 0 {
		encoded := make([]string, len(media))
		for i, data := range media {
			encoded[i] = base64.StdEncoding.EncodeToString(data)
		}
		opts = append(opts, option.WithJSONSet("multimodal_data", encoded))
	}

	return opts
}

type stream struct {
	sdk     *ssestream.Stream[openai.Completion]
	current string
}

func (s *stream) Next() bool {
	for s.sdk.Next() {
		chunk := s.sdk.Current()
		if len(chunk.Choices) == 0 || chunk.Choices[0].Text == "" {
			continue
		}
		s.current = chunk.Choices[0].Text
		return true
	}
	return false
}

func (s *stream) Current() string {
	return s.current
}

func (s *stream) Err() error {
	if err := s.sdk.Err(); err != nil {
		return fmt.Errorf("completions stream error: %w", err)
	}
	return nil
}

func (s *stream) Close() error {
	return s.sdk.Close()
}
