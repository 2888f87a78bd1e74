package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/synexis/internal/domain"
)

func ptr[T any](v T) *T {
	return &v
}

func TestSamplingOptions_Apply(t *testing.T) {
	defaults := domain.DefaultGenerationDefaults()

	t.Run("should use defaults for unset options", func(t *testing.T) {
		params, maxTokens, err := domain.SamplingOptions{}.Apply(defaults)

		require.NoError(t, err)
		require.Equal(t, domain.SamplingParams{
			Temperature:   0.8,
			TopK:          40,
			TopP:          0.95,
			MinP:          0.05,
			RepeatPenalty: 1.1,
			Seed:          1900,
		}, params)
		require.Equal(t, 256, maxTokens)
	})

	t.Run("should override set options", func(t *testing.T) {
		params, maxTokens, err := domain.SamplingOptions{
			Temperature:   ptr(0.0),
			TopK:          ptr(1),
			TopP:          ptr(1.0),
			MinP:          ptr(0.0),
			RepeatPenalty: ptr(1.0),
			MaxTokens:     ptr(-1),
			Seed:          ptr(uint32(7)),
		}.Apply(defaults)

		require.NoError(t, err)
		require.Equal(t, domain.SamplingParams{
			Temperature:   0,
			TopK:          1,
			TopP:          1,
			MinP:          0,
			RepeatPenalty: 1,
			Seed:          7,
		}, params)
		require.Equal(t, -1, maxTokens)
	})

	invalid := []struct {
		name    string
		options domain.SamplingOptions
		field   string
	}{
		{name: "negative temperature", options: domain.SamplingOptions{Temperature: ptr(-0.1)}, field: "temperature"},
		{name: "negative top_k", options: domain.SamplingOptions{TopK: ptr(-1)}, field: "top_k"},
		{name: "top_p above one", options: domain.SamplingOptions{TopP: ptr(1.5)}, field: "top_p"},
		{name: "negative min_p", options: domain.SamplingOptions{MinP: ptr(-0.5)}, field: "min_p"},
		{name: "zero repeat_penalty", options: domain.SamplingOptions{RepeatPenalty: ptr(0.0)}, field: "repeat_penalty"},
		{name: "zero max_tokens", options: domain.SamplingOptions{MaxTokens: ptr(0)}, field: "max_tokens"},
		{name: "max_tokens below -1", options: domain.SamplingOptions{MaxTokens: ptr(-2)}, field: "max_tokens"},
	}

	for _, tt := range invalid {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			_, _, err := tt.options.Apply(defaults)

			require.ErrorIs(t, err, domain.ErrInvalidOptions)
			require.Contains(t, err.Error(), tt.field)
		})
	}
}
