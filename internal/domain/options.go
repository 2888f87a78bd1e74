package domain

import (
	"fmt"
)

// SamplingOptions are the caller-facing generation options.
// Unset fields fall back to the session's GenerationDefaults.
type SamplingOptions struct {
	Temperature   *float64 `json:"temperature,omitempty"`
	TopK          *int     `json:"top_k,omitempty"`
	TopP          *float64 `json:"top_p,omitempty"`
	MinP          *float64 `json:"min_p,omitempty"`
	RepeatPenalty *float64 `json:"repeat_penalty,omitempty"`
	MaxTokens     *int     `json:"max_tokens,omitempty"`
	Seed          *uint32  `json:"seed,omitempty"`

	// Stop is accepted for compatibility but has no effect: stop sequences are
	// not forwarded to the engine. Supplying them logs a warning.
	Stop []string `json:"stop,omitempty"`
}

// Apply merges the options over the defaults and validates the result.
func (o SamplingOptions) Apply(defaults GenerationDefaults) (SamplingParams, int, error) {
	params := defaults.Sampling
	maxTokens := defaults.MaxTokens

	if o.Temperature != nil {
		params.Temperature = *o.Temperature
	}
	if o.TopK != nil {
		params.TopK = *o.TopK
	}
	if o.TopP != nil {
		params.TopP = *o.TopP
	}
	if o.MinP != nil {
		params.MinP = *o.MinP
	}
	if o.RepeatPenalty != nil {
		params.RepeatPenalty = *o.RepeatPenalty
	}
	if o.Seed != nil {
		params.Seed = *o.Seed
	}
	if o.MaxTokens != nil {
		maxTokens = *o.MaxTokens
	}

	if err := ValidateSampling(params, maxTokens); err != nil {
		return SamplingParams{}, 0, err
	}

	return params, maxTokens, nil
}

// ValidateSampling checks every parameter against its accepted range.
func ValidateSampling(params SamplingParams, maxTokens int) error {
	switch {
	case params.Temperature < 0:
		return fmt.Errorf("%w: temperature must be >= 0, got %g", ErrInvalidOptions, params.Temperature)
	case params.TopK < 0:
		return fmt.Errorf("%w: top_k must be >= 0, got %d", ErrInvalidOptions, params.TopK)
	case params.TopP < 0 || params.TopP > 1:
		return fmt.Errorf("%w: top_p must be within [0, 1], got %g", ErrInvalidOptions, params.TopP)
	case params.MinP < 0 || params.MinP > 1:
		return fmt.Errorf("%w: min_p must be within [0, 1], got %g", ErrInvalidOptions, params.MinP)
	case params.RepeatPenalty <= 0:
		return fmt.Errorf("%w: repeat_penalty must be > 0, got %g", ErrInvalidOptions, params.RepeatPenalty)
	case maxTokens == 0 || maxTokens < -1:
		return fmt.Errorf("%w: max_tokens must be positive or -1, got %d", ErrInvalidOptions, maxTokens)
	}
	return nil
}

// DefaultGenerationDefaults returns the defaults of the public API.
func DefaultGenerationDefaults() GenerationDefaults {
	return GenerationDefaults{
		Sampling: SamplingParams{
			Temperature:   0.8,
			TopK:          40,
			TopP:          0.95,
			MinP:          0.05,
			RepeatPenalty: 1.1,
			Seed:          1900,
		},
		MaxTokens: 256,
	}
}
