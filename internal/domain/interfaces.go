package domain

import "context"

// Engine is the inference engine capability.
// Implementations own tokenization, batching and sampling; this layer only
// submits tasks and shapes the results.
type Engine interface {
	// Complete generates the full output for a task.
	Complete(ctx context.Context, task *GenerationTask) (Generation, error)

	// CompleteStream starts generation and returns a pull-based stream of fragments.
	// Cancelling ctx asks the engine to stop generating.
	CompleteStream(ctx context.Context, task *GenerationTask) (EngineStream, error)

	// Template returns the chat template source.
	Template() string

	// Tokens returns the special tokens exposed to the chat template.
	Tokens() map[string]string
}

// EngineStream is a pull-based sequence of generated fragments.
// Next blocks until a fragment is ready or the sequence ends.
type EngineStream interface {
	Next() bool
	Current() string
	Err() error
	Close() error
}

// MediaResolver resolves media references to raw bytes.
type MediaResolver interface {
	// Resolve returns the bytes stored at path.
	Resolve(ctx context.Context, path string) ([]byte, error)
}

// PromptRenderer turns a conversation into engine prompt text.
type PromptRenderer interface {
	// Render produces the prompt and the ordered media paths of a conversation.
	Render(messages []Message, specialTokens map[string]string) (*RenderedRequest, error)
}

// TemplateEngine expands a template against named variables.
type TemplateEngine interface {
	Execute(vars map[string]any) (string, error)
}
