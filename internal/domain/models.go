package domain

import "strings"

const (
	// RoleAssistant is the role of every generated message.
	RoleAssistant = "assistant"

	// ObjectChatCompletion discriminates completion envelopes.
	ObjectChatCompletion = "chat.completion"

	// FinishReasonStop is reported when the engine does not say why generation ended.
	FinishReasonStop = "stop"

	// FinishReasonLength is reported when the token budget was exhausted.
	FinishReasonLength = "length"

	// UsageUnknown marks token counts this layer does not compute.
	UsageUnknown = -1

	// MediaTypeImage and MediaTypeAudio are the content part types that reference media files.
	MediaTypeImage = "image"
	MediaTypeAudio = "audio"
)

// CompletionRequest represents an inbound chat completion request.
type CompletionRequest struct {
	Messages []Message `json:"messages"`
	SamplingOptions
	Stream bool `json:"stream,omitempty"`
}

// Message represents a chat message.
type Message struct {
	Role    string         `json:"role"` // user, assistant, system
	Content MessageContent `json:"content"`
}

// MessageContent holds either plain text or an ordered list of content parts.
// Parts is non-nil exactly when the content was supplied as a list.
type MessageContent struct {
	Text  string
	Parts []ContentPart
}

// TextContent creates plain text content.
func TextContent(text string) MessageContent {
	return MessageContent{Text: text, Parts: nil}
}

// PartsContent creates multipart content.
func PartsContent(parts ...ContentPart) MessageContent {
	if parts == nil {
		parts = []ContentPart{}
	}
	return MessageContent{Text: "", Parts: parts}
}

// IsMultipart reports whether the content is a list of parts.
func (c MessageContent) IsMultipart() bool {
	return c.Parts != nil
}

// String returns the text content, joining text parts for multipart content.
func (c MessageContent) String() string {
	if !c.IsMultipart() {
		return c.Text
	}

	texts := make([]string, 0, len(c.Parts))
	for _, part := range c.Parts {
		if part.Type == "text" {
			texts = append(texts, part.Text)
		}
	}
	return strings.Join(texts, "\n")
}

// ContentPart is one element of multipart message content.
// Keys other than type, text and path are kept in Extra and reach the template untouched.
type ContentPart struct {
	Type  string
	Text  string
	Path  string
	Extra map[string]any
}

// IsMedia reports whether the part references a media file.
func (p ContentPart) IsMedia() bool {
	return (p.Type == MediaTypeImage || p.Type == MediaTypeAudio) && p.Path != ""
}

// RenderedRequest is the prompt produced by the chat template together with
// the media paths referenced by the conversation, in encounter order.
type RenderedRequest struct {
	Prompt     string
	MediaPaths []string
}

// SamplingParams controls how the engine selects the next token.
type SamplingParams struct {
	Temperature   float64 `json:"temperature"     yaml:"temperature"`
	TopK          int     `json:"top_k"           yaml:"top_k"`
	TopP          float64 `json:"top_p"           yaml:"top_p"`
	MinP          float64 `json:"min_p"           yaml:"min_p"`
	RepeatPenalty float64 `json:"repeat_penalty"  yaml:"repeat_penalty"`
	Seed          uint32  `json:"seed"            yaml:"seed"`
}

// GenerationDefaults are applied to every option the caller leaves unset.
type GenerationDefaults struct {
	Sampling  SamplingParams
	MaxTokens int
}

// GenerationTask is a single unit of work submitted to the engine.
// Media()[i] holds the bytes of the i-th referenced media path.
// A task is immutable: engines must not modify the media buffers they receive.
type GenerationTask struct {
	prompt    string
	media     [][]byte
	sampling  SamplingParams
	maxTokens int
}

// NewGenerationTask creates a task. The media slice is copied.
func NewGenerationTask(prompt string, media [][]byte, sampling SamplingParams, maxTokens int) *GenerationTask {
	owned := make([][]byte, len(media))
	copy(owned, media)

	return &GenerationTask{
		prompt:    prompt,
		media:     owned,
		sampling:  sampling,
		maxTokens: maxTokens,
	}
}

// Prompt returns the rendered prompt text.
func (t *GenerationTask) Prompt() string {
	return t.prompt
}

// Media returns the media payloads in prompt order.
func (t *GenerationTask) Media() [][]byte {
	out := make([][]byte, len(t.media))
	copy(out, t.media)
	return out
}

// MediaCount returns the number of attached media payloads.
func (t *GenerationTask) MediaCount() int {
	return len(t.media)
}

// Sampling returns the sampling parameters.
func (t *GenerationTask) Sampling() SamplingParams {
	return t.sampling
}

// MaxTokens returns the generation budget, -1 meaning the engine default.
func (t *GenerationTask) MaxTokens() int {
	return t.maxTokens
}

// Generation is the full output of a synchronous engine call.
type Generation struct {
	Text         string
	FinishReason string
}

// CompletionResult is the response envelope of a non-streaming completion.
type CompletionResult struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Result  ResultChoice `json:"result"`
	Usage   Usage        `json:"usage"`
}

// ResultChoice holds the generated message.
type ResultChoice struct {
	Message      AssistantMessage `json:"message"`
	FinishReason string           `json:"finish_reason"`
}

// AssistantMessage is the generated reply.
type AssistantMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// StreamChunk represents a single streaming response chunk on the wire.
type StreamChunk struct {
	Delta string `json:"delta"`
	Done  bool   `json:"done"`
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// UnknownUsage returns usage with every count set to UsageUnknown.
func UnknownUsage() Usage {
	return Usage{
		PromptTokens:     UsageUnknown,
		CompletionTokens: UsageUnknown,
		TotalTokens:      UsageUnknown,
	}
}
