package domain

import (
	"errors"
	"fmt"
	"strings"
	"text/template"
)

// ChatTemplateFuncs are the helper functions available to chat templates.
//
//nolint:gochecknoglobals // Read-only function table shared by all templates
var ChatTemplateFuncs = template.FuncMap{
	"mod": func(a, b int) int {
		return a % b
	},
	"trim": func(s string) string {
		return strings.TrimSpace(s)
	},
	"is_media": func(part ContentPart) bool {
		return part.IsMedia()
	},
	"raise_exception": func(message string) (string, error) {
		return "", errors.New(message)
	},
}

// GoTemplate is a TemplateEngine backed by text/template.
// Referencing a variable that is not in the context is an error.
type GoTemplate struct {
	tmpl *template.Template
}

// NewGoTemplate parses a chat template.
func NewGoTemplate(source string) (*GoTemplate, error) {
	if strings.TrimSpace(source) == "" {
		return nil, &TemplateError{Err: errors.New("template source cannot be empty")}
	}

	tmpl, err := template.New("chat").
		Funcs(ChatTemplateFuncs).
		Option("missingkey=error").
		Parse(source)
	if err != nil {
		return nil, &TemplateError{Err: fmt.Errorf("failed to parse template: %w", err)}
	}

	return &GoTemplate{tmpl: tmpl}, nil
}

// Execute renders the template. It is safe for concurrent use.
func (g *GoTemplate) Execute(vars map[string]any) (string, error) {
	var builder strings.Builder
	if err := g.tmpl.Execute(&builder, vars); err != nil {
		return "", &TemplateError{Err: fmt.Errorf("failed to render template: %w", err)}
	}
	return builder.String(), nil
}

// TemplateRenderer renders conversations through a TemplateEngine.
type TemplateRenderer struct {
	engine TemplateEngine
}

// NewTemplateRenderer creates a renderer (DI constructor).
func NewTemplateRenderer(engine TemplateEngine) *TemplateRenderer {
	return &TemplateRenderer{
		engine: engine,
	}
}

// NewEngineTemplateRenderer compiles the chat template supplied by the engine.
func NewEngineTemplateRenderer(engine Engine) (*TemplateRenderer, error) {
	if engine == nil {
		return nil, errors.New("engine cannot be nil")
	}

	tmpl, err := NewGoTemplate(engine.Template())
	if err != nil {
		return nil, err
	}

	return NewTemplateRenderer(tmpl), nil
}

// Render produces the prompt text and the ordered media paths of a conversation.
// The template sees the conversation as "messages", "add_generation_prompt" set
// to true, and every special token under its own name.
func (r *TemplateRenderer) Render(messages []Message, specialTokens map[string]string) (*RenderedRequest, error) {
	vars := make(map[string]any, len(specialTokens)+2)
	for name, token := range specialTokens {
		vars[name] = token
	}
	vars["messages"] = messages
	vars["add_generation_prompt"] = true

	prompt, err := r.engine.Execute(vars)
	if err != nil {
		var templateErr *TemplateError
		if errors.As(err, &templateErr) {
			return nil, err
		}
		return nil, &TemplateError{Err: err}
	}

	return &RenderedRequest{
		Prompt:     prompt,
		MediaPaths: ExtractMediaPaths(messages),
	}, nil
}

// ExtractMediaPaths collects the path of every media content part, scanning
// messages in order and parts in order within each message.
func ExtractMediaPaths(messages []Message) []string {
	var paths []string
	for _, message := range messages {
		for _, part := range message.Content.Parts {
			if part.IsMedia() {
				paths = append(paths, part.Path)
			}
		}
	}
	return paths
}
