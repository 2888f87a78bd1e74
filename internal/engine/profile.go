package engine

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/davidbz/synexis/internal/domain"
)

// Special token names understood by DefaultTemplate.
const (
	TokenStartOfTurn = "start_of_turn"
	TokenEndOfTurn   = "end_of_turn"
	TokenMediaMarker = "media_marker"
	TokenBOS         = "bos_token"
	TokenEOS         = "eos_token"
)

// DefaultTemplate renders conversations in the ChatML layout.
// Media parts are replaced by the media marker; text parts are trimmed.
const DefaultTemplate = `{{- range .messages -}}
{{- $.start_of_turn }}{{ .Role }}
{{ if .Content.IsMultipart -}}
{{- range .Content.Parts -}}
{{- if is_media . }}{{ $.media_marker }}{{ else if eq .Type "text" }}{{ trim .Text }}{{ end -}}
{{- end -}}
{{- else -}}
{{- trim .Content.Text -}}
{{- end -}}
{{ $.end_of_turn }}
{{ end -}}
{{- if .add_generation_prompt }}{{ .start_of_turn }}assistant
{{ end -}}`

// Profile is the chat template of a model together with its special tokens.
type Profile struct {
	Template string            `yaml:"template"`
	Tokens   map[string]string `yaml:"tokens"`
}

// DefaultTokens returns the ChatML special tokens.
func DefaultTokens() map[string]string {
	return map[string]string{
		TokenStartOfTurn: "<|im_start|>",
		TokenEndOfTurn:   "<|im_end|>",
		TokenMediaMarker: "<__media__>",
		TokenBOS:         "<s>",
		TokenEOS:         "</s>",
	}
}

// DefaultProfile returns the built-in ChatML profile.
func DefaultProfile() Profile {
	return Profile{
		Template: DefaultTemplate,
		Tokens:   DefaultTokens(),
	}
}

// TokensCopy returns a copy of the special tokens that callers may modify.
func (p Profile) TokensCopy() map[string]string {
	tokens := make(map[string]string, len(p.Tokens))
	maps.Copy(tokens, p.Tokens)
	return tokens
}

// LoadProfile reads a YAML profile from a local path or any URL afs supports.
// An empty location yields the default profile.
func LoadProfile(ctx context.Context, location string) (Profile, error) {
	if location == "" {
		return DefaultProfile(), nil
	}

	data, err := afs.New().DownloadWithURL(ctx, location)
	if err != nil {
		return Profile{}, &domain.ConfigurationError{
			Field:  "ENGINE_PROFILE_FILE",
			Reason: fmt.Sprintf("failed to read profile %s", location),
			Err:    err,
		}
	}

	return ParseProfile(data)
}

// ParseProfile decodes a YAML profile. Tokens default to the ChatML set when
// the document omits them.
func ParseProfile(data []byte) (Profile, error) {
	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return Profile{}, &domain.ConfigurationError{
			Field:  "ENGINE_PROFILE_FILE",
			Reason: "invalid profile document",
			Err:    err,
		}
	}

	if strings.TrimSpace(profile.Template) == "" {
		return Profile{}, &domain.ConfigurationError{
			Field:  "ENGINE_PROFILE_FILE",
			Reason: "profile has no template",
			Err:    errors.New("template cannot be empty"),
		}
	}

	if profile.Tokens == nil {
		profile.Tokens = DefaultTokens()
	}

	return profile, nil
}
