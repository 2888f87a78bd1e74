package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes text content as a string and multipart content as a list.
func (c MessageContent) MarshalJSON() ([]byte, error) {
	if c.IsMultipart() {
		return json.Marshal(c.Parts)
	}
	return json.Marshal(c.Text)
}

// UnmarshalJSON accepts either a string or a list of content parts.
func (c *MessageContent) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = MessageContent{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return fmt.Errorf("failed to decode text content: %w", err)
		}
		*c = TextContent(text)
	case '[':
		var parts []ContentPart
		if err := json.Unmarshal(trimmed, &parts); err != nil {
			return fmt.Errorf("failed to decode content parts: %w", err)
		}
		*c = PartsContent(parts...)
	default:
		return fmt.Errorf("%w: content must be a string or a list of parts", ErrInvalidRequest)
	}

	return nil
}

// MarshalJSON writes the known fields alongside any preserved extra keys.
func (p ContentPart) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+3)
	for key, value := range p.Extra {
		out[key] = value
	}

	out["type"] = p.Type
	if p.Text != "" {
		out["text"] = p.Text
	}
	if p.Path != "" {
		out["path"] = p.Path
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes a content part, keeping unknown keys in Extra.
func (p *ContentPart) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: content part must be an object: %w", ErrInvalidRequest, err)
	}

	var part ContentPart
	for key, value := range raw {
		text, isString := value.(string)

		switch {
		case key == "type" && isString:
			part.Type = text
		case key == "text" && isString:
			part.Text = text
		case key == "path" && isString:
			part.Path = text
		default:
			if part.Extra == nil {
				part.Extra = make(map[string]any)
			}
			part.Extra[key] = value
		}
	}

	*p = part
	return nil
}
