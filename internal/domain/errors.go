package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates invalid construction-time parameters.
	ErrConfiguration = errors.New("configuration error")

	// ErrTemplate indicates the chat template could not be rendered.
	ErrTemplate = errors.New("template error")

	// ErrMediaNotFound indicates a referenced media file did not exist at read time.
	ErrMediaNotFound = errors.New("media not found")

	// ErrMediaRead indicates a referenced media file could not be read.
	ErrMediaRead = errors.New("media read error")

	// ErrEngine indicates the inference engine failed.
	ErrEngine = errors.New("engine error")

	// ErrInvalidRequest indicates a malformed request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidOptions indicates sampling options outside their accepted range.
	ErrInvalidOptions = errors.New("invalid sampling options")
)

// ConfigurationError describes an invalid configuration field.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// Is matches ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// TemplateError wraps a chat template failure.
type TemplateError struct {
	Err error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template error: %v", e.Err)
}

// Is matches ErrTemplate.
func (e *TemplateError) Is(target error) bool {
	return target == ErrTemplate
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// MediaError is a failure resolving one media path.
// Kind is either ErrMediaNotFound or ErrMediaRead.
type MediaError struct {
	Path string
	Kind error
	Err  error
}

// NewMediaNotFoundError creates a MediaError of kind ErrMediaNotFound.
func NewMediaNotFoundError(path string, err error) *MediaError {
	return &MediaError{Path: path, Kind: ErrMediaNotFound, Err: err}
}

// NewMediaReadError creates a MediaError of kind ErrMediaRead.
func NewMediaReadError(path string, err error) *MediaError {
	return &MediaError{Path: path, Kind: ErrMediaRead, Err: err}
}

func (e *MediaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Path)
}

// Is matches the error kind.
func (e *MediaError) Is(target error) bool {
	return target == e.Kind
}

func (e *MediaError) Unwrap() error {
	return e.Err
}

// EngineError wraps a failure reported by the inference engine.
type EngineError struct {
	Op  string
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine error: %s: %v", e.Op, e.Err)
}

// Is matches ErrEngine.
func (e *EngineError) Is(target error) bool {
	return target == ErrEngine
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

func wrapEngineError(op string, err error) error {
	var engineErr *EngineError
	if errors.As(err, &engineErr) {
		return err
	}
	return &EngineError{Op: op, Err: err}
}
