package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors.
var (
	ErrNotFound     = errors.New("not found")
	ErrUpstream     = errors.New("completion service failed")
	ErrNoAPIKey     = errors.New("no API key configured (set GEMINI_API_KEY or [generation] api_key)")
	ErrConfigExists = errors.New("config file already exists")
	ErrEmptyInput   = errors.New("input cannot be empty")
)

// Field names reported by ValidationError.
const (
	FieldTitle        = "title"
	FieldUserStory    = "user_story"
	FieldCriteria     = "acceptance_criteria"
	FieldRequirements = "technical_requirements"
	FieldUserInput    = "user_input"
	FieldName         = "name"
	FieldOwner        = "owner"
)

// ValidationError reports input that parsed but lacks required fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Has reports whether field is among the missing fields.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// FormatError reports text that could not be parsed as the expected structure.
// Field is empty when the whole document is malformed.
type FormatError struct {
	Err   error
	Field string
}

func (e *FormatError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed field %q: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// NotFoundError reports a failed lookup by id.
type NotFoundError struct {
	Kind string // "issue" or "repository"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// Is makes errors.Is(err, ErrNotFound) hold for any NotFoundError.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// UpstreamError wraps a failure of the completion service call.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%v: %v", ErrUpstream, e.Err)
}

func (e *UpstreamError) Unwrap() []error { return []error{ErrUpstream, e.Err} }
