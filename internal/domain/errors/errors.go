package errors

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalid = errors.New("invalid")

// ErrSchema marks content whose frontmatter violates the collection schema.
var ErrSchema = errors.New("schema validation failed")

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationError struct {
	Items []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Items) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed:\n")
	for _, item := range e.Items {
		b.WriteString(" - ")
		b.WriteString(item.Error())
		b.WriteString("\n")
	}
	return b.String()
}

func (e *ValidationError) Add(field, msg string) {
	e.Items = append(e.Items, FieldError{
		Field:   field,
		Message: msg,
	})
}

func (e ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

func (e ValidationError) HasAny() bool {
	return len(e.Items) > 0
}

// SchemaValidationError reports a content entry whose frontmatter is missing a
// required field or has the wrong shape. It is fatal for a load.
type SchemaValidationError struct {
	Path   string
	Fields ValidationError
}

func (e *SchemaValidationError) Error() string {
	var b strings.Builder
	b.WriteString("content ")
	b.WriteString(e.Path)
	b.WriteString(": invalid frontmatter")
	for i, item := range e.Fields.Items {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(item.Error())
	}
	return b.String()
}

func (e *SchemaValidationError) Is(target error) bool {
	return target == ErrSchema || target == ErrInvalid
}

// Schema wraps field errors for the entry at path, or returns nil when there are none.
func Schema(path string, ve ValidationError) error {
	if !ve.HasAny() {
		return nil
	}
	return &SchemaValidationError{Path: path, Fields: ve}
}
