package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput signals a malformed or missing request parameter.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstreamFetch signals a transport failure, timeout, or non-success
	// response while fetching the source page.
	ErrUpstreamFetch = errors.New("upstream fetch failed")
	// ErrExtraction signals that a required field was absent after parsing.
	ErrExtraction = errors.New("extraction failed")
	// ErrStore signals a persistence collaborator failure.
	ErrStore = errors.New("store failure")
	// ErrCompletion signals a generative completion failure.
	ErrCompletion = errors.New("completion failure")
)

// Extraction field names used in ExtractionError.
const (
	FieldProfessor = "name"
	FieldReview    = "review"
	FieldRating    = "rating"
	FieldSubject   = "subject"
)

// ExtractionError wraps ErrExtraction with the field that could not be located.
type ExtractionError struct {
	Field string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrExtraction.Error(), e.Field)
}

func (e *ExtractionError) Unwrap() error { return ErrExtraction }

// NewExtractionError creates an extraction error for the given field.
func NewExtractionError(field string) error {
	return &ExtractionError{Field: field}
}
