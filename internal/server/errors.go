package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/orozcop9/TailorMyResume-AI/internal/extraction"
	"github.com/orozcop9/TailorMyResume-AI/internal/rewriting"
)

// ErrValidation indicates request validation failure: a missing job
// description, a missing resume file, or an unsupported upload type.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var validation *ErrValidation
	var unsupported *extraction.UnsupportedFormatError
	switch {
	case errors.As(err, &validation), errors.As(err, &unsupported):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the error text safe to surface to the caller.
// Raw provider errors from the completion service are logged server-side
// only and replaced with a generic message here.
func PublicMessage(err error) string {
	var validation *ErrValidation
	if errors.As(err, &validation) {
		return validation.Message
	}
	var unsupported *extraction.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		return "Unsupported file type: only PDF and DOCX resumes are accepted"
	}
	var corrupt *extraction.CorruptDocumentError
	if errors.As(err, &corrupt) {
		return "The uploaded resume could not be parsed"
	}
	var apiCall *rewriting.APICallError
	if errors.As(err, &apiCall) {
		return "Failed to optimize resume"
	}
	return "Failed to optimize resume"
}
