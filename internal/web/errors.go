package web

import (
	"errors"
	"net/http"

	"github.com/runoshun/issue-drafter/internal/domain"
)

// statusFor maps a use case error to an HTTP status.
func statusFor(err error) int {
	var (
		verr *domain.ValidationError
		ferr *domain.FormatError
	)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNoAPIKey):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrUpstream), errors.As(err, &ferr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// userMessage returns the text shown to the browser. Internal failures
// are not echoed verbatim.
func userMessage(err error) string {
	var (
		verr *domain.ValidationError
		ferr *domain.FormatError
	)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return err.Error()
	case errors.As(err, &verr):
		if verr.Has(domain.FieldUserInput) {
			return "Please describe the feature you want."
		}
		if verr.Has(domain.FieldTitle) || verr.Has(domain.FieldUserStory) {
			return "The model's answer was incomplete (" + err.Error() + "). Please try again."
		}
		return err.Error()
	case errors.As(err, &ferr):
		return "The model's answer could not be read. Please try again."
	case errors.Is(err, domain.ErrNoAPIKey):
		return "Issue generation is not configured: " + domain.ErrNoAPIKey.Error() + "."
	case errors.Is(err, domain.ErrUpstream):
		return "The text generation service failed. Please try again later."
	default:
		return "Something went wrong."
	}
}
