package security

import (
	"errors"
	"net/http"
	"strings"

	"github.com/eventify/eventify-client/internal/eventifyapi"
)

// IsAuthFailure reports whether err is an authorization rejection from the
// backend. Role-gated navigation triggers these routinely, so consumers
// suppress them from generic error display; every other error is shown
// as-is.
func IsAuthFailure(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *eventifyapi.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "401") ||
		strings.Contains(msg, "403") ||
		strings.Contains(msg, "unauthorized")
}
