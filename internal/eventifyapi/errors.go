package eventifyapi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-2xx reply from the backend. Message carries the parsed
// "message" field of the error body, or the raw body when none parses.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("eventify: request failed with status %d", e.Status)
	}
	return fmt.Sprintf("eventify: %s (status %d)", e.Message, e.Status)
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &APIError{Status: status, Message: payload.Message}
	}
	return &APIError{Status: status, Message: strings.TrimSpace(string(body))}
}
