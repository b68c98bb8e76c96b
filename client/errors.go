package client

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrSessionExpired is returned when a request failed with 401 and the
	// session could not be refreshed. The session store has been cleared.
	ErrSessionExpired = errors.New("session expired")

	// ErrPatientNotFound is returned by patient lookups when no patient
	// matches the given health ID.
	ErrPatientNotFound = errors.New("patient not found")
)

// APIError is a non-2xx response that carried no field-level details.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// ValidationError is a 400 response carrying a field-to-messages map.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.Fields[field], " "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Messages flattens every field message into one list, field order sorted.
func (e *ValidationError) Messages() []string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var messages []string
	for _, field := range fields {
		messages = append(messages, e.Fields[field]...)
	}
	return messages
}
