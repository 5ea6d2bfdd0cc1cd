// Package api provides error types for Admin API responses.
package api

import (
	"fmt"
	"strings"

	"github.com/shopvault/shopvault/internal/models"
)

// TransportError indicates the query endpoint was unreachable or a
// page fetch exceeded its timeout. Enumeration cannot continue past
// one of these: partial results are discarded and the run fails.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("admin api unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError indicates the query endpoint answered, but with a
// non-success status, a body that is not well-formed JSON, or a
// GraphQL errors list. The offending status, raw body, or error list
// is carried for diagnostics. Fatal to the run, same as TransportError.
type ProtocolError struct {
	Status int
	Body   string
	Errors []models.GraphQLError
}

func (e *ProtocolError) Error() string {
	if len(e.Errors) > 0 {
		msgs := make([]string, len(e.Errors))
		for i, gqlErr := range e.Errors {
			msgs[i] = gqlErr.Message
		}
		return fmt.Sprintf("admin api returned errors: %s", strings.Join(msgs, "; "))
	}
	if e.Status != 0 {
		return fmt.Sprintf("admin api returned status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("admin api returned malformed response: %s", e.Body)
}
