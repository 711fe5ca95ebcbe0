package upstream

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned when the shop API answers 401 to a cart or
// chat mutation. Callers redirect to login instead of surfacing an error.
var ErrNotAuthenticated = errors.New("not authenticated")

// StatusError represents a non-2xx response from the shop API
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("shop API %s returned status %d", e.Endpoint, e.Code)
}

// FormatError represents a payload whose shape does not match the contract.
// It is logged distinctly from network failures for diagnosis.
type FormatError struct {
	Endpoint string
	Detail   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("shop API %s returned unexpected payload: %s", e.Endpoint, e.Detail)
}
