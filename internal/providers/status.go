// Package providers holds the clients for third-party APIs and the error
// type they share.
package providers

import "fmt"

// StatusError is returned by provider clients when the upstream API answers
// with a non-200 status. The body is kept verbatim so callers can relay it.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch returned status %d: %s", e.StatusCode, e.Body)
}
