package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrRequestFailed = errors.New("backend request failed")
	ErrUnauthorized  = errors.New("backend rejected credentials")
)

// maxErrorBody caps how much of a failed response body is kept for logs.
const maxErrorBody = 512

// RequestError is the uniform failure returned by Client.Do.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int // 0 when no response was received
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.Path, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is makes every RequestError match ErrRequestFailed, and 401/403 responses
// additionally match ErrUnauthorized.
func (e *RequestError) Is(target error) bool {
	switch target {
	case ErrRequestFailed:
		return true
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}

func truncateBody(b []byte) string {
	if len(b) > maxErrorBody {
		return string(b[:maxErrorBody])
	}
	return string(b)
}
