package nlp

import (
	"errors"
	"fmt"
)

// ErrNoBackend indicates no backend configuration key was set. The
// answer generator treats this as non-fatal and runs in simple mode.
var ErrNoBackend = errors.New("no LLM backend configured: set OPENAI_API_KEY, GROQ_API_KEY, or OLLAMA_BASE_URL")

// RequestError indicates the backend was reachable but returned an
// error status.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend request failed with status %d: %s", e.StatusCode, e.Message)
}

// Is implements errors.Is support for RequestError.
func (e *RequestError) Is(target error) bool {
	_, ok := target.(*RequestError)
	return ok
}

// UnavailableError indicates a transport or timeout failure before any
// backend response was received.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("backend unavailable: %v", e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support for UnavailableError.
func (e *UnavailableError) Is(target error) bool {
	_, ok := target.(*UnavailableError)
	return ok
}
