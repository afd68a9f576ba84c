package analyzer

import (
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the Gemini API.
type APIError struct {
	StatusCode int
	Message    string
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini API error (status %d %s): %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// IsDeprecated reports whether the error indicates a retired model. The
// Gemini API signals retirement only in the message text, so this is a
// substring match on "deprecated".
func IsDeprecated(err error) bool {
	return err != nil && strings.Contains(err.Error(), "deprecated")
}

// IsNotFound reports whether the error indicates an unknown model,
// matching on "404 Not Found".
func IsNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "404 Not Found")
}

// shouldFallback decides whether a failed call is worth retrying against the
// fallback model.
func shouldFallback(err error) bool {
	return IsDeprecated(err) || IsNotFound(err)
}
