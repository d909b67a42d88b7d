package perplexity

import (
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx reply from the upstream API.
type APIError struct {
	StatusCode int
	Body       string
}

func newAPIError(statusCode int, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}

func (e *APIError) Error() string {
	detail := e.Body
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("Perplexity API error: %d - %s", e.StatusCode, detail)
}
