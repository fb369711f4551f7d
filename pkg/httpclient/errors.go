package httpclient

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// StatusError is a non-2xx response from an upstream API
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// IsSuccess reports whether status is 2xx
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}

// ParseResponseError consumes and closes resp.Body and returns a *StatusError.
// Only call it for non-2xx responses.
func ParseResponseError(resp *http.Response) error {
	defer drain(resp.Body)

	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if err != nil {
		return &StatusError{StatusCode: resp.StatusCode}
	}

	return &StatusError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(bodyBytes)),
	}
}
