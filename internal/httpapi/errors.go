package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoResponse marks transport failures: the request never reached a
// server, so there is no status and no body.
var ErrNoResponse = errors.New("no response from server")

// APIError is a server failure: a response was received with a non-2xx
// status. Detail carries the server's structured error text when the body
// had one.
type APIError struct {
	Status int
	Detail string
	Body   []byte
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server error (status %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("server error (status %d)", e.Status)
}

// newAPIError builds an APIError, extracting the server-provided detail
// or error field from a JSON body when present.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Body: body}

	var payload struct {
		Detail string `json:"detail"`
		Err    string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			apiErr.Detail = payload.Detail
		} else if payload.Err != "" {
			apiErr.Detail = payload.Err
		}
	}
	return apiErr
}

// UserMessage derives a user-visible message from a request error, in
// priority order: server-provided detail, HTTP status-derived message,
// no-response message, then the caller's generic fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		return fmt.Sprintf("Server error (%d). Please try again.", apiErr.Status)
	}
	if errors.Is(err, ErrNoResponse) {
		return "No response from server. Please check your connection and try again."
	}
	return fallback
}
