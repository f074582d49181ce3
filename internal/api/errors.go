package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Maximum number of body bytes echoed into an error message when the
// backend responds with something other than JSON.
const errorBodyLimit = 400

// AuthError means the backend rejected the session: bad credentials on
// login, or an expired/invalid session cookie on any other call.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("authentication failed (HTTP %d)", e.Status)
	}
	return e.Message
}

// NetworkError means the service was unreachable.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("service unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// TimeoutError means the call exceeded the configured request timeout.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out: %v", e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// APIError is a non-2xx backend response carrying the backend-supplied
// message and optional machine-readable code.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	prefix := fmt.Sprintf("[%d] ", e.Status)
	if e.Code != "" {
		return prefix + e.Code + ": " + e.Message
	}
	return prefix + e.Message
}

// IsAuth reports whether err is an authentication failure that must force
// navigation back to the login screen.
func IsAuth(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsTimeout reports whether err is a request timeout.
func IsTimeout(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}

// UserMessage renders err for the status bar: typed errors know their
// message, anything else is reported verbatim.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Error()
	}
	if IsTimeout(err) {
		return "The request timed out. Check the service and try again."
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return "Could not reach the service. Check the URL and availability."
	}
	return err.Error()
}

// wrapTransportError classifies a failed round trip into TimeoutError or
// NetworkError.
func wrapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Err: err}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &TimeoutError{Err: err}
	}
	return &NetworkError{Err: err}
}

// errorPayload is the backend's standard error body.
type errorPayload struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// buildResponseError maps a non-expected status code to AuthError (401) or
// APIError, extracting detail/code from the JSON body when present.
func buildResponseError(resp *http.Response) error {
	detail := fmt.Sprintf("HTTP %d", resp.StatusCode)
	var code string

	body, err := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	if err == nil && len(body) > 0 {
		var payload errorPayload
		if json.Unmarshal(body, &payload) == nil && payload.Detail != "" {
			detail = payload.Detail
			code = payload.Code
		} else if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") {
			detail = text
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return &AuthError{Status: resp.StatusCode, Message: detail}
	}
	return &APIError{Status: resp.StatusCode, Code: code, Message: detail}
}
