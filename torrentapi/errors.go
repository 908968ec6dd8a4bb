package torrentapi

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration or parameters
	ErrInvalidConfig = errors.New("invalid torrentapi configuration")
	// ErrAuthFailure indicates the token handshake failed or returned no token
	ErrAuthFailure = errors.New("failed to acquire API token")
	// ErrTransport indicates a network or IO failure talking to the API
	ErrTransport = errors.New("transport failure")
	// ErrMalformedResponse indicates a body matching neither the results nor the error schema
	ErrMalformedResponse = errors.New("malformed API response")
)

// API error codes with a known meaning
const (
	CodeTokenMissing  = 1
	CodeTokenInvalid  = 2
	CodeTokenExpired  = 4
	CodeNoResults     = 20
	CodeRateLimited   = 5
	CodeInvalidSearch = 10
)

// APIError is an error reported by the API in a well-formed error body.
// It is an expected outcome and never matches an infrastructure sentinel.
type APIError struct {
	Code    int
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("torrentapi error %d: %s", e.Code, e.Message)
}

// IsNoResults checks if the API found nothing for the request
func (e *APIError) IsNoResults() bool {
	return e.Code == CodeNoResults
}

// IsTokenError checks if the API rejected the token
func (e *APIError) IsTokenError() bool {
	return e.Code == CodeTokenMissing || e.Code == CodeTokenInvalid || e.Code == CodeTokenExpired
}

// IsRateLimited checks if the request was throttled
func (e *APIError) IsRateLimited() bool {
	return e.Code == CodeRateLimited
}

// AsAPIError extracts an APIError from err's chain
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// AuthError indicates the token handshake failed
type AuthError struct {
	AppID  string
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token acquisition for app %q failed: %s: %v", e.AppID, e.Reason, e.Err)
	}
	return fmt.Sprintf("token acquisition for app %q failed: %s", e.AppID, e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

func (e *AuthError) Is(target error) bool { return target == ErrAuthFailure }

// TransportError wraps a failure of the transport collaborator
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// MalformedResponseError carries both parse failures of a body that matched
// neither the results schema nor the error schema.
type MalformedResponseError struct {
	Body       string
	ResultsErr error
	ErrorErr   error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed API response: as results: %v; as error: %v", e.ResultsErr, e.ErrorErr)
}

func (e *MalformedResponseError) Is(target error) bool { return target == ErrMalformedResponse }
