package core

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the category of an API error.
type ErrorType int

// Error type constants classify API errors by the HTTP status that produced them.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeNetwork indicates no response was received from the exchange.
	ErrorTypeNetwork
	// ErrorTypeRateLimit indicates rate limit was exceeded.
	ErrorTypeRateLimit
	// ErrorTypeAuthentication indicates invalid or expired credentials.
	ErrorTypeAuthentication
	// ErrorTypeBadRequest indicates invalid request parameters.
	ErrorTypeBadRequest
	// ErrorTypeNotFound indicates the requested resource does not exist.
	ErrorTypeNotFound
	// ErrorTypeServerError indicates a server-side error.
	ErrorTypeServerError
	// ErrorTypeMalformedResponse indicates a response body that is not JSON.
	ErrorTypeMalformedResponse
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	return [...]string{
		"UNKNOWN",
		"NETWORK",
		"RATE_LIMIT",
		"AUTHENTICATION",
		"BAD_REQUEST",
		"NOT_FOUND",
		"SERVER_ERROR",
		"MALFORMED_RESPONSE",
	}[t]
}

// CodeTransportFailure is the APIError code used when the exchange never answered.
const CodeTransportFailure = -1

// Sentinel errors for common error conditions.
var (
	// ErrClientClosed is returned when attempting to use a closed client.
	ErrClientClosed = errors.New("client is closed")
	// ErrMissingCredentials is returned when a private endpoint is called without both keys.
	ErrMissingCredentials = errors.New("use of private API methods requires public_key and secret_key to be set")
	// ErrInvalidSecretKey is returned when the secret key does not decode to an ed25519 seed.
	ErrInvalidSecretKey = errors.New("secret key is not a valid hex-encoded ed25519 seed")
)

// APIError is returned for every failed exchange call: an unparsable response body,
// an error-bearing JSON body with a 4xx/5xx status, or a transport failure.
type APIError struct {
	// Code is the HTTP status code, or CodeTransportFailure when no response arrived.
	Code int `json:"code"`
	// Message is the server supplied error value or the raw response body.
	Message string `json:"message"`
	// Description is a human-readable summary of the failure.
	Description string `json:"description"`
	// Type categorizes the error for programmatic handling.
	Type ErrorType `json:"type"`

	cause error
}

// Error returns the human-readable description.
func (e *APIError) Error() string {
	return e.Description
}

// Unwrap returns the transport error behind a CodeTransportFailure, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// NewAPIError creates an APIError and classifies it by status code.
func NewAPIError(code int, message, description string) *APIError {
	return &APIError{
		Code:        code,
		Message:     message,
		Description: description,
		Type:        classifyStatus(code),
	}
}

// NewTransportError wraps a failure that happened before any response was received.
func NewTransportError(exchange string, err error) *APIError {
	return &APIError{
		Code:        CodeTransportFailure,
		Message:     err.Error(),
		Description: fmt.Sprintf("%s request failed: %v", exchange, err),
		Type:        ErrorTypeNetwork,
		cause:       err,
	}
}

func classifyStatus(code int) ErrorType {
	switch {
	case code == http.StatusTooManyRequests:
		return ErrorTypeRateLimit
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrorTypeAuthentication
	case code == http.StatusNotFound:
		return ErrorTypeNotFound
	case code >= http.StatusInternalServerError:
		return ErrorTypeServerError
	case code >= http.StatusBadRequest:
		return ErrorTypeBadRequest
	default:
		return ErrorTypeUnknown
	}
}

// SignerError is returned when a request cannot be signed. It is never retried.
type SignerError struct {
	Err error
}

func (e *SignerError) Error() string {
	return fmt.Sprintf("sign request: %v", e.Err)
}

func (e *SignerError) Unwrap() error {
	return e.Err
}

// ParamError reports a missing or invalid endpoint parameter. It is raised before any I/O.
type ParamError struct {
	Operation Operation
	Err       error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: invalid params: %v", e.Operation, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

func hasType(err error, t ErrorType) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type == t
	}
	return false
}

// IsNetworkError returns true if the exchange could not be reached.
func IsNetworkError(err error) bool {
	return hasType(err, ErrorTypeNetwork)
}

// IsRateLimitError returns true if the error is a rate limit violation.
func IsRateLimitError(err error) bool {
	return hasType(err, ErrorTypeRateLimit)
}

// IsAuthenticationError returns true if the exchange rejected the credentials.
func IsAuthenticationError(err error) bool {
	return hasType(err, ErrorTypeAuthentication)
}

// IsNotFoundError returns true if the requested resource does not exist.
func IsNotFoundError(err error) bool {
	return hasType(err, ErrorTypeNotFound)
}

// IsServerError returns true if the exchange failed with a 5xx status.
func IsServerError(err error) bool {
	return hasType(err, ErrorTypeServerError)
}

// IsSignerError returns true if the error came from request signing.
func IsSignerError(err error) bool {
	var signErr *SignerError
	return errors.As(err, &signErr)
}
