package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		want      string
	}{
		{"unknown", ErrorTypeUnknown, "UNKNOWN"},
		{"network", ErrorTypeNetwork, "NETWORK"},
		{"rate_limit", ErrorTypeRateLimit, "RATE_LIMIT"},
		{"authentication", ErrorTypeAuthentication, "AUTHENTICATION"},
		{"bad_request", ErrorTypeBadRequest, "BAD_REQUEST"},
		{"not_found", ErrorTypeNotFound, "NOT_FOUND"},
		{"server_error", ErrorTypeServerError, "SERVER_ERROR"},
		{"malformed_response", ErrorTypeMalformedResponse, "MALFORMED_RESPONSE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.errorType.String())
		})
	}
}

func TestNewAPIError(t *testing.T) {
	err := NewAPIError(404, "not found", "Codex Exchange returned 'not found'")

	assert.Equal(t, 404, err.Code)
	assert.Equal(t, "not found", err.Message)
	assert.Equal(t, "Codex Exchange returned 'not found'", err.Error())
	assert.Equal(t, ErrorTypeNotFound, err.Type)
	assert.Nil(t, err.Unwrap())
}

func TestAPIError_Classification(t *testing.T) {
	tests := []struct {
		code int
		want ErrorType
	}{
		{400, ErrorTypeBadRequest},
		{401, ErrorTypeAuthentication},
		{403, ErrorTypeAuthentication},
		{404, ErrorTypeNotFound},
		{422, ErrorTypeBadRequest},
		{429, ErrorTypeRateLimit},
		{500, ErrorTypeServerError},
		{503, ErrorTypeServerError},
		{200, ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, NewAPIError(tt.code, "", "").Type)
		})
	}
}

func TestNewTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransportError("Codex Exchange", cause)

	assert.Equal(t, CodeTransportFailure, err.Code)
	assert.Equal(t, "connection refused", err.Message)
	assert.Contains(t, err.Error(), "Codex Exchange request failed")
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsNetworkError(err))
}

func TestErrorHelpers(t *testing.T) {
	wrapped := fmt.Errorf("get balances: %w", NewAPIError(401, "bad key", "unauthorized"))

	assert.True(t, IsAuthenticationError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
	assert.True(t, IsNotFoundError(NewAPIError(404, "", "")))
	assert.True(t, IsRateLimitError(NewAPIError(429, "", "")))
	assert.True(t, IsServerError(NewAPIError(502, "", "")))
	assert.False(t, IsServerError(nil))
	assert.False(t, IsNetworkError(errors.New("plain")))
}

func TestSignerError(t *testing.T) {
	err := &SignerError{Err: ErrMissingCredentials}

	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.True(t, IsSignerError(fmt.Errorf("dispatch: %w", err)))
	assert.False(t, IsSignerError(NewAPIError(500, "", "")))
	assert.Contains(t, err.Error(), "public_key and secret_key")
}

func TestParamError(t *testing.T) {
	cause := errors.New("market is required")
	err := &ParamError{Operation: OpGetOrderBook, Err: cause}

	var paramErr *ParamError
	require.True(t, errors.As(fmt.Errorf("wrap: %w", err), &paramErr))
	assert.Equal(t, OpGetOrderBook, paramErr.Operation)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "GET_ORDER_BOOK: invalid params: market is required", err.Error())
}
