package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelayErrorHandlerExtractsNestedMessage(t *testing.T) {
	resp := &http.Response{StatusCode: http.StatusTooManyRequests}
	got := RelayErrorHandler("openai", resp, []byte(`{"error":{"message":"rate limited","type":"rate_limit_error"}}`))

	assert.Equal(t, http.StatusTooManyRequests, got.StatusCode)
	assert.Equal(t, "openai API error", got.Error.Error)
	assert.Equal(t, "rate limited", got.Details)
}

func TestRelayErrorHandlerRawBodyFallback(t *testing.T) {
	resp := &http.Response{StatusCode: http.StatusBadGateway}
	got := RelayErrorHandler("gemini", resp, []byte("<html>bad gateway</html>"))

	assert.Equal(t, http.StatusBadGateway, got.StatusCode)
	assert.Equal(t, "<html>bad gateway</html>", got.Details)
}

func TestRelayErrorHandlerEmptyBody(t *testing.T) {
	resp := &http.Response{StatusCode: http.StatusServiceUnavailable}
	got := RelayErrorHandler("anthropic", resp, nil)

	assert.Equal(t, http.StatusServiceUnavailable, got.StatusCode)
	assert.Contains(t, got.Details, "503")
}

func TestRelayErrorHandlerNilResponse(t *testing.T) {
	got := RelayErrorHandler("openai", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
}
