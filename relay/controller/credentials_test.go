package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioforge/relay/common/config"
	"github.com/studioforge/relay/relay/provider"
)

func TestResolveAPIKeyCallerWins(t *testing.T) {
	key, err := ResolveAPIKey(provider.OpenAI, "sk-caller")
	require.NoError(t, err)
	assert.Equal(t, "sk-caller", key)
}

func TestResolveAPIKeyStrictBYOKByDefault(t *testing.T) {
	origProviders := config.FallbackKeyProviders
	origKey := config.OpenAIAPIKey
	t.Cleanup(func() {
		config.FallbackKeyProviders = origProviders
		config.OpenAIAPIKey = origKey
	})
	config.FallbackKeyProviders = ""
	config.OpenAIAPIKey = "sk-server"

	// Even with a server key configured, fallback is off unless the provider
	// is explicitly listed.
	_, err := ResolveAPIKey(provider.OpenAI, "")
	assert.Error(t, err)
}

func TestResolveAPIKeyFallbackOnlyForListedProviders(t *testing.T) {
	origProviders := config.FallbackKeyProviders
	origOpenAI := config.OpenAIAPIKey
	origGemini := config.GeminiAPIKey
	t.Cleanup(func() {
		config.FallbackKeyProviders = origProviders
		config.OpenAIAPIKey = origOpenAI
		config.GeminiAPIKey = origGemini
	})
	config.FallbackKeyProviders = "openai"
	config.OpenAIAPIKey = "sk-server"
	config.GeminiAPIKey = "gm-server"

	key, err := ResolveAPIKey(provider.OpenAI, "")
	require.NoError(t, err)
	assert.Equal(t, "sk-server", key)

	_, err = ResolveAPIKey(provider.Gemini, "")
	assert.Error(t, err, "gemini is not listed, its server key must be ignored")
}

func TestResolveAPIKeyFallbackListedButUnset(t *testing.T) {
	origProviders := config.FallbackKeyProviders
	origKey := config.AnthropicAPIKey
	t.Cleanup(func() {
		config.FallbackKeyProviders = origProviders
		config.AnthropicAPIKey = origKey
	})
	config.FallbackKeyProviders = "anthropic"
	config.AnthropicAPIKey = ""

	_, err := ResolveAPIKey(provider.Anthropic, "")
	assert.Error(t, err)
}
