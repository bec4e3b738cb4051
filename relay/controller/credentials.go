package controller

import (
	"github.com/Laisky/errors/v2"

	"github.com/studioforge/relay/common/config"
	"github.com/studioforge/relay/relay/provider"
)

// ResolveAPIKey picks the credential for the outbound call. The caller's key
// always wins. A server-held key is used only when the deployment explicitly
// opted the provider into fallback via FALLBACK_KEY_PROVIDERS; otherwise the
// policy is strict BYOK and a missing key fails before any upstream contact.
func ResolveAPIKey(p provider.Provider, callerKey string) (string, error) {
	if callerKey != "" {
		return callerKey, nil
	}
	if config.FallbackEnabledFor(p.String()) {
		if key := serverKeyFor(p); key != "" {
			return key, nil
		}
	}
	return "", errors.Errorf("no API key supplied for provider %s", p)
}

func serverKeyFor(p provider.Provider) string {
	switch p {
	case provider.OpenAI:
		return config.OpenAIAPIKey
	case provider.Gemini:
		return config.GeminiAPIKey
	case provider.Anthropic:
		return config.AnthropicAPIKey
	}
	return ""
}
