package config

import (
	"strings"

	"github.com/studioforge/relay/common/env"
)

var (
	// ServerPort overrides the --port flag when running inside container or PaaS environments.
	ServerPort = strings.TrimSpace(env.String("PORT", ""))
	// GinMode allows forcing Gin into release mode (or other modes) without recompiling.
	GinMode = strings.TrimSpace(env.String("GIN_MODE", ""))

	// DebugEnabled toggles verbose structured logging and diagnostic detail in
	// 500 responses when DEBUG=true. Never enable in a production posture.
	DebugEnabled = env.Bool("DEBUG", false)

	// DefaultModel is used when the client omits the model field entirely.
	DefaultModel = strings.TrimSpace(env.String("DEFAULT_MODEL", "gpt-4o-mini"))

	// RelayTimeout bounds upstream HTTP requests (seconds) before aborting them.
	// Zero keeps the transport default.
	RelayTimeout = env.Int("RELAY_TIMEOUT", 0)
	// RelayProxy provides an HTTP proxy for outbound relay requests to upstream providers.
	RelayProxy = env.String("RELAY_PROXY", "")

	// EnablePrometheusMetrics exposes the /metrics endpoint for Prometheus scrapers when true.
	EnablePrometheusMetrics = env.Bool("ENABLE_PROMETHEUS_METRICS", true)

	// FallbackKeyProviders enumerates which providers (comma-separated: openai,
	// gemini, anthropic) may fall back to a server-held credential when the
	// caller omits apiKey. Empty means strict BYOK for every provider.
	FallbackKeyProviders = strings.TrimSpace(env.String("FALLBACK_KEY_PROVIDERS", ""))

	// OpenAIAPIKey is the server-held OpenAI credential, used only when openai
	// is listed in FALLBACK_KEY_PROVIDERS.
	OpenAIAPIKey = strings.TrimSpace(env.String("OPENAI_API_KEY", ""))
	// GeminiAPIKey is the server-held Gemini credential, used only when gemini
	// is listed in FALLBACK_KEY_PROVIDERS.
	GeminiAPIKey = strings.TrimSpace(env.String("GEMINI_API_KEY", ""))
	// AnthropicAPIKey is the server-held Anthropic credential, used only when
	// anthropic is listed in FALLBACK_KEY_PROVIDERS.
	AnthropicAPIKey = strings.TrimSpace(env.String("ANTHROPIC_API_KEY", ""))
)

// FallbackEnabledFor reports whether the named provider may use a server-held
// credential. Matching is case-insensitive on the provider name.
func FallbackEnabledFor(providerName string) bool {
	if FallbackKeyProviders == "" {
		return false
	}
	for _, p := range strings.Split(FallbackKeyProviders, ",") {
		if strings.EqualFold(strings.TrimSpace(p), providerName) {
			return true
		}
	}
	return false
}

// FallbackProviders returns the providers with fallback enabled, for the
// status endpoint.
func FallbackProviders() []string {
	if FallbackKeyProviders == "" {
		return []string{}
	}
	var out []string
	for _, p := range strings.Split(FallbackKeyProviders, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
