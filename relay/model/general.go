package model

// Message is a single conversational turn from the plugin. Role is restricted
// to the two turn kinds the plugin produces; the system prompt is injected
// server-side and never appears here.
type Message struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

// GenerationRequest is the unified request shape accepted from the Studio
// plugin. Exactly one provider call is derived from it per request.
type GenerationRequest struct {
	// Context is a free-form serialized description of the user's workspace,
	// inserted verbatim into the system prompt.
	Context string `json:"context"`
	// Model selects the upstream provider by prefix (gpt-, gemini-, claude-).
	// Defaults to config.DefaultModel when absent or empty.
	Model string `json:"model"`
	// APIKey is the caller-supplied provider credential (BYOK).
	APIKey string `json:"apiKey"`
	// Messages is the ordered conversation history. Must be non-empty.
	Messages []Message `json:"messages" binding:"required,min=1,dive"`
}

// GenerationResponse is the only success shape returned to the caller.
type GenerationResponse struct {
	Text string `json:"text"`
}
