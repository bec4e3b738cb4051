package gemini

// Wire shapes for the generateContent endpoint. Gemini has no system role;
// the system prompt is folded into the first content's text. Roles are
// restricted to "user" and "model".

type Part struct {
	Text string `json:"text,omitempty"`
}

type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

type ChatRequest struct {
	Contents []Content `json:"contents"`
}

type ChatCandidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
	Index        int     `json:"index"`
}

type ChatResponse struct {
	Candidates []ChatCandidate `json:"candidates"`
}
