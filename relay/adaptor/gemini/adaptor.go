package gemini

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Laisky/errors/v2"

	"github.com/studioforge/relay/relay/meta"
	"github.com/studioforge/relay/relay/model"
)

const baseURL = "https://generativelanguage.googleapis.com"

// systemPromptDelimiter separates the injected system prompt from the first
// user turn inside the same text part.
const systemPromptDelimiter = "\n\n"

type Adaptor struct{}

// GetRequestURL embeds both the model name (URL path) and the credential
// (query parameter) — Gemini takes neither in the request body.
func (a *Adaptor) GetRequestURL(m *meta.Meta) (string, error) {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		baseURL, m.ModelName, url.QueryEscape(m.APIKey)), nil
}

func (a *Adaptor) SetupRequestHeader(req *http.Request, m *meta.Meta) {
	// Credential travels in the URL; no auth header.
}

// ConvertRequest maps the unified conversation onto Gemini contents:
// "assistant" becomes "model", everything else "user", and the system prompt
// is prepended to the first content's text. The input request is never
// mutated; a fresh contents slice is built on every call.
func (a *Adaptor) ConvertRequest(request *model.GenerationRequest, systemPrompt string) (any, error) {
	contents := make([]Content, 0, len(request.Messages))
	for _, m := range request.Messages {
		role := "user"
		if m.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, Content{
			Role:  role,
			Parts: []Part{{Text: m.Content}},
		})
	}

	if len(contents) == 0 {
		return nil, errors.New("no contents to inject system prompt into")
	}
	if len(contents[0].Parts) == 0 {
		// Translation always emits one text part per message, so an empty
		// parts slice means the invariant broke upstream of this call.
		return nil, errors.New("first content has no text part to carry the system prompt")
	}
	contents[0].Parts[0].Text = systemPrompt + systemPromptDelimiter + contents[0].Parts[0].Text

	return &ChatRequest{Contents: contents}, nil
}

func (a *Adaptor) ExtractText(body []byte) (string, error) {
	var resp ChatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.Wrap(err, "unmarshal gemini response failed")
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("gemini response contains no candidates")
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return "", errors.New("gemini response contains no text part")
	}
	return parts[0].Text, nil
}

func (a *Adaptor) GetProviderName() string {
	return "gemini"
}
