package anthropic

import (
	"encoding/json"
	"net/http"

	"github.com/Laisky/errors/v2"

	"github.com/studioforge/relay/relay/meta"
	"github.com/studioforge/relay/relay/model"
)

const (
	baseURL = "https://api.anthropic.com"
	// anthropicVersion is the pinned Messages API version header value.
	anthropicVersion = "2023-06-01"
	// defaultMaxTokens caps the completion length; the Messages API rejects
	// requests without an explicit max_tokens.
	defaultMaxTokens = 4096
)

type Adaptor struct{}

func (a *Adaptor) GetRequestURL(m *meta.Meta) (string, error) {
	return baseURL + "/v1/messages", nil
}

func (a *Adaptor) SetupRequestHeader(req *http.Request, m *meta.Meta) {
	req.Header.Set("x-api-key", m.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)
}

// ConvertRequest passes the system prompt through the dedicated system field
// and normalizes roles: "assistant" stays, everything else becomes "user".
func (a *Adaptor) ConvertRequest(request *model.GenerationRequest, systemPrompt string) (any, error) {
	messages := make([]Message, 0, len(request.Messages))
	for _, m := range request.Messages {
		role := "user"
		if m.Role == "assistant" {
			role = "assistant"
		}
		messages = append(messages, Message{Role: role, Content: m.Content})
	}
	return &ChatRequest{
		Model:     request.Model,
		MaxTokens: defaultMaxTokens,
		System:    systemPrompt,
		Messages:  messages,
	}, nil
}

func (a *Adaptor) ExtractText(body []byte) (string, error) {
	var resp ChatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.Wrap(err, "unmarshal anthropic response failed")
	}
	if len(resp.Content) == 0 {
		return "", errors.New("anthropic response contains no content blocks")
	}
	text := resp.Content[0].Text
	if text == "" {
		return "", errors.New("anthropic response contains empty content block")
	}
	return text, nil
}

func (a *Adaptor) GetProviderName() string {
	return "anthropic"
}
