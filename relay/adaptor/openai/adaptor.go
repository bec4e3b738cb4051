package openai

import (
	"encoding/json"
	"net/http"

	"github.com/Laisky/errors/v2"

	"github.com/studioforge/relay/relay/meta"
	"github.com/studioforge/relay/relay/model"
)

const baseURL = "https://api.openai.com"

type Adaptor struct{}

func (a *Adaptor) GetRequestURL(m *meta.Meta) (string, error) {
	return baseURL + "/v1/chat/completions", nil
}

func (a *Adaptor) SetupRequestHeader(req *http.Request, m *meta.Meta) {
	req.Header.Set("Authorization", "Bearer "+m.APIKey)
}

// ConvertRequest prepends the system prompt as a dedicated system message and
// forwards the conversation as-is: OpenAI roles match the unified roles.
func (a *Adaptor) ConvertRequest(request *model.GenerationRequest, systemPrompt string) (any, error) {
	messages := make([]ChatMessage, 0, len(request.Messages)+1)
	messages = append(messages, ChatMessage{Role: "system", Content: systemPrompt})
	for _, m := range request.Messages {
		messages = append(messages, ChatMessage{Role: m.Role, Content: m.Content})
	}
	return &ChatRequest{
		Model:    request.Model,
		Messages: messages,
	}, nil
}

func (a *Adaptor) ExtractText(body []byte) (string, error) {
	var resp ChatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errors.Wrap(err, "unmarshal openai response failed")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai response contains no choices")
	}
	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", errors.New("openai response contains empty message content")
	}
	return text, nil
}

func (a *Adaptor) GetProviderName() string {
	return "openai"
}
