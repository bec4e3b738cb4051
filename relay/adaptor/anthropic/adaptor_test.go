package anthropic

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioforge/relay/relay/meta"
	"github.com/studioforge/relay/relay/model"
)

func TestConvertRequest(t *testing.T) {
	a := &Adaptor{}
	request := &model.GenerationRequest{
		Model: "claude-3-5-sonnet-20241022",
		Messages: []model.Message{
			{Role: "user", Content: "hi"},
			{Role: "assistant", Content: "hello"},
		},
	}

	converted, err := a.ConvertRequest(request, "system text")
	require.NoError(t, err)
	req, ok := converted.(*ChatRequest)
	require.True(t, ok)

	assert.Equal(t, "system text", req.System, "system prompt travels in the dedicated field")
	assert.Equal(t, "claude-3-5-sonnet-20241022", req.Model)
	assert.Equal(t, defaultMaxTokens, req.MaxTokens)
	require.Len(t, req.Messages, 2, "history forwarded without a system entry")
	assert.Equal(t, "user", req.Messages[0].Role)
	assert.Equal(t, "assistant", req.Messages[1].Role)
}

func TestSetupRequestHeader(t *testing.T) {
	a := &Adaptor{}
	req, err := http.NewRequest(http.MethodPost, "http://example.com", nil)
	require.NoError(t, err)
	a.SetupRequestHeader(req, &meta.Meta{APIKey: "sk-ant-test"})
	assert.Equal(t, "sk-ant-test", req.Header.Get("x-api-key"))
	assert.Equal(t, anthropicVersion, req.Header.Get("anthropic-version"))
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestGetRequestURL(t *testing.T) {
	a := &Adaptor{}
	url, err := a.GetRequestURL(&meta.Meta{ModelName: "claude-3-haiku-20240307"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.anthropic.com/v1/messages", url)
}

func TestExtractText(t *testing.T) {
	a := &Adaptor{}
	text, err := a.ExtractText([]byte(`{"content":[{"type":"text","text":"reply"}]}`))
	require.NoError(t, err)
	assert.Equal(t, "reply", text)
}

func TestExtractTextFailures(t *testing.T) {
	a := &Adaptor{}
	for name, body := range map[string]string{
		"no content":  `{"content":[]}`,
		"empty block": `{"content":[{"type":"text","text":""}]}`,
		"not json":    "upstream exploded",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := a.ExtractText([]byte(body))
			assert.Error(t, err)
		})
	}
}
