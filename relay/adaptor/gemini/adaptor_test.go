package gemini

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioforge/relay/relay/meta"
	"github.com/studioforge/relay/relay/model"
)

func TestConvertRequestPreservesLengthAndOrder(t *testing.T) {
	a := &Adaptor{}
	request := &model.GenerationRequest{
		Model: "gemini-2.0-flash",
		Messages: []model.Message{
			{Role: "user", Content: "first"},
			{Role: "assistant", Content: "second"},
			{Role: "user", Content: "third"},
			{Role: "assistant", Content: "fourth"},
		},
	}

	converted, err := a.ConvertRequest(request, "SYSTEM PROMPT")
	require.NoError(t, err)
	req, ok := converted.(*ChatRequest)
	require.True(t, ok)

	require.Len(t, req.Contents, len(request.Messages))
	// Element 0 carries the system prompt, then its own text, in order.
	assert.True(t, strings.HasPrefix(req.Contents[0].Parts[0].Text, "SYSTEM PROMPT"))
	assert.True(t, strings.HasSuffix(req.Contents[0].Parts[0].Text, "first"))
	assert.Equal(t, "second", req.Contents[1].Parts[0].Text)
	assert.Equal(t, "third", req.Contents[2].Parts[0].Text)
	assert.Equal(t, "fourth", req.Contents[3].Parts[0].Text)
}

func TestConvertRequestRoleMapping(t *testing.T) {
	a := &Adaptor{}
	request := &model.GenerationRequest{
		Messages: []model.Message{
			{Role: "user", Content: "u"},
			{Role: "assistant", Content: "a"},
		},
	}
	converted, err := a.ConvertRequest(request, "sys")
	require.NoError(t, err)
	req := converted.(*ChatRequest)
	assert.Equal(t, "user", req.Contents[0].Role)
	assert.Equal(t, "model", req.Contents[1].Role, `assistant maps to "model"`)
}

func TestConvertRequestDoesNotMutateInput(t *testing.T) {
	a := &Adaptor{}
	request := &model.GenerationRequest{
		Messages: []model.Message{{Role: "user", Content: "untouched"}},
	}
	_, err := a.ConvertRequest(request, "sys")
	require.NoError(t, err)
	assert.Equal(t, "untouched", request.Messages[0].Content, "caller-supplied messages must never be mutated")

	// A second conversion starts from the original text again.
	converted, err := a.ConvertRequest(request, "sys")
	require.NoError(t, err)
	req := converted.(*ChatRequest)
	assert.Equal(t, 1, strings.Count(req.Contents[0].Parts[0].Text, "sys"))
}

func TestConvertRequestEmptyMessages(t *testing.T) {
	a := &Adaptor{}
	_, err := a.ConvertRequest(&model.GenerationRequest{}, "sys")
	assert.Error(t, err, "no first message to carry the system prompt")
}

func TestGetRequestURL(t *testing.T) {
	a := &Adaptor{}
	url, err := a.GetRequestURL(&meta.Meta{ModelName: "gemini-2.0-flash", APIKey: "k&y"})
	require.NoError(t, err)
	assert.Equal(t,
		"https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent?key=k%26y",
		url, "credential travels as an escaped query parameter")
}

func TestSetupRequestHeaderHasNoAuthHeader(t *testing.T) {
	a := &Adaptor{}
	req, err := http.NewRequest(http.MethodPost, "http://example.com", nil)
	require.NoError(t, err)
	a.SetupRequestHeader(req, &meta.Meta{APIKey: "secret"})
	assert.Empty(t, req.Header.Get("Authorization"))
	assert.Empty(t, req.Header.Get("x-goog-api-key"))
}

func TestExtractText(t *testing.T) {
	a := &Adaptor{}
	text, err := a.ExtractText([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"reply"}]}}]}`))
	require.NoError(t, err)
	assert.Equal(t, "reply", text)
}

func TestExtractTextFailures(t *testing.T) {
	a := &Adaptor{}
	cases := []struct {
		name string
		body string
	}{
		{"missing candidates", `{}`},
		{"empty candidates", `{"candidates":[]}`},
		{"no parts", `{"candidates":[{"content":{"role":"model","parts":[]}}]}`},
		{"empty text", `{"candidates":[{"content":{"role":"model","parts":[{"text":""}]}}]}`},
		{"not json", "internal error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := a.ExtractText([]byte(tc.body))
			assert.Error(t, err)
		})
	}
}
