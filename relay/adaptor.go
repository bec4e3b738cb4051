package relay

import (
	"github.com/studioforge/relay/relay/adaptor"
	"github.com/studioforge/relay/relay/adaptor/anthropic"
	"github.com/studioforge/relay/relay/adaptor/gemini"
	"github.com/studioforge/relay/relay/adaptor/openai"
	"github.com/studioforge/relay/relay/provider"
)

// GetAdaptor returns the stateless adaptor for the given provider. The switch
// is exhaustive over the provider enum; new providers must add a case here.
func GetAdaptor(p provider.Provider) adaptor.Adaptor {
	switch p {
	case provider.OpenAI:
		return &openai.Adaptor{}
	case provider.Gemini:
		return &gemini.Adaptor{}
	case provider.Anthropic:
		return &anthropic.Adaptor{}
	}
	return nil
}
