package adaptor

import (
	"net/http"

	"github.com/studioforge/relay/relay/meta"
	"github.com/studioforge/relay/relay/model"
)

// Adaptor translates the unified generation request into one provider's wire
// format and reduces that provider's response back to a single reply string.
// Implementations are stateless; one instance serves all requests.
type Adaptor interface {
	// GetRequestURL returns the fixed upstream endpoint for this request.
	// Gemini embeds both the model name and the credential in the URL.
	GetRequestURL(meta *meta.Meta) (string, error)
	// SetupRequestHeader applies provider-specific auth placement and any
	// fixed version headers to the outbound request.
	SetupRequestHeader(req *http.Request, meta *meta.Meta)
	// ConvertRequest builds the provider-specific payload from the unified
	// request plus the rendered system prompt. It must not mutate request.
	ConvertRequest(request *model.GenerationRequest, systemPrompt string) (any, error)
	// ExtractText reduces a 2xx response body to the assistant's reply text.
	// A missing or empty text field is an error: the upstream call succeeded
	// but violated its contract.
	ExtractText(body []byte) (string, error)
	GetProviderName() string
}
