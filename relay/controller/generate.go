package controller

import (
	"io"
	"net/http"
	"strings"

	"github.com/Laisky/errors/v2"
	gmw "github.com/Laisky/gin-middlewares/v6"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/studioforge/relay/common/config"
	"github.com/studioforge/relay/common/ctxkey"
	"github.com/studioforge/relay/relay"
	"github.com/studioforge/relay/relay/adaptor"
	"github.com/studioforge/relay/relay/meta"
	"github.com/studioforge/relay/relay/model"
	"github.com/studioforge/relay/relay/prompt"
	"github.com/studioforge/relay/relay/provider"
)

// RelayGenerateHelper runs the whole relay pipeline for one request:
// validate, select provider, resolve credential, build payload, invoke
// upstream, normalize. Every failure before the invoke step short-circuits
// without any upstream contact.
func RelayGenerateHelper(c *gin.Context) (*model.GenerationResponse, *model.ErrorWithStatusCode) {
	lg := gmw.GetLogger(c)

	var request model.GenerationRequest
	if err := c.ShouldBindBodyWith(&request, binding.JSON); err != nil {
		return nil, &model.ErrorWithStatusCode{
			StatusCode: http.StatusBadRequest,
			Error: model.Error{
				Error:    "Invalid request",
				Details:  bindErrorDetails(err),
				RawError: err,
			},
		}
	}

	if request.Model == "" {
		request.Model = config.DefaultModel
	}
	c.Set(ctxkey.RequestModel, request.Model)

	p, err := provider.ByModel(request.Model)
	if err != nil {
		return nil, &model.ErrorWithStatusCode{
			StatusCode: http.StatusBadRequest,
			Error: model.Error{
				Error:    "Unsupported model",
				Details:  "no provider matches model " + request.Model,
				RawError: err,
			},
		}
	}
	c.Set(ctxkey.Provider, p.String())

	apiKey, err := ResolveAPIKey(p, request.APIKey)
	if err != nil {
		return nil, &model.ErrorWithStatusCode{
			StatusCode: http.StatusBadRequest,
			Error: model.Error{
				Error:    "API key required",
				Details:  "supply apiKey in the request body for provider " + p.String(),
				RawError: err,
			},
		}
	}

	m := meta.GetByContext(c, p, request.Model, apiKey)
	a := relay.GetAdaptor(p)

	systemPrompt := prompt.BuildSystemPrompt(request.Context)
	payload, err := a.ConvertRequest(&request, systemPrompt)
	if err != nil {
		lg.Error("failed to convert request", zap.Error(err), zap.String("provider", p.String()))
		return nil, internalError(err)
	}

	resp, err := adaptor.DoRequestHelper(a, c, m, payload)
	if err != nil {
		lg.Error("upstream call failed", zap.Error(err), zap.String("provider", p.String()))
		return nil, internalError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		lg.Error("failed to read upstream response", zap.Error(err), zap.String("provider", p.String()))
		return nil, internalError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, RelayErrorHandler(a.GetProviderName(), resp, body)
	}

	text, err := a.ExtractText(body)
	if err != nil {
		// Upstream reported success but the contract was violated.
		lg.Error("unparseable provider response",
			zap.Error(err),
			zap.String("provider", p.String()),
			zap.Int("status_code", resp.StatusCode))
		return nil, &model.ErrorWithStatusCode{
			StatusCode: http.StatusInternalServerError,
			Error: model.Error{
				Error:    "Invalid provider response",
				Details:  err.Error(),
				RawError: err,
			},
		}
	}

	return &model.GenerationResponse{Text: text}, nil
}

// internalError maps unexpected failures to a generic 500. Diagnostic detail
// is only exposed when DEBUG=true; the full error is always logged.
func internalError(err error) *model.ErrorWithStatusCode {
	e := &model.ErrorWithStatusCode{
		StatusCode: http.StatusInternalServerError,
		Error: model.Error{
			Error:    "Internal server error",
			RawError: err,
		},
	}
	if config.DebugEnabled {
		e.Details = err.Error()
	}
	return e
}

// bindErrorDetails renders validator errors into a readable summary without
// leaking struct internals.
func bindErrorDetails(err error) string {
	var verrs validator.ValidationErrors
	if ok := errors.As(err, &verrs); ok {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			switch fe.Field() {
			case "Messages":
				parts = append(parts, "messages must contain at least one message")
			case "Role":
				parts = append(parts, "message role must be user or assistant")
			case "Content":
				parts = append(parts, "message content must not be empty")
			default:
				parts = append(parts, fe.Field()+" is invalid")
			}
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}
