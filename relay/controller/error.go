package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/studioforge/relay/relay/model"
)

// GeneralErrorResponse covers the error body shapes the three providers
// return, so the caller gets the nested human-readable message when one
// exists instead of a JSON blob.
type GeneralErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Status  string `json:"status"`
	} `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func (e GeneralErrorResponse) ToMessage() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Detail != "" {
		return e.Detail
	}
	return ""
}

// RelayErrorHandler normalizes a non-2xx upstream response: the upstream
// status code is propagated to the caller, the error field names the
// provider, and details carries the best-effort extracted message with the
// raw body as fallback.
func RelayErrorHandler(providerName string, resp *http.Response, body []byte) *model.ErrorWithStatusCode {
	if resp == nil {
		return &model.ErrorWithStatusCode{
			StatusCode: http.StatusInternalServerError,
			Error: model.Error{
				Error:   fmt.Sprintf("%s API error", providerName),
				Details: "no response from upstream",
			},
		}
	}

	details := string(body)
	var errResponse GeneralErrorResponse
	if err := json.Unmarshal(body, &errResponse); err == nil {
		if msg := errResponse.ToMessage(); msg != "" {
			details = msg
		}
	}
	if details == "" {
		details = fmt.Sprintf("bad response status code %d", resp.StatusCode)
	}

	return &model.ErrorWithStatusCode{
		StatusCode: resp.StatusCode,
		Error: model.Error{
			Error:   fmt.Sprintf("%s API error", providerName),
			Details: details,
		},
	}
}
