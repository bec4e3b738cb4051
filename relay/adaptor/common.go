package adaptor

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/Laisky/errors/v2"
	gmw "github.com/Laisky/gin-middlewares/v6"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/studioforge/relay/common/client"
	"github.com/studioforge/relay/common/logger"
	"github.com/studioforge/relay/relay/meta"
)

// DoRequestHelper marshals the converted payload and issues the single
// outbound call to the selected provider. The caller buffers the full
// response body; no retries, no streaming.
func DoRequestHelper(a Adaptor, c *gin.Context, m *meta.Meta, payload any) (*http.Response, error) {
	fullRequestURL, err := a.GetRequestURL(m)
	if err != nil {
		return nil, errors.Wrap(err, "get request url failed")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal provider payload failed")
	}

	req, err := http.NewRequestWithContext(gmw.Ctx(c), http.MethodPost, fullRequestURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "new request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	a.SetupRequestHeader(req, m)

	logger.Logger.Info("sending request to upstream provider",
		zap.String("provider", a.GetProviderName()),
		zap.String("model", m.ModelName),
		zap.String("request_id", m.RequestId))

	resp, err := client.HTTPClient.Do(req)
	if err != nil {
		logger.Logger.Error("upstream request failed",
			zap.Error(err),
			zap.String("provider", a.GetProviderName()),
			zap.String("model", m.ModelName),
			zap.String("request_id", m.RequestId))
		return nil, errors.Wrap(err, "do request failed")
	}
	if resp == nil {
		return nil, errors.New("resp is nil")
	}
	return resp, nil
}
