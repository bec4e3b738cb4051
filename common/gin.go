package common

import (
	"bytes"
	"io"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"

	"github.com/studioforge/relay/common/ctxkey"
)

// GetRequestBody reads the request body once and caches it on the context so
// later stages (logging, error reports) can reuse it.
func GetRequestBody(c *gin.Context) ([]byte, error) {
	requestBody, ok := c.Get(ctxkey.KeyRequestBody)
	if ok {
		return requestBody.([]byte), nil
	}
	var body []byte
	var err error
	if c.Request.Body != nil {
		body, err = io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, errors.Wrap(err, "read request body failed")
		}
		_ = c.Request.Body.Close()
	}
	c.Set(ctxkey.KeyRequestBody, body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}
