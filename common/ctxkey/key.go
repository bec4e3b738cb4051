package ctxkey

import "github.com/gin-gonic/gin"

const (
	// RequestId is the per-request unique identifier, also echoed as a response
	// header. Set in: middleware.RequestId. Read in: controllers for error
	// annotation and logging.
	RequestId = "X-Relay-Request-Id"

	// RequestModel is the model name as requested by the client (after
	// defaulting). Set in: relay controller once the request is validated.
	// Read for logging and metrics labels; never mutated afterwards.
	RequestModel = "request_model"

	// Provider is the human-readable name of the selected upstream provider.
	// Set in: relay controller after prefix dispatch. Read in: metrics
	// middleware and logging.
	Provider = "provider"

	// KeyRequestBody caches the raw request body bytes for reuse (avoid double read).
	// Set in: common.GetRequestBody and common.UnmarshalBodyReusable.
	KeyRequestBody = gin.BodyBytesKey
)
