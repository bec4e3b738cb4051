package helper

import (
	"fmt"

	"github.com/studioforge/relay/common/random"
)

const (
	RequestIdKey = "X-Relay-Request-Id"
)

// GenRequestID generates a sortable per-request identifier.
func GenRequestID() string {
	return GetTimeString() + random.GetRandomNumberString(8)
}

// MessageWithRequestId annotates a user-facing message with the request id so
// callers can reference it in bug reports.
func MessageWithRequestId(message string, id string) string {
	return fmt.Sprintf("%s (request id: %s)", message, id)
}
