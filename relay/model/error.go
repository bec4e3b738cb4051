package model

// Error is the client-facing failure contract: a short category plus an
// optional diagnostic payload.
type Error struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	// RawError preserves the original upstream or internal error for logging.
	// Omitted from JSON to avoid leaking provider internals.
	RawError error `json:"-"`
}

// ErrorWithStatusCode pairs an Error with the HTTP status to respond with.
// The status code travels out-of-band, never in the JSON body.
type ErrorWithStatusCode struct {
	Error
	StatusCode int `json:"-"`
}
