package matching

import "errors"

var (
	// ErrNotConfigured means no ranking-model API key is present. The
	// endpoint degrades to a clear error instead of crashing.
	ErrNotConfigured = errors.New("matching service is not configured")

	// ErrUpstream covers ranking-model timeouts, transport failures,
	// non-OK statuses and unparseable responses. Upstream detail is logged
	// for operators but never forwarded to the caller.
	ErrUpstream = errors.New("matching service temporarily unavailable")
)

// ValidationError marks a malformed request; the handler maps it to a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
