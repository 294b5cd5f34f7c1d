package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable indicates the provider is not wired or not usable.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ErrMissingCredential indicates a provider has no API key configured. The
// caller treats this as a disabled feature, not a failure to report.
var ErrMissingCredential = errors.New("provider credential missing")

// StatusError captures a non-2xx response from an upstream provider.
type StatusError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unexpected status"
	}
	return fmt.Sprintf("%s: %s (status=%d)", e.Provider, msg, e.StatusCode)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
