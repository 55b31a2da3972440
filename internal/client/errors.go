package client

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrProviderTimeout is returned when the bounded request timeout elapsed
// before the provider answered. Kept distinct from ProviderError so callers
// can offer a "try again" affordance for transient network conditions.
var ErrProviderTimeout = errors.New("payment provider request timed out")

const maxProviderMessageLen = 200

// ProviderError is a non-success response from a payment rail. Message is
// truncated at construction so provider internals never reach end users.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s error %d: %s", e.Provider, e.StatusCode, e.Message)
}

func newProviderError(provider string, statusCode int, message string) *ProviderError {
	if len(message) > maxProviderMessageLen {
		message = message[:maxProviderMessageLen]
	}
	return &ProviderError{
		Provider:   provider,
		StatusCode: statusCode,
		Message:    message,
	}
}

// wrapTransportError maps client-side timeouts onto ErrProviderTimeout and
// leaves everything else as a wrapped transport error.
func wrapTransportError(provider string, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%s: %w", provider, ErrProviderTimeout)
	}
	return fmt.Errorf("%s request: %w", provider, err)
}
