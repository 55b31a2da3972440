package service

import (
	"errors"

	"futurefunded/internal/client"
)

var (
	// local validation failures, surfaced before any network call
	ErrInvalidAmount  = errors.New("donation amount must be at least $1.00")
	ErrMissingOrderID = errors.New("order id is required")

	ErrProviderTimeout = client.ErrProviderTimeout
)

// ProviderError is re-exported so callers can handle the whole payment error
// taxonomy through this package.
type ProviderError = client.ProviderError
