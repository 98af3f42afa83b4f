package checkout

import "errors"

var (
	// ErrInvalidSize is returned when the requested size is not one of AvailableSizes
	ErrInvalidSize = errors.New("invalid size")

	// ErrProviderUnavailable wraps any failure returned by the payment provider
	ErrProviderUnavailable = errors.New("payment provider unavailable")

	// ErrMissingRedirectURL is returned when the provider created a session without a hosted page URL
	ErrMissingRedirectURL = errors.New("checkout session has no redirect url")
)
