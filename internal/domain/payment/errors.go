package payment

import "errors"

var (
	// ErrInvalidSignature is returned when a webhook payload fails provider signature verification
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrVerificationUnavailable is returned when no signing secret is configured
	ErrVerificationUnavailable = errors.New("webhook signing secret is not configured")

	// ErrMalformedEvent is returned when a correctly signed payload is not a provider event
	ErrMalformedEvent = errors.New("malformed webhook event")
)
