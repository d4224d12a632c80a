// Package core defines sentinel errors.
package core

import "errors"

// Sentinel errors, wrapped with %w and matched with errors.Is.
var (
	// Payload decoding errors
	ErrMalformedPayload   = errors.New("encounter: malformed payload")
	ErrMissingField       = errors.New("encounter: missing required field")
	ErrUnknownRequestKind = errors.New("encounter: unknown request kind")
	ErrUnknownCatchStatus = errors.New("encounter: unknown catch status")

	// Assembly errors
	ErrCreatureUnresolved = errors.New("encounter: creature could not be resolved")

	// Subscription errors
	ErrSubscriptionConflict = errors.New("encounter: subscription already attached")
	ErrBusClosed            = errors.New("encounter: event bus closed")
	ErrQueueFull            = errors.New("encounter: event bus queue full")

	// Configuration errors
	ErrConfigInvalid = errors.New("encounter: invalid configuration")
)
