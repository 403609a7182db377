package types

import "errors"

// Sentinel errors for frauddesk operations.
var (
	// ErrEmptyParameter indicates an attempt to encode a Parameter with no
	// variant populated.
	ErrEmptyParameter = errors.New("rule parameter has no variant populated")

	// ErrUnknownEnumValue indicates input that matches no wire enum value.
	ErrUnknownEnumValue = errors.New("unknown enum value")

	// ErrSaveInFlight indicates a save was requested while one is pending.
	ErrSaveInFlight = errors.New("a save is already in flight")

	// ErrReviewStatusRequired indicates a review submission without a
	// review status selection.
	ErrReviewStatusRequired = errors.New("review status must be selected")
)
