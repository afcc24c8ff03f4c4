package domain

import "errors"

// Sentinel errors for domain error conditions.
// Use errors.Is() for matching - never compare error strings.
var (
	// Clock errors. A failed clock read is fatal: every derived field
	// would be wrong, so no default is ever substituted.
	ErrClockBeforeEpoch = errors.New("clock reports a time before the unix epoch")
	ErrClockOutOfRange  = errors.New("clock reports a time after year 9999")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// Configuration errors
	ErrConfigRequired = errors.New("required configuration key missing")
)

// IsFatal returns true if the error means no valid reading can be produced
// and the caller must abort rather than retry or degrade.
func IsFatal(err error) bool {
	return errors.Is(err, ErrClockBeforeEpoch) || errors.Is(err, ErrClockOutOfRange)
}

// IsClientError returns true if the error represents a client-side issue
// that will not succeed on retry without client-side changes.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
