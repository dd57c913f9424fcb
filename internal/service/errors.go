package service

import "errors"

// Failure classes surfaced to callers. Every error returned by this package
// wraps exactly one of them, so callers can switch on errors.Is.
var (
	// ErrInvalidInput covers malformed or out-of-range input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrResolutionFailed means the provider was asked and could not answer.
	ErrResolutionFailed = errors.New("resolution failed")
	// ErrRecordNotFound means the referenced listing does not exist.
	ErrRecordNotFound = errors.New("record not found")
	// ErrMissingCoordinate means the listing exists but was never resolved.
	ErrMissingCoordinate = errors.New("record has no coordinate")
	// ErrStoreWriteFailed is an infrastructure failure while writing.
	ErrStoreWriteFailed = errors.New("store write failed")
	// ErrStoreReadFailed is an infrastructure failure while reading.
	ErrStoreReadFailed = errors.New("store read failed")
)
