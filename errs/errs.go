// Package errs defines the sentinel errors returned across the tdmsgo module.
//
// Every fallible call wraps one of these with fmt.Errorf("%w: ...", ErrXxx, ...)
// so callers can test the failure kind with errors.Is while still getting a
// descriptive message.
package errs

import "errors"

var (
	// ErrOutOfCapacity is returned when adding a group or channel would exceed
	// its parent's configured bound (MaxGroups, MaxChannels).
	ErrOutOfCapacity = errors.New("tdms: capacity exhausted")

	// ErrWrongArg is returned for an unsupported or inconsistent argument: an
	// unwritable data type, a zero-width property type, or a mismatched value
	// count.
	ErrWrongArg = errors.New("tdms: wrong argument")

	// ErrNameTooLong is returned when a group or channel name exceeds its
	// configured bound. Description and unit strings are not length-checked.
	ErrNameTooLong = errors.New("tdms: name too long")

	// ErrBufferTooSmall is returned when the caller-supplied buffer is smaller
	// than the size previously reported by the size-query call.
	ErrBufferTooSmall = errors.New("tdms: buffer too small")

	// ErrSizeOverflow is returned when a segment's computed size would exceed
	// the 32-bit running size counters the emit path aggregates in.
	ErrSizeOverflow = errors.New("tdms: segment size overflow")
)
