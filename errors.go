package pixtone

import "errors"

var (
	// ErrNotFound is returned when a source path does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDecode is returned for unreadable or corrupt image data.
	ErrDecode = errors.New("decode failed")
	// ErrEncode is returned when an array can not be encoded.
	ErrEncode = errors.New("encode failed")
	// ErrPermission is returned when a file can not be read or written due to permissions.
	ErrPermission = errors.New("permission denied")
	// ErrInvalidInput is returned for arrays violating the rectangular 8-bit grid invariant
	// or for invalid transform parameters.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDegenerateRange is returned by contrast stretching when the low and high percentiles coincide.
	ErrDegenerateRange = errors.New("degenerate range")
)
