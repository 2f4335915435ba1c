package audiotime

import "errors"

var (
	// ErrOverflow is returned when an arithmetic step would exceed the
	// representable range of the working integer, or when a duration lies
	// outside what the system's sample rate can express as a frame count.
	ErrOverflow = errors.New("audio time span overflows")

	// ErrNotDivisible is returned when a raw count does not satisfy the
	// divisibility invariant of the quantity being constructed: samples
	// must be a multiple of the channel count, bytes a multiple of the
	// frame size.
	ErrNotDivisible = errors.New("count does not divide evenly")

	ErrZeroSampleRate  = errors.New("sample rate must be positive")
	ErrZeroDivisor     = errors.New("division by zero")
	ErrBadLayout       = errors.New("unknown channel layout")
	ErrBadSampleType   = errors.New("invalid sample type")
	ErrFrameSizeTooBig = errors.New("frame size exceeds one byte")
)
