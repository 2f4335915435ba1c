package audiotime

import (
	"fmt"
	"time"
)

// Bytes is an audio time span measured by the number of bytes required for
// its representation. The count is invariantly a multiple of the system's
// frame size; the constructor and every arithmetic operation enforce this.
type Bytes struct {
	n   uint64
	sys System
}

// Bytes wraps a raw byte count in the system, rejecting counts that are not
// a multiple of the frame size.
func (s System) Bytes(n uint64) (Bytes, error) {
	if n%uint64(s.FrameSize()) != 0 {
		return Bytes{}, fmt.Errorf("%w: %d bytes in %d-byte frames", ErrNotDivisible, n, s.FrameSize())
	}
	return Bytes{n: n, sys: s}, nil
}

func (s System) MustBytes(n uint64) Bytes {
	v, err := s.Bytes(n)
	if err != nil {
		panic(fmt.Sprintf("audiotime: bad byte count: %v", err))
	}
	return v
}

func (b Bytes) Get() uint64 {
	return b.n
}

func (b Bytes) System() System {
	return b.sys
}

func (b Bytes) String() string {
	return fmt.Sprintf("%d", b.n)
}

// ToFrames converts to a frame count. Exact: the divisibility invariant
// guarantees no remainder.
func (b Bytes) ToFrames() Frames {
	return bytesToFrames(b)
}

// ToSamples converts to a sample count. Divisibility by the frame size
// implies divisibility by the sample width, so this too is exact.
func (b Bytes) ToSamples() Samples {
	return bytesToSamples(b)
}

// ToDuration converts through Frames, inheriting the millisecond
// truncation of the frame/duration conversion.
func (b Bytes) ToDuration() (time.Duration, error) {
	return b.ToFrames().ToDuration()
}

func (b Bytes) MustDuration() time.Duration {
	v, err := b.ToDuration()
	if err != nil {
		panic(fmt.Sprintf("audiotime: converting %d bytes to duration: %v", b.n, err))
	}
	return v
}

// Mul scales the count by k, failing on overflow. A multiple of the frame
// size times any scalar stays a multiple, so no re-validation is needed.
func (b Bytes) Mul(k uint64) (Bytes, error) {
	n, ok := checkedMul(b.n, k)
	if !ok {
		return Bytes{}, ErrOverflow
	}
	return Bytes{n: n, sys: b.sys}, nil
}

// Div divides the count by k and re-validates the invariant: the quotient
// must still be a multiple of the frame size.
func (b Bytes) Div(k uint64) (Bytes, error) {
	if k == 0 {
		return Bytes{}, ErrZeroDivisor
	}
	return b.sys.Bytes(b.n / k)
}

func (b Bytes) MustMul(k uint64) Bytes {
	v, err := b.Mul(k)
	if err != nil {
		panic(fmt.Sprintf("audiotime: %d bytes * %d: %v", b.n, k, err))
	}
	return v
}

func (b Bytes) MustDiv(k uint64) Bytes {
	v, err := b.Div(k)
	if err != nil {
		panic(fmt.Sprintf("audiotime: %d bytes / %d: %v", b.n, k, err))
	}
	return v
}

// BytesFor converts a duration to the byte count it spans in this system,
// composing through FramesFor.
func (s System) BytesFor(d time.Duration) (Bytes, error) {
	frames, err := s.FramesFor(d)
	if err != nil {
		return Bytes{}, err
	}
	return frames.ToBytes()
}

func (s System) MustBytesFor(d time.Duration) Bytes {
	v, err := s.BytesFor(d)
	if err != nil {
		panic(fmt.Sprintf("audiotime: converting %v to bytes: %v", d, err))
	}
	return v
}
