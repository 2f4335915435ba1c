package audiotime

import (
	"fmt"
	"time"
)

// Frames is an audio time span measured by the number of frames contained
// in it. A frame is one time-slice of audio holding one sample per channel,
// the atomic unit all other quantities derive from, so any non-negative
// count is valid.
//
// A Frames value is bound to the System that created it for its whole
// lifetime; conversions always run against that System.
type Frames struct {
	n   uint64
	sys System
}

// Frames wraps a raw frame count in the system. Unlike Samples and Bytes
// there is no divisibility invariant to check.
func (s System) Frames(n uint64) Frames {
	return Frames{n: n, sys: s}
}

func (f Frames) Get() uint64 {
	return f.n
}

func (f Frames) System() System {
	return f.sys
}

func (f Frames) String() string {
	return fmt.Sprintf("%d", f.n)
}

// ToSamples converts to a sample count, frames times the channel count.
func (f Frames) ToSamples() (Samples, error) {
	return framesToSamples(f)
}

// ToBytes converts to a byte count, frames times the frame size.
func (f Frames) ToBytes() (Bytes, error) {
	return framesToBytes(f)
}

// ToDuration converts to a wall-clock duration at millisecond granularity.
// Sub-millisecond remainders are truncated; see the package documentation
// on the precision policy.
func (f Frames) ToDuration() (time.Duration, error) {
	return framesToDuration(f)
}

// MustSamples is ToSamples for callers that have proven the count in range;
// it panics on overflow.
func (f Frames) MustSamples() Samples {
	v, err := f.ToSamples()
	if err != nil {
		panic(fmt.Sprintf("audiotime: converting %d frames to samples: %v", f.n, err))
	}
	return v
}

func (f Frames) MustBytes() Bytes {
	v, err := f.ToBytes()
	if err != nil {
		panic(fmt.Sprintf("audiotime: converting %d frames to bytes: %v", f.n, err))
	}
	return v
}

func (f Frames) MustDuration() time.Duration {
	v, err := f.ToDuration()
	if err != nil {
		panic(fmt.Sprintf("audiotime: converting %d frames to duration: %v", f.n, err))
	}
	return v
}

// Mul scales the count by k, failing on overflow.
func (f Frames) Mul(k uint64) (Frames, error) {
	n, ok := checkedMul(f.n, k)
	if !ok {
		return Frames{}, ErrOverflow
	}
	return Frames{n: n, sys: f.sys}, nil
}

// Div divides the count by k.
func (f Frames) Div(k uint64) (Frames, error) {
	if k == 0 {
		return Frames{}, ErrZeroDivisor
	}
	return Frames{n: f.n / k, sys: f.sys}, nil
}

func (f Frames) MustMul(k uint64) Frames {
	v, err := f.Mul(k)
	if err != nil {
		panic(fmt.Sprintf("audiotime: %d frames * %d: %v", f.n, k, err))
	}
	return v
}

func (f Frames) MustDiv(k uint64) Frames {
	v, err := f.Div(k)
	if err != nil {
		panic(fmt.Sprintf("audiotime: %d frames / %d: %v", f.n, k, err))
	}
	return v
}

// FramesFor converts a duration to the frame count it spans in this system,
// flooring at millisecond granularity.
func (s System) FramesFor(d time.Duration) (Frames, error) {
	return durationToFrames(s, d)
}

func (s System) MustFramesFor(d time.Duration) Frames {
	v, err := s.FramesFor(d)
	if err != nil {
		panic(fmt.Sprintf("audiotime: converting %v to frames: %v", d, err))
	}
	return v
}
