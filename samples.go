package audiotime

import (
	"fmt"
	"time"
)

// Samples is an audio time span measured by the number of samples contained
// in it. Every frame holds one sample per channel, so the count is
// invariantly a multiple of the system's channel count; the constructor and
// every arithmetic operation enforce this.
type Samples struct {
	n   uint64
	sys System
}

// Samples wraps a raw sample count in the system, rejecting counts that are
// not a multiple of the channel count.
func (s System) Samples(n uint64) (Samples, error) {
	if n%uint64(s.Layout.Channels()) != 0 {
		return Samples{}, fmt.Errorf("%w: %d samples across %d channels", ErrNotDivisible, n, s.Layout.Channels())
	}
	return Samples{n: n, sys: s}, nil
}

func (s System) MustSamples(n uint64) Samples {
	v, err := s.Samples(n)
	if err != nil {
		panic(fmt.Sprintf("audiotime: bad sample count: %v", err))
	}
	return v
}

func (s Samples) Get() uint64 {
	return s.n
}

func (s Samples) System() System {
	return s.sys
}

func (s Samples) String() string {
	return fmt.Sprintf("%d", s.n)
}

// ToFrames converts to a frame count. Exact: the divisibility invariant
// guarantees no remainder.
func (s Samples) ToFrames() Frames {
	return samplesToFrames(s)
}

// ToBytes converts to a byte count, samples times the sample byte width.
func (s Samples) ToBytes() (Bytes, error) {
	return samplesToBytes(s)
}

// ToDuration converts through Frames, inheriting the millisecond
// truncation of the frame/duration conversion.
func (s Samples) ToDuration() (time.Duration, error) {
	return s.ToFrames().ToDuration()
}

func (s Samples) MustBytes() Bytes {
	v, err := s.ToBytes()
	if err != nil {
		panic(fmt.Sprintf("audiotime: converting %d samples to bytes: %v", s.n, err))
	}
	return v
}

func (s Samples) MustDuration() time.Duration {
	v, err := s.ToDuration()
	if err != nil {
		panic(fmt.Sprintf("audiotime: converting %d samples to duration: %v", s.n, err))
	}
	return v
}

// Mul scales the count by k, failing on overflow. A multiple of the channel
// count times any scalar stays a multiple, so no re-validation is needed.
func (s Samples) Mul(k uint64) (Samples, error) {
	n, ok := checkedMul(s.n, k)
	if !ok {
		return Samples{}, ErrOverflow
	}
	return Samples{n: n, sys: s.sys}, nil
}

// Div divides the count by k and re-validates the invariant: the quotient
// must still be a multiple of the channel count.
func (s Samples) Div(k uint64) (Samples, error) {
	if k == 0 {
		return Samples{}, ErrZeroDivisor
	}
	return s.sys.Samples(s.n / k)
}

func (s Samples) MustMul(k uint64) Samples {
	v, err := s.Mul(k)
	if err != nil {
		panic(fmt.Sprintf("audiotime: %d samples * %d: %v", s.n, k, err))
	}
	return v
}

func (s Samples) MustDiv(k uint64) Samples {
	v, err := s.Div(k)
	if err != nil {
		panic(fmt.Sprintf("audiotime: %d samples / %d: %v", s.n, k, err))
	}
	return v
}

// SamplesFor converts a duration to the sample count it spans in this
// system, composing through FramesFor.
func (s System) SamplesFor(d time.Duration) (Samples, error) {
	frames, err := s.FramesFor(d)
	if err != nil {
		return Samples{}, err
	}
	return frames.ToSamples()
}

func (s System) MustSamplesFor(d time.Duration) Samples {
	v, err := s.SamplesFor(d)
	if err != nil {
		panic(fmt.Sprintf("audiotime: converting %v to samples: %v", d, err))
	}
	return v
}
