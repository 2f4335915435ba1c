package audiotime

import "fmt"

// SampleRate is the audio sampling rate, the number of frames in a single
// second (i.e. measured in hertz). The zero value is invalid; construct one
// through NewSampleRate or MustSampleRate.
type SampleRate struct {
	hz uint32
}

func NewSampleRate(hz uint32) (SampleRate, error) {
	if hz == 0 {
		return SampleRate{}, ErrZeroSampleRate
	}
	return SampleRate{hz: hz}, nil
}

// MustSampleRate is like NewSampleRate but panics on a zero rate. Intended
// for package-level constants describing known-good formats.
func MustSampleRate(hz uint32) SampleRate {
	rate, err := NewSampleRate(hz)
	if err != nil {
		panic(fmt.Sprintf("audiotime: bad sample rate %d: %v", hz, err))
	}
	return rate
}

func (r SampleRate) Hz() uint32 {
	return r.hz
}

func (r SampleRate) String() string {
	if r.hz > 1_000 {
		return fmt.Sprintf("%.1f kHz", float32(r.hz)/1_000)
	}
	return fmt.Sprintf("%d Hz", r.hz)
}

// ChannelLayout is the fixed arrangement of channels in a frame. The set of
// layouts is closed; new arrangements require a new constant here, there is
// no dynamic registration.
type ChannelLayout uint8

const (
	Mono ChannelLayout = iota + 1
	Stereo
)

// Channels returns the number of channels in the layout, or 0 for a value
// outside the known set.
func (l ChannelLayout) Channels() uint8 {
	switch l {
	case Mono:
		return 1
	case Stereo:
		return 2
	}
	return 0
}

func (l ChannelLayout) String() string {
	switch l {
	case Mono:
		return "mono"
	case Stereo:
		return "stereo"
	}
	return fmt.Sprintf("channel_layout(%d)", uint8(l))
}

// ParseChannelLayout maps a layout token ("mono", "stereo") back to its
// constant.
func ParseChannelLayout(s string) (ChannelLayout, error) {
	switch s {
	case "mono":
		return Mono, nil
	case "stereo":
		return Stereo, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadLayout, s)
}

// System encodes all parameters needed to interpret an audio time span as a
// number of frames, samples or bytes: the sampling rate, the channel layout
// and the per-sample encoding. It is an immutable value, typically created
// once per audio format and shared as read-only context by every conversion
// against that format.
type System struct {
	Rate   SampleRate
	Layout ChannelLayout
	Sample SampleType
}

// NewSystem validates the descriptor as a whole: each leaf must be
// constructed (non-zero) and the derived frame size must fit in a single
// byte. A failure here is a configuration error; quantities must only ever
// be built against a System that passed this check.
func NewSystem(rate SampleRate, layout ChannelLayout, sample SampleType) (System, error) {
	if rate.hz == 0 {
		return System{}, ErrZeroSampleRate
	}
	if layout.Channels() == 0 {
		return System{}, ErrBadLayout
	}
	if sample.width == 0 {
		return System{}, ErrBadSampleType
	}
	if uint16(layout.Channels())*uint16(sample.width) > 0xFF {
		return System{}, ErrFrameSizeTooBig
	}
	return System{Rate: rate, Layout: layout, Sample: sample}, nil
}

func MustSystem(rate SampleRate, layout ChannelLayout, sample SampleType) System {
	sys, err := NewSystem(rate, layout, sample)
	if err != nil {
		panic(fmt.Sprintf("audiotime: bad system: %v", err))
	}
	return sys
}

// FrameSize is the number of bytes used to represent a single frame, equal
// to the sample byte width times the channel count. It panics if the
// product does not fit in one byte, which cannot happen for a System built
// through NewSystem.
func (s System) FrameSize() uint8 {
	size := uint16(s.Layout.Channels()) * uint16(s.Sample.width)
	if size == 0 || size > 0xFF {
		panic(fmt.Sprintf("audiotime: frame size of %v exceeds one byte", s))
	}
	return uint8(size)
}

func (s System) String() string {
	return fmt.Sprintf("%s %s %s", s.Rate, s.Layout, s.Sample)
}

// SameSystem reports whether both descriptors describe the same format.
// Quantities only ever convert against their own System, so this is the
// check to run before treating counts from two sources as comparable.
func (s System) SameSystem(other System) bool {
	return s == other
}

// Well-known encoding systems.
var (
	// AudioCD is the Compact Disc Digital Audio standard: 2 channels of
	// LPCM audio, each signed 16-bit values sampled at 44100 Hz.
	AudioCD = System{Rate: SampleRate{hz: 44_100}, Layout: Stereo, Sample: S16}

	// DAT is the Digital Audio Tape standard rate with CD-style encoding.
	DAT = System{Rate: SampleRate{hz: 48_000}, Layout: Stereo, Sample: S16}

	// Telephony is narrowband voice: 8000 Hz, one channel, 16-bit signed.
	Telephony = System{Rate: SampleRate{hz: 8_000}, Layout: Mono, Sample: S16}
)
