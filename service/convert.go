package service

import (
	"fmt"
	"math"
	"time"

	audiotime "github.com/bt-bridge/audio-time"
	"github.com/bt-bridge/audio-time/shared"
)

// Unit names a quantity representation a request can convert from or to.
type Unit string

const (
	UnitFrames     Unit = "frames"
	UnitSamples    Unit = "samples"
	UnitBytes      Unit = "bytes"
	UnitDurationMs Unit = "duration_ms"
)

func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitFrames, UnitSamples, UnitBytes, UnitDurationMs:
		return Unit(s), nil
	}
	return "", fmt.Errorf("%w: %q", shared.ErrUnknownUnit, s)
}

// Presets names the encoding systems a request may refer to instead of
// spelling out a full descriptor.
var Presets = map[string]audiotime.System{
	"audio_cd":  audiotime.AudioCD,
	"dat":       audiotime.DAT,
	"telephony": audiotime.Telephony,
}

type ConvertRequest struct {
	// Exactly one of Preset and System selects the encoding system.
	Preset string            `json:"preset,omitempty"`
	System *audiotime.System `json:"system,omitempty"`
	From   string            `json:"from"`
	To     string            `json:"to"`
	// Value is a count in the From unit; for duration_ms it is a number
	// of milliseconds.
	Value uint64 `json:"value"`
}

type ConvertResponse struct {
	RequestId string           `json:"request_id"`
	System    audiotime.System `json:"system"`
	From      Unit             `json:"from"`
	To        Unit             `json:"to"`
	Value     uint64           `json:"value"`
	Result    uint64           `json:"result"`
}

type ErrorResponse struct {
	RequestId string `json:"request_id"`
	Error     string `json:"error"`
}

func (r *ConvertRequest) resolveSystem() (audiotime.System, error) {
	if r.System != nil {
		// Already validated by System.UnmarshalJSON.
		return *r.System, nil
	}
	if r.Preset == "" {
		return audiotime.System{}, shared.ErrNoConfig
	}
	sys, ok := Presets[r.Preset]
	if !ok {
		return audiotime.System{}, fmt.Errorf("%w: %q", shared.ErrUnknownPreset, r.Preset)
	}
	return sys, nil
}

const maxWholeMillis = uint64(math.MaxInt64 / int64(time.Millisecond))

// Convert normalizes the input to a frame count and expands to the target
// unit. Composing through frames is exactly how the core engine defines the
// duration conversions, so results, including the millisecond truncation,
// match the pairwise methods.
func Convert(sys audiotime.System, from, to Unit, value uint64) (uint64, error) {
	var frames audiotime.Frames
	switch from {
	case UnitFrames:
		frames = sys.Frames(value)
	case UnitSamples:
		samples, err := sys.Samples(value)
		if err != nil {
			return 0, err
		}
		frames = samples.ToFrames()
	case UnitBytes:
		byteCount, err := sys.Bytes(value)
		if err != nil {
			return 0, err
		}
		frames = byteCount.ToFrames()
	case UnitDurationMs:
		if value > maxWholeMillis {
			return 0, audiotime.ErrOverflow
		}
		var err error
		frames, err = sys.FramesFor(time.Duration(value) * time.Millisecond)
		if err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("%w: %q", shared.ErrUnknownUnit, from)
	}

	switch to {
	case UnitFrames:
		return frames.Get(), nil
	case UnitSamples:
		samples, err := frames.ToSamples()
		if err != nil {
			return 0, err
		}
		return samples.Get(), nil
	case UnitBytes:
		byteCount, err := frames.ToBytes()
		if err != nil {
			return 0, err
		}
		return byteCount.Get(), nil
	case UnitDurationMs:
		d, err := frames.ToDuration()
		if err != nil {
			return 0, err
		}
		return uint64(d.Milliseconds()), nil
	}
	return 0, fmt.Errorf("%w: %q", shared.ErrUnknownUnit, to)
}
