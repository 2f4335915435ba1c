package audiotime

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// JSON encoding of the descriptor types. Sample rates marshal as their
// hertz value, layouts and sample types as their string tokens, and a
// System as an object of the three. Quantities marshal as their bare count;
// they do not unmarshal, because a count alone cannot restore the System it
// was bound to.

func (r SampleRate) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(r.hz)
}

func (r *SampleRate) UnmarshalJSON(data []byte) error {
	var hz uint32
	if err := sonic.Unmarshal(data, &hz); err != nil {
		return fmt.Errorf("unmarshaling sample rate: %w", err)
	}
	rate, err := NewSampleRate(hz)
	if err != nil {
		return err
	}
	*r = rate
	return nil
}

func (l ChannelLayout) MarshalJSON() ([]byte, error) {
	if l.Channels() == 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLayout, uint8(l))
	}
	return sonic.Marshal(l.String())
}

func (l *ChannelLayout) UnmarshalJSON(data []byte) error {
	var token string
	if err := sonic.Unmarshal(data, &token); err != nil {
		return fmt.Errorf("unmarshaling channel layout: %w", err)
	}
	layout, err := ParseChannelLayout(token)
	if err != nil {
		return err
	}
	*l = layout
	return nil
}

func (t SampleType) MarshalJSON() ([]byte, error) {
	if t.width == 0 {
		return nil, ErrBadSampleType
	}
	return sonic.Marshal(t.String())
}

func (t *SampleType) UnmarshalJSON(data []byte) error {
	var token string
	if err := sonic.Unmarshal(data, &token); err != nil {
		return fmt.Errorf("unmarshaling sample type: %w", err)
	}
	st, err := ParseSampleType(token)
	if err != nil {
		return err
	}
	*t = st
	return nil
}

type systemJSON struct {
	Rate   SampleRate    `json:"rate"`
	Layout ChannelLayout `json:"layout"`
	Sample SampleType    `json:"sample"`
}

func (s System) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(systemJSON{Rate: s.Rate, Layout: s.Layout, Sample: s.Sample})
}

// UnmarshalJSON decodes and fully re-validates the descriptor, so a System
// read from the wire is as trustworthy as one built through NewSystem.
func (s *System) UnmarshalJSON(data []byte) error {
	var raw systemJSON
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshaling system: %w", err)
	}
	sys, err := NewSystem(raw.Rate, raw.Layout, raw.Sample)
	if err != nil {
		return err
	}
	*s = sys
	return nil
}

func (f Frames) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(f.n)
}

func (s Samples) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(s.n)
}

func (b Bytes) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(b.n)
}
