package audiotime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSampleRate(t *testing.T) {
	tests := []struct {
		name    string
		hz      uint32
		wantErr error
	}{
		{name: "cd rate", hz: 44_100},
		{name: "one hertz", hz: 1},
		{name: "max rate", hz: 1<<32 - 1},
		{name: "zero rejected", hz: 0, wantErr: ErrZeroSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := NewSampleRate(tt.hz)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hz, rate.Hz())
		})
	}

	assert.Panics(t, func() { MustSampleRate(0) })
}

func TestSampleRateString(t *testing.T) {
	assert.Equal(t, "44.1 kHz", MustSampleRate(44_100).String())
	assert.Equal(t, "48.0 kHz", MustSampleRate(48_000).String())
	assert.Equal(t, "800 Hz", MustSampleRate(800).String())
	assert.Equal(t, "1000 Hz", MustSampleRate(1_000).String())
}

func TestChannelLayout(t *testing.T) {
	assert.Equal(t, uint8(1), Mono.Channels())
	assert.Equal(t, uint8(2), Stereo.Channels())
	assert.Equal(t, uint8(0), ChannelLayout(0).Channels())
	assert.Equal(t, uint8(0), ChannelLayout(42).Channels())

	layout, err := ParseChannelLayout("mono")
	require.NoError(t, err)
	assert.Equal(t, Mono, layout)
	layout, err = ParseChannelLayout("stereo")
	require.NoError(t, err)
	assert.Equal(t, Stereo, layout)
	_, err = ParseChannelLayout("quad")
	assert.ErrorIs(t, err, ErrBadLayout)
}

func TestNewSystem(t *testing.T) {
	tests := []struct {
		name    string
		rate    SampleRate
		layout  ChannelLayout
		sample  SampleType
		wantErr error
	}{
		{name: "cd format", rate: MustSampleRate(44_100), layout: Stereo, sample: S16},
		{name: "mono f64", rate: MustSampleRate(8_000), layout: Mono, sample: F64},
		{name: "zero rate", layout: Stereo, sample: S16, wantErr: ErrZeroSampleRate},
		{name: "zero layout", rate: MustSampleRate(8_000), sample: S16, wantErr: ErrBadLayout},
		{name: "zero sample type", rate: MustSampleRate(8_000), layout: Mono, wantErr: ErrBadSampleType},
		{
			name:    "frame size over one byte",
			rate:    MustSampleRate(8_000),
			layout:  Stereo,
			sample:  MustSampleType(200, Signed),
			wantErr: ErrFrameSizeTooBig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys, err := NewSystem(tt.rate, tt.layout, tt.sample)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rate, sys.Rate)
			assert.Equal(t, tt.layout, sys.Layout)
			assert.Equal(t, tt.sample, sys.Sample)
		})
	}

	assert.Panics(t, func() { MustSystem(SampleRate{}, Stereo, S16) })
}

func TestFrameSize(t *testing.T) {
	tests := []struct {
		name   string
		layout ChannelLayout
		sample SampleType
		want   uint8
	}{
		{name: "mono s16", layout: Mono, sample: S16, want: 2},
		{name: "stereo s16", layout: Stereo, sample: S16, want: 4},
		{name: "stereo s32", layout: Stereo, sample: S32, want: 8},
		{name: "mono u8", layout: Mono, sample: U8, want: 1},
		{name: "stereo f64", layout: Stereo, sample: F64, want: 16},
		{name: "widest legal mono", layout: Mono, sample: MustSampleType(255, Signed), want: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := MustSystem(MustSampleRate(48_000), tt.layout, tt.sample)
			assert.Equal(t, tt.want, sys.FrameSize())
		})
	}

	// An unvalidated literal can overflow; FrameSize treats that as fatal.
	bad := System{Rate: MustSampleRate(48_000), Layout: Stereo, Sample: MustSampleType(200, Signed)}
	assert.Panics(t, func() { bad.FrameSize() })
}

func TestPresets(t *testing.T) {
	assert.Equal(t, uint32(44_100), AudioCD.Rate.Hz())
	assert.Equal(t, Stereo, AudioCD.Layout)
	assert.Equal(t, S16, AudioCD.Sample)
	assert.Equal(t, uint8(4), AudioCD.FrameSize())

	assert.Equal(t, uint32(48_000), DAT.Rate.Hz())
	assert.Equal(t, uint32(8_000), Telephony.Rate.Hz())
	assert.Equal(t, Mono, Telephony.Layout)
	assert.Equal(t, uint8(2), Telephony.FrameSize())

	assert.True(t, AudioCD.SameSystem(MustSystem(MustSampleRate(44_100), Stereo, S16)))
	assert.False(t, AudioCD.SameSystem(DAT))
}
