package audiotime

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		sys  System
		json string
	}{
		{name: "audio cd", sys: AudioCD, json: `{"rate":44100,"layout":"stereo","sample":"s16"}`},
		{name: "telephony", sys: Telephony, json: `{"rate":8000,"layout":"mono","sample":"s16"}`},
		{
			name: "custom",
			sys:  MustSystem(MustSampleRate(96_000), Stereo, F32),
			json: `{"rate":96000,"layout":"stereo","sample":"f32"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := sonic.Marshal(tt.sys)
			require.NoError(t, err)
			assert.JSONEq(t, tt.json, string(raw))

			var back System
			require.NoError(t, sonic.Unmarshal(raw, &back))
			assert.Equal(t, tt.sys, back)
		})
	}
}

func TestSystemJSONValidation(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{name: "zero rate", json: `{"rate":0,"layout":"mono","sample":"s16"}`},
		{name: "bad layout", json: `{"layout":"quad","rate":8000,"sample":"s16"}`},
		{name: "bad sample token", json: `{"layout":"mono","rate":8000,"sample":"q16"}`},
		{name: "missing fields", json: `{}`},
		{name: "oversized frame", json: `{"rate":8000,"layout":"stereo","sample":"s1600"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sys System
			assert.Error(t, sonic.Unmarshal([]byte(tt.json), &sys))
		})
	}
}

func TestQuantityJSON(t *testing.T) {
	raw, err := sonic.Marshal(AudioCD.Frames(44_100))
	require.NoError(t, err)
	assert.Equal(t, "44100", string(raw))

	raw, err = sonic.Marshal(AudioCD.MustSamples(88_200))
	require.NoError(t, err)
	assert.Equal(t, "88200", string(raw))

	raw, err = sonic.Marshal(AudioCD.MustBytes(176_400))
	require.NoError(t, err)
	assert.Equal(t, "176400", string(raw))
}

func TestDescriptorJSONLeaves(t *testing.T) {
	raw, err := sonic.Marshal(MustSampleRate(48_000))
	require.NoError(t, err)
	assert.Equal(t, "48000", string(raw))

	raw, err = sonic.Marshal(Stereo)
	require.NoError(t, err)
	assert.Equal(t, `"stereo"`, string(raw))

	raw, err = sonic.Marshal(U16)
	require.NoError(t, err)
	assert.Equal(t, `"u16"`, string(raw))

	var st SampleType
	require.NoError(t, sonic.Unmarshal([]byte(`"f64"`), &st))
	assert.Equal(t, F64, st)
}
