package audiotime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleTypeWidths(t *testing.T) {
	assert.Equal(t, uint8(1), S8.ByteWidth())
	assert.Equal(t, uint8(1), U8.ByteWidth())
	assert.Equal(t, uint8(2), S16.ByteWidth())
	assert.Equal(t, uint8(3), S24.ByteWidth())
	assert.Equal(t, uint8(4), S32.ByteWidth())
	assert.Equal(t, uint8(4), F32.ByteWidth())
	assert.Equal(t, uint8(8), F64.ByteWidth())
}

func TestSampleTypeIdentity(t *testing.T) {
	// Equal width never makes two encodings interchangeable.
	assert.NotEqual(t, S16, U16)
	assert.NotEqual(t, S32, F32)
	assert.Equal(t, S16, MustSampleType(2, Signed))
	assert.Equal(t, F64, MustSampleType(8, Float))
}

func TestNewSampleType(t *testing.T) {
	tests := []struct {
		name    string
		width   uint8
		enc     Encoding
		wantErr bool
	}{
		{name: "signed 16-bit", width: 2, enc: Signed},
		{name: "widest", width: 255, enc: Unsigned},
		{name: "zero width", width: 0, enc: Signed, wantErr: true},
		{name: "unknown encoding", width: 2, enc: Encoding(9), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := NewSampleType(tt.width, tt.enc)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadSampleType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.width, st.ByteWidth())
			assert.Equal(t, tt.enc, st.Encoding())
		})
	}

	assert.Panics(t, func() { MustSampleType(0, Signed) })
}

func TestSampleTypeTokens(t *testing.T) {
	tests := []struct {
		token string
		want  SampleType
	}{
		{token: "s8", want: S8},
		{token: "u8", want: U8},
		{token: "s16", want: S16},
		{token: "u16", want: U16},
		{token: "s24", want: S24},
		{token: "s32", want: S32},
		{token: "f32", want: F32},
		{token: "f64", want: F64},
		{token: "s40", want: MustSampleType(5, Signed)},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			st, err := ParseSampleType(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, st)
			assert.Equal(t, tt.token, st.String())
		})
	}

	for _, bad := range []string{"", "s", "16", "x16", "s15", "s0", "ssixteen", "s99999"} {
		t.Run("bad "+bad, func(t *testing.T) {
			_, err := ParseSampleType(bad)
			assert.ErrorIs(t, err, ErrBadSampleType)
		})
	}
}
