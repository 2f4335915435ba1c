package audiotime

import "fmt"

// Encoding is the numeric family of a sample encoding. Together with the
// byte width it forms the identity of a SampleType, so that two encodings
// of equal width (say signed and unsigned 16-bit) never compare equal.
type Encoding uint8

const (
	Signed Encoding = iota + 1
	Unsigned
	Float
)

func (e Encoding) token() byte {
	switch e {
	case Signed:
		return 's'
	case Unsigned:
		return 'u'
	case Float:
		return 'f'
	}
	return '?'
}

// SampleType describes the binary encoding of a single sample: how many
// bytes it occupies and which numeric family it belongs to. The width alone
// is not an identity; S16 and U16 are distinct types of equal width.
//
// The common PCM encodings are predeclared (S8 through F64). Custom widths
// go through NewSampleType.
type SampleType struct {
	width uint8
	enc   Encoding
}

func NewSampleType(width uint8, enc Encoding) (SampleType, error) {
	if width == 0 {
		return SampleType{}, fmt.Errorf("%w: zero byte width", ErrBadSampleType)
	}
	if enc.token() == '?' {
		return SampleType{}, fmt.Errorf("%w: unknown encoding %d", ErrBadSampleType, enc)
	}
	return SampleType{width: width, enc: enc}, nil
}

func MustSampleType(width uint8, enc Encoding) SampleType {
	t, err := NewSampleType(width, enc)
	if err != nil {
		panic(fmt.Sprintf("audiotime: bad sample type: %v", err))
	}
	return t
}

// ByteWidth is the number of bytes used to represent one sample.
func (t SampleType) ByteWidth() uint8 {
	return t.width
}

func (t SampleType) Encoding() Encoding {
	return t.enc
}

// String renders the conventional PCM token: family letter plus bit count,
// e.g. "s16", "u8", "f32".
func (t SampleType) String() string {
	return fmt.Sprintf("%c%d", t.enc.token(), uint16(t.width)*8)
}

// ParseSampleType maps a PCM token back to a SampleType. The bit count must
// be a positive multiple of 8 that fits in one byte's worth of width.
func ParseSampleType(s string) (SampleType, error) {
	if len(s) < 2 {
		return SampleType{}, fmt.Errorf("%w: %q", ErrBadSampleType, s)
	}
	var enc Encoding
	switch s[0] {
	case 's':
		enc = Signed
	case 'u':
		enc = Unsigned
	case 'f':
		enc = Float
	default:
		return SampleType{}, fmt.Errorf("%w: %q", ErrBadSampleType, s)
	}
	var bits uint32
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return SampleType{}, fmt.Errorf("%w: %q", ErrBadSampleType, s)
		}
		bits = bits*10 + uint32(c-'0')
		if bits > 8*0xFF {
			return SampleType{}, fmt.Errorf("%w: %q", ErrBadSampleType, s)
		}
	}
	if bits == 0 || bits%8 != 0 {
		return SampleType{}, fmt.Errorf("%w: %q", ErrBadSampleType, s)
	}
	return NewSampleType(uint8(bits/8), enc)
}

// Predeclared PCM sample encodings.
var (
	S8  = SampleType{width: 1, enc: Signed}
	U8  = SampleType{width: 1, enc: Unsigned}
	S16 = SampleType{width: 2, enc: Signed}
	U16 = SampleType{width: 2, enc: Unsigned}
	S24 = SampleType{width: 3, enc: Signed}
	S32 = SampleType{width: 4, enc: Signed}
	F32 = SampleType{width: 4, enc: Float}
	F64 = SampleType{width: 8, enc: Float}
)
