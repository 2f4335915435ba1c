package audiotime

import (
	"math"
	"math/bits"
	"time"
)

// Conversion engine. Every function here is a pure function of its inputs
// and the System carried by the quantity; unit expansions are checked
// multiplications, unit contractions are exact by the divisibility
// invariants of Samples and Bytes.
//
// Duration conversions deliberately work at millisecond granularity with
// multiply-before-divide ordering. Round-tripping a count worth less than
// one millisecond through a duration therefore loses the sub-millisecond
// remainder. Downstream code asserts on this exact truncation, so the
// algorithm must not be changed to round or to use finer units.

func checkedMul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

//
// Frames <-> Bytes
//

func bytesToFrames(v Bytes) Frames {
	return Frames{n: v.n / uint64(v.sys.FrameSize()), sys: v.sys}
}

func framesToBytes(v Frames) (Bytes, error) {
	n, ok := checkedMul(v.n, uint64(v.sys.FrameSize()))
	if !ok {
		return Bytes{}, ErrOverflow
	}
	return Bytes{n: n, sys: v.sys}, nil
}

//
// Frames <-> Samples
//

func samplesToFrames(v Samples) Frames {
	return Frames{n: v.n / uint64(v.sys.Layout.Channels()), sys: v.sys}
}

func framesToSamples(v Frames) (Samples, error) {
	n, ok := checkedMul(v.n, uint64(v.sys.Layout.Channels()))
	if !ok {
		return Samples{}, ErrOverflow
	}
	return Samples{n: n, sys: v.sys}, nil
}

//
// Samples <-> Bytes
//

func bytesToSamples(v Bytes) Samples {
	return Samples{n: v.n / uint64(v.sys.Sample.ByteWidth()), sys: v.sys}
}

func samplesToBytes(v Samples) (Bytes, error) {
	n, ok := checkedMul(v.n, uint64(v.sys.Sample.ByteWidth()))
	if !ok {
		return Bytes{}, ErrOverflow
	}
	return Bytes{n: n, sys: v.sys}, nil
}

//
// Frames <-> Duration
//

// maxWholeMillis is the largest millisecond count representable as a
// time.Duration.
const maxWholeMillis = uint64(math.MaxInt64 / int64(time.Millisecond))

func framesToDuration(v Frames) (time.Duration, error) {
	scaled, ok := checkedMul(v.n, 1_000)
	if !ok {
		return 0, ErrOverflow
	}
	millis := scaled / uint64(v.sys.Rate.Hz())
	if millis > maxWholeMillis {
		return 0, ErrOverflow
	}
	return time.Duration(millis) * time.Millisecond, nil
}

func durationToFrames(sys System, d time.Duration) (Frames, error) {
	if d < 0 {
		return Frames{}, ErrOverflow
	}
	// 128-bit multiply keeps the multiply-before-divide ordering intact
	// for durations whose millisecond count times the rate exceeds 64
	// bits. A high word of 1000 or more means the quotient itself does
	// not fit.
	hi, lo := bits.Mul64(uint64(d.Milliseconds()), uint64(sys.Rate.Hz()))
	if hi >= 1_000 {
		return Frames{}, ErrOverflow
	}
	n, _ := bits.Div64(hi, lo, 1_000)
	return Frames{n: n, sys: sys}, nil
}
