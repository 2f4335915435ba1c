// # Go Package for Audio Time Span Conversion
//
// This repository provides a Go package for converting audio time spans between their discrete representations (frame count, sample count, byte count) and wall-clock durations, all relative to a fixed encoding system (sample rate, channel layout and per-sample encoding). It is designed to be imported into audio-processing projects that need to move between "how much data" and "how much time" without repeating error-prone arithmetic or losing overflow and divisibility guarantees.
package audiotime
