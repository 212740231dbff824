package sound

import (
	"encoding/binary"
	"math"
	"time"
)

func clamp(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}

// Int16Stereo encodes mono samples as 16 bit little endian stereo frames.
func Int16Stereo(a []float64) []byte {
	b := make([]byte, 4*len(a))
	for i, x := range a {
		v := uint16(int16(clamp(x) * math.MaxInt16))
		binary.LittleEndian.PutUint16(b[4*i:], v)
		binary.LittleEndian.PutUint16(b[4*i+2:], v)
	}
	return b
}

// Float32Stereo encodes mono samples as 32 bit float little endian stereo frames.
func Float32Stereo(a []float64) []byte {
	b := make([]byte, 8*len(a))
	for i, x := range a {
		v := math.Float32bits(float32(clamp(x)))
		binary.LittleEndian.PutUint32(b[8*i:], v)
		binary.LittleEndian.PutUint32(b[8*i+4:], v)
	}
	return b
}

// Length is the play time of n frames.
func Length(rate, n int) time.Duration {
	return time.Duration(n) * time.Second / time.Duration(rate)
}

// Pending reports whether a player still has audio to play. A player paused
// by a suspend is pending until its position reaches the length of its
// source.
func Pending(playing, suspended bool, position, length time.Duration) bool {
	return playing || suspended && position < length
}
