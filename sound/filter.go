package sound

import "math"

type FilterType byte

const (
	LowPass FilterType = iota
	HighPass
)

// Butterworth is the default quality factor of a Biquad.
const Butterworth = math.Sqrt2 / 2

// Biquad is a second order filter with RBJ cookbook coefficients.
type Biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
	x1, x2     float64
	y1, y2     float64
}

func NewBiquad(t FilterType, rate int, freq, q float64) *Biquad {
	f := &Biquad{}
	nyquist := float64(rate) / 2
	if freq <= 0 || freq >= nyquist {
		// a low pass above nyquist or a high pass at zero passes everything
		if t == LowPass && freq >= nyquist || t == HighPass && freq <= 0 {
			f.b0 = 1
		}
		return f
	}
	if q <= 0 {
		q = Butterworth
	}
	w := 2 * math.Pi * freq / float64(rate)
	cos := math.Cos(w)
	alpha := math.Sin(w) / (2 * q)
	a0 := 1 + alpha
	switch t {
	case LowPass:
		f.b0 = (1 - cos) / 2
		f.b1 = 1 - cos
		f.b2 = (1 - cos) / 2
	case HighPass:
		f.b0 = (1 + cos) / 2
		f.b1 = -(1 + cos)
		f.b2 = (1 + cos) / 2
	}
	f.b0 /= a0
	f.b1 /= a0
	f.b2 /= a0
	f.a1 = -2 * cos / a0
	f.a2 = (1 - alpha) / a0
	return f
}

func (f *Biquad) Filter(x float64) float64 {
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	return y
}
