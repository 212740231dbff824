package sound

import "math"

type SineOsc struct {
	Rate  float64
	phase float64
}

func (o *SineOsc) Sine(freq float64) float64 {
	x := math.Sin(2 * math.Pi * o.phase)
	_, o.phase = math.Modf(o.phase + freq/o.Rate)
	return x
}
