package sound

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

var ErrParam = errors.New("invalid synthesis parameter")

// Sweep is a sine tone gliding exponentially from Start to End Hz.
type Sweep struct {
	Start, End float64
	Duration   float64
	Volume     float64
}

var (
	SendTone    = Sweep{Start: 600, End: 300, Duration: .25, Volume: .08}
	ReceiveTone = Sweep{Start: 800, End: 400, Duration: .35, Volume: .10}
)

const (
	toneAttack  = .01
	toneFloor   = .001
	clickAttack = .003
	clickFloor  = .0001
)

func (s Sweep) validate() error {
	if s.Start <= 0 || s.End <= 0 || s.Duration <= 0 || s.Volume < 0 {
		return fmt.Errorf("%w: sweep %v", ErrParam, s)
	}
	return nil
}

// Frequency returns the automation of the oscillator frequency.
func (s Sweep) Frequency() *Param {
	return NewParam(s.Start).
		SetValueAtTime(s.Start, 0).
		ExponentialRampToValueAtTime(s.End, s.Duration)
}

// Gain returns the amplitude envelope of the tone.
func (s Sweep) Gain() *Param {
	return NewParam(0).
		SetValueAtTime(0, 0).
		LinearRampToValueAtTime(s.Volume, toneAttack).
		ExponentialRampToValueAtTime(toneFloor, s.Duration)
}

func frames(rate int, duration float64) int {
	return int(math.Round(float64(rate) * duration))
}

// RenderTone renders a sweep as mono samples at the given rate.
func RenderTone(rate int, s Sweep) ([]float64, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrParam, rate)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	freq, gain := s.Frequency(), s.Gain()
	o := SineOsc{Rate: float64(rate)}
	a := make([]float64, frames(rate, s.Duration))
	for i := range a {
		t := float64(i) / float64(rate)
		a[i] = o.Sine(freq.At(t)) * gain.At(t)
	}
	return a, nil
}

type Variant byte

const (
	Press Variant = iota
	Release
)

func (v Variant) String() string {
	switch v {
	case Press:
		return "press"
	case Release:
		return "release"
	}
	return fmt.Sprintf("Variant%d", byte(v))
}

// Click holds the shape of a filtered noise click.
type Click struct {
	Duration float64
	Volume   float64
	HighPass float64
	LowPass  float64
}

// Click returns the parameters of the variant. Release is shorter and
// brighter than press.
func (v Variant) Click() Click {
	if v == Release {
		return Click{Duration: .04, Volume: .14, HighPass: 900, LowPass: 8000}
	}
	return Click{Duration: .055, Volume: .18, HighPass: 650, LowPass: 8000}
}

func (c Click) Gain() *Param {
	return NewParam(clickFloor).
		SetValueAtTime(clickFloor, 0).
		LinearRampToValueAtTime(c.Volume, clickAttack).
		ExponentialRampToValueAtTime(clickFloor, c.Duration)
}

// Fade is the linear fade out applied to sample i of an n sample burst.
func Fade(i, n int) float64 {
	return 1 - float64(i)/float64(n)
}

// NoiseBurst returns white noise faded out linearly over its length.
func NoiseBurst(rate int, duration float64, r *rand.Rand) []float64 {
	n := frames(rate, duration)
	a := make([]float64, n)
	for i := range a {
		a[i] = (r.Float64()*2 - 1) * Fade(i, n)
	}
	return a
}

// RenderClick shapes a noise burst through a high pass, a low pass and the
// click envelope.
func RenderClick(rate int, v Variant, r *rand.Rand) ([]float64, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d", ErrParam, rate)
	}
	c := v.Click()
	a := NoiseBurst(rate, c.Duration, r)
	hp := NewBiquad(HighPass, rate, c.HighPass, Butterworth)
	lp := NewBiquad(LowPass, rate, c.LowPass, Butterworth)
	gain := c.Gain()
	for i, x := range a {
		a[i] = lp.Filter(hp.Filter(x)) * gain.At(float64(i)/float64(rate))
	}
	return a, nil
}
