package sound

import (
	"math"
	"sort"
)

type ramp byte

const (
	step ramp = iota
	linear
	exponential
)

type event struct {
	time  float64
	value float64
	ramp
}

// Param is a value automated over time in seconds. Ramps run from the
// preceding event to the time of the ramp event itself.
type Param struct {
	value  float64
	events []event
}

func NewParam(v float64) *Param {
	return &Param{value: v}
}

func (p *Param) schedule(e event) *Param {
	i := sort.Search(len(p.events), func(i int) bool {
		return p.events[i].time > e.time
	})
	p.events = append(p.events, event{})
	copy(p.events[i+1:], p.events[i:])
	p.events[i] = e
	return p
}

func (p *Param) SetValueAtTime(v, t float64) *Param {
	return p.schedule(event{time: t, value: v, ramp: step})
}

func (p *Param) LinearRampToValueAtTime(v, t float64) *Param {
	return p.schedule(event{time: t, value: v, ramp: linear})
}

func (p *Param) ExponentialRampToValueAtTime(v, t float64) *Param {
	return p.schedule(event{time: t, value: v, ramp: exponential})
}

// At returns the automated value at time t.
func (p *Param) At(t float64) float64 {
	t0, v0 := 0., p.value
	for _, e := range p.events {
		if e.time <= t {
			t0, v0 = e.time, e.value
			continue
		}
		x := (t - t0) / (e.time - t0)
		switch e.ramp {
		case linear:
			return v0 + (e.value-v0)*x
		case exponential:
			if v0*e.value <= 0 {
				return v0
			}
			return v0 * math.Pow(e.value/v0, x)
		}
		return v0
	}
	return v0
}
