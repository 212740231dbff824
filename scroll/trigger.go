package scroll

import "math"

// Trigger fires OnEnter when the offset moves down past Start and
// OnLeaveBack when it moves back to or above it.
type Trigger struct {
	Start       float64
	End         float64
	OnEnter     func()
	OnLeaveBack func()
	entered     bool
}

func (t *Trigger) Update(offset float64) {
	in := offset > t.Start
	switch {
	case in && !t.entered:
		t.entered = true
		if t.OnEnter != nil {
			t.OnEnter()
		}
	case !in && t.entered:
		t.entered = false
		if t.OnLeaveBack != nil {
			t.OnLeaveBack()
		}
	}
}

func (t *Trigger) Entered() bool {
	return t.entered
}

// Progress is the position of offset between Start and End, clamped to [0, 1].
func (t *Trigger) Progress(offset float64) float64 {
	if t.End <= t.Start {
		if offset >= t.Start {
			return 1
		}
		return 0
	}
	return math.Max(0, math.Min(1, (offset-t.Start)/(t.End-t.Start)))
}
