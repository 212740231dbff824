package scroll

import "math"

// Transform is the offset, scale and rotation in degrees of the keyboard.
type Transform struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Scale  float64 `yaml:"scale"`
	Rotate float64 `yaml:"rotate"`
}

var Identity = Transform{Scale: 1}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func (a Transform) Lerp(b Transform, t float64) Transform {
	return Transform{
		X:      lerp(a.X, b.X, t),
		Y:      lerp(a.Y, b.Y, t),
		Scale:  lerp(a.Scale, b.Scale, t),
		Rotate: lerp(a.Rotate, b.Rotate, t),
	}
}

type Ease func(float64) float64

// EaseOut decelerates cubically.
func EaseOut(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

type tween struct {
	from    Transform
	to      Transform
	started bool
	delay   float64
	length  float64
	elapsed float64
	ease    Ease
}

// Target is a transform animated by at most one tween. A new tween replaces
// the running one and starts from the current value.
type Target struct {
	value Transform
	tween *tween
}

func NewTarget(v Transform) *Target {
	return &Target{value: v}
}

func (t *Target) Value() Transform {
	return t.value
}

func (t *Target) Busy() bool {
	return t.tween != nil
}

func (t *Target) Destination() (Transform, bool) {
	if t.tween == nil {
		return t.value, false
	}
	return t.tween.to, true
}

func (t *Target) To(to Transform, duration, delay float64, ease Ease) {
	if ease == nil {
		ease = EaseOut
	}
	t.tween = &tween{to: to, delay: delay, length: duration, ease: ease}
}

func (t *Target) Kill() {
	t.tween = nil
}

// Update advances the running tween by dt seconds.
func (t *Target) Update(dt float64) {
	w := t.tween
	if w == nil {
		return
	}
	w.elapsed += dt
	if w.elapsed < w.delay {
		return
	}
	if !w.started {
		w.from = t.value
		w.started = true
	}
	x := 1.
	if w.length > 0 {
		x = math.Min(1, (w.elapsed-w.delay)/w.length)
	}
	t.value = w.from.Lerp(w.to, w.ease(x))
	if x >= 1 {
		t.value = w.to
		t.tween = nil
	}
}
