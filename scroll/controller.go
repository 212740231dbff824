package scroll

import (
	"fmt"
	"log"
)

// Box is the measured keyboard container against the viewport.
type Box struct {
	Viewport    float64
	Width       float64
	MarginRight float64
}

// Measurer measures the container. It reports false while the container is
// not attached.
type Measurer interface {
	Measure() (Box, bool)
}

// CenteredOffset is the horizontal shift that moves a right aligned box to
// the center of the viewport.
func CenteredOffset(b Box) float64 {
	right := b.Viewport - b.Width - b.MarginRight
	center := (b.Viewport - b.Width) / 2
	return center - right
}

type Region struct {
	Section  string
	Target   string
	Previous string
	Start    Anchor
	End      Anchor
	// LeaveBackDuration overrides the duration of the transition back to
	// Previous when positive.
	LeaveBackDuration float64
	LeaveBackDelay    float64
}

type Timing struct {
	Default   float64
	Durations map[string]float64
}

func (t Timing) duration(state string) float64 {
	if d, ok := t.Durations[state]; ok {
		return d
	}
	return t.Default
}

type Config struct {
	States  map[string]Transform
	Initial string
	// Centered names the state whose X is computed from the container.
	Centered string
	Regions  []Region
	Timing   Timing
	Ease     Ease
}

// Controller moves a Target between named states as the page scrolls
// across region starts.
type Controller struct {
	Config
	page      *Page
	target    *Target
	container Measurer
	triggers  []*Trigger
	cancel    []func()
	current   string
	mounted   bool
	Log       *log.Logger
}

func NewController(p *Page, t *Target, m Measurer, c Config) *Controller {
	return &Controller{Config: c, page: p, target: t, container: m}
}

func (c *Controller) Mounted() bool {
	return c.mounted
}

// Current is the state of the last transition.
func (c *Controller) Current() string {
	return c.current
}

func (c *Controller) Triggers() []*Trigger {
	return c.triggers
}

// Mount moves the target to the initial state and registers one trigger per
// region. It does nothing and reports false while the container is detached.
func (c *Controller) Mount() (bool, error) {
	if c.Mounted() {
		return true, nil
	}
	if _, ok := c.container.Measure(); !ok {
		return false, nil
	}
	_, h := c.page.Viewport()
	var triggers []*Trigger
	for _, r := range c.Regions {
		s, ok := c.page.Section(r.Section)
		if !ok {
			return false, fmt.Errorf("region %q: no such section", r.Section)
		}
		for _, n := range []string{r.Target, r.Previous} {
			if _, ok := c.States[n]; !ok {
				return false, fmt.Errorf("region %q: no such state %q", r.Section, n)
			}
		}
		r := r
		triggers = append(triggers, &Trigger{
			Start: r.Start.Offset(s, h),
			End:   r.End.Offset(s, h),
			OnEnter: func() {
				c.Apply(r.Target, 0, 0)
			},
			OnLeaveBack: func() {
				c.Apply(r.Previous, r.LeaveBackDuration, r.LeaveBackDelay)
			},
		})
	}
	c.Apply(c.Initial, 0, 0)
	c.mounted = true
	c.triggers = triggers
	for _, t := range triggers {
		t := t
		c.cancel = append(c.cancel, c.page.Observe(func(_, cur float64) {
			t.Update(cur)
		}))
	}
	for _, t := range triggers {
		t.Update(c.page.Offset())
	}
	return true, nil
}

// Unmount removes every trigger and stops the running tween.
func (c *Controller) Unmount() {
	for _, f := range c.cancel {
		f()
	}
	c.cancel = nil
	c.triggers = nil
	c.mounted = false
	c.target.Kill()
}

// Apply tweens the target to the named state. A positive duration overrides
// the timing of the state.
func (c *Controller) Apply(name string, duration, delay float64) {
	s, ok := c.States[name]
	if !ok {
		return
	}
	if name == c.Centered {
		b, ok := c.container.Measure()
		if !ok {
			return
		}
		s.X = CenteredOffset(b)
	}
	if duration <= 0 {
		duration = c.Timing.duration(name)
	}
	if c.Log != nil {
		c.Log.Printf("%s -> %s %.1fs", c.current, name, duration)
	}
	c.current = name
	c.target.To(s, duration, delay, c.Ease)
}

func (c *Controller) Update(dt float64) {
	c.target.Update(dt)
}
