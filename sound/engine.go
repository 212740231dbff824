package sound

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sync"
	"time"
)

var ErrUnavailable = errors.New("audio unavailable")

// Error is the failure of one synthesis request.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "sound: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Device plays mono sample buffers.
type Device interface {
	SampleRate() int
	Suspended() bool
	Resume() error
	Play([]float64) error
}

// Suspender is implemented by devices that can be suspended.
type Suspender interface {
	Suspend() error
}

// Factory opens a device. It is called on the first synthesis request and
// again on the next one for as long as it fails. A nil Factory means no
// audio at all.
type Factory func() (Device, error)

type Option func(*Engine)

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		e.rand = r
	}
}

// Engine owns one lazily opened device and renders one shot sounds into it.
type Engine struct {
	sync.Mutex
	open   Factory
	device Device
	log    *log.Logger
	noise  sync.Mutex
	rand   *rand.Rand
}

func NewEngine(f Factory, o ...Option) *Engine {
	e := &Engine{
		open: f,
		log:  log.New(os.Stderr, "sound: ", log.LstdFlags),
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, o := range o {
		o(e)
	}
	return e
}

// Context returns the device, opening it on first use and resuming it
// whenever it is found suspended.
func (e *Engine) Context() (Device, error) {
	e.Lock()
	defer e.Unlock()
	if e.device == nil {
		if e.open == nil {
			return nil, &Error{Op: "context", Err: ErrUnavailable}
		}
		d, err := e.open()
		if err != nil {
			return nil, &Error{Op: "context", Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
		}
		e.device = d
	}
	if e.device.Suspended() {
		err := e.device.Resume()
		if err != nil {
			return nil, &Error{Op: "resume", Err: err}
		}
	}
	return e.device, nil
}

// Suspend suspends an opened device. It does not open one.
func (e *Engine) Suspend() error {
	e.Lock()
	defer e.Unlock()
	s, ok := e.device.(Suspender)
	if !ok {
		return nil
	}
	return s.Suspend()
}

// play renders and plays one sound. An engine without a factory is silent.
func (e *Engine) play(op string, render func(rate int) ([]float64, error)) (err error) {
	if e.open == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = &Error{Op: op, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	d, err := e.Context()
	if err != nil {
		return err
	}
	a, err := render(d.SampleRate())
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	err = d.Play(a)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	return nil
}

// Tone plays a sine sweep.
func (e *Engine) Tone(start, end, duration, volume float64) error {
	s := Sweep{Start: start, End: end, Duration: duration, Volume: volume}
	return e.play("tone", func(rate int) ([]float64, error) {
		return RenderTone(rate, s)
	})
}

// Click plays a filtered noise click.
func (e *Engine) Click(v Variant) error {
	return e.play(v.String(), func(rate int) ([]float64, error) {
		e.noise.Lock()
		defer e.noise.Unlock()
		return RenderClick(rate, v, e.rand)
	})
}

func (e *Engine) sweep(s Sweep) {
	e.report(e.Tone(s.Start, s.End, s.Duration, s.Volume))
}

func (e *Engine) report(err error) {
	if err != nil {
		e.log.Println(err)
	}
}

func (e *Engine) Send()    { e.sweep(SendTone) }
func (e *Engine) Receive() { e.sweep(ReceiveTone) }
func (e *Engine) Press()   { e.report(e.Click(Press)) }
func (e *Engine) Release() { e.report(e.Click(Release)) }
