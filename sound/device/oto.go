package device

import (
	"bytes"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/pshvedko/keyscroll/sound"
)

type otoDevice struct {
	sync.Mutex
	ctx       *oto.Context
	rate      int
	suspended bool
}

// Oto opens devices on an oto context with float samples.
func Oto(rate int) sound.Factory {
	return func() (sound.Device, error) {
		c, ready, err := oto.NewContext(rate, 2, oto.FormatFloat32LE)
		if err != nil {
			return nil, err
		}
		<-ready
		return &otoDevice{ctx: c, rate: rate}, nil
	}
}

func (d *otoDevice) SampleRate() int {
	return d.rate
}

func (d *otoDevice) Suspended() bool {
	d.Lock()
	defer d.Unlock()
	return d.suspended
}

func (d *otoDevice) Suspend() error {
	d.Lock()
	defer d.Unlock()
	err := d.ctx.Suspend()
	if err != nil {
		return err
	}
	d.suspended = true
	return nil
}

func (d *otoDevice) Resume() error {
	d.Lock()
	defer d.Unlock()
	err := d.ctx.Resume()
	if err != nil {
		return err
	}
	d.suspended = false
	return nil
}

func (d *otoDevice) Play(a []float64) error {
	if err := d.ctx.Err(); err != nil {
		return err
	}
	p := d.ctx.NewPlayer(bytes.NewReader(sound.Float32Stereo(a)))
	p.Play()
	// a suspended context keeps unfinished players playing
	go func() {
		for p.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		_ = p.Close()
	}()
	return nil
}
