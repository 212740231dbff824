package device

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/audio"

	"github.com/pshvedko/keyscroll/sound"
)

type ebitenDevice struct {
	sync.Mutex
	ctx       *audio.Context
	rate      int
	suspended bool
	live      map[*audio.Player]struct{}
}

// Ebiten opens devices on the ebiten audio context. Only one ebiten audio
// context may exist per process.
func Ebiten(rate int) sound.Factory {
	return func() (sound.Device, error) {
		c, err := audio.NewContext(rate)
		if err != nil {
			return nil, err
		}
		return &ebitenDevice{
			ctx:  c,
			rate: rate,
			live: map[*audio.Player]struct{}{},
		}, nil
	}
}

func (d *ebitenDevice) SampleRate() int {
	return d.rate
}

func (d *ebitenDevice) Suspended() bool {
	d.Lock()
	defer d.Unlock()
	return d.suspended
}

func (d *ebitenDevice) Suspend() error {
	d.Lock()
	defer d.Unlock()
	d.suspended = true
	for p := range d.live {
		_ = p.Pause()
	}
	return nil
}

func (d *ebitenDevice) Resume() error {
	d.Lock()
	defer d.Unlock()
	d.suspended = false
	for p := range d.live {
		err := p.Play()
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *ebitenDevice) Play(a []float64) error {
	p, err := audio.NewPlayerFromBytes(d.ctx, sound.Int16Stereo(a))
	if err != nil {
		return err
	}
	d.Lock()
	d.live[p] = struct{}{}
	if !d.suspended {
		err = p.Play()
	}
	d.Unlock()
	if err != nil {
		d.drop(p)
		return err
	}
	n := sound.Length(d.rate, len(a))
	go func() {
		for sound.Pending(p.IsPlaying(), d.Suspended(), p.Current(), n) {
			time.Sleep(10 * time.Millisecond)
		}
		d.drop(p)
	}()
	return nil
}

func (d *ebitenDevice) drop(p *audio.Player) {
	d.Lock()
	delete(d.live, p)
	d.Unlock()
	_ = p.Close()
}
