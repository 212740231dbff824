// Package window runs the piano in an ebiten window.
package window

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten"

	"github.com/pshvedko/keyscroll/ico"
	"github.com/pshvedko/keyscroll/piano"
)

const (
	wheelStep = 60
	arrowStep = 12
)

type button struct {
	state bool
	click int
	time  time.Time
}

type Window struct {
	piano  *piano.Piano
	button map[ebiten.Key]bool
	mouse  map[ebiten.MouseButton]button
}

func New(p *piano.Piano) *Window {
	return &Window{
		piano:  p,
		button: map[ebiten.Key]bool{},
		mouse:  map[ebiten.MouseButton]button{},
	}
}

// KeyPressed reports a release of k since the last call.
func (w *Window) KeyPressed(k ebiten.Key) bool {
	b := w.button[k]
	w.button[k] = ebiten.IsKeyPressed(k)
	return b && !w.button[k]
}

func (w *Window) MouseClicked(m ebiten.MouseButton, t time.Time) int {
	o := w.mouse[m]
	b := o.state
	o.state = ebiten.IsMouseButtonPressed(m)
	if b && !o.state {
		o.click++
		o.time = t
	} else if t.Sub(o.time) > 250*time.Millisecond {
		o.click = 0
		o.time = t
	}
	w.mouse[m] = o
	return o.click
}

func (w *Window) input() piano.Input {
	var in piano.Input
	_, dy := ebiten.Wheel()
	in.Scroll = -dy * wheelStep
	pw, ph := w.piano.Layout()
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyDown):
		in.Scroll += arrowStep
	case ebiten.IsKeyPressed(ebiten.KeyUp):
		in.Scroll -= arrowStep
	}
	if w.KeyPressed(ebiten.KeyPageDown) {
		in.Scroll += .9 * float64(ph)
	}
	if w.KeyPressed(ebiten.KeyPageUp) {
		in.Scroll -= .9 * float64(ph)
	}
	if w.KeyPressed(ebiten.KeyHome) {
		in.Scroll -= w.piano.Page().Height()
	}
	if w.KeyPressed(ebiten.KeyEnd) {
		in.Scroll += w.piano.Page().Height()
	}
	x, y := ebiten.CursorPosition()
	in.X, in.Y = float64(x), float64(y)
	in.Inside = x >= 0 && y >= 0 && x < pw && y < ph
	if w.KeyPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			in.BackTab = true
		} else {
			in.Tab = true
		}
	}
	in.Enter = w.KeyPressed(ebiten.KeyEnter)
	in.Mute = w.KeyPressed(ebiten.KeyM)
	in.Escape = w.KeyPressed(ebiten.KeyEscape)
	return in
}

func (w *Window) Update(screen *ebiten.Image) error {
	in := w.input()
	switch ebiten.IsFullscreen() {
	case true:
		if in.Escape || w.KeyPressed(ebiten.KeyF) {
			ebiten.SetFullscreen(false)
			in.Escape = false
		}
	case false:
		if w.MouseClicked(ebiten.MouseButtonLeft, time.Now()) == 2 || w.KeyPressed(ebiten.KeyF) {
			ebiten.SetFullscreen(true)
		}
	}
	err := w.piano.Step(in)
	if err != nil {
		return err
	}
	return screen.ReplacePixels(w.piano.Draw().Pix)
}

func (w *Window) Layout(int, int) (int, int) {
	return w.piano.Layout()
}

// Run attaches the piano and blocks until the window is closed.
func (w *Window) Run(title string) (err error) {
	w.piano.Attach()
	defer func() {
		_ = w.piano.Close()
	}()
	ebiten.SetWindowIcon([]image.Image{ico.Draw(16), ico.Draw(32), ico.Draw(48)})
	ebiten.SetWindowTitle(title)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowSize(w.piano.Layout())
	return ebiten.RunGame(w)
}
