package piano

import (
	"image"
	"log"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/pshvedko/keyscroll/config"
	"github.com/pshvedko/keyscroll/scroll"
)

// Tick is the duration of one Step in seconds.
const Tick = 1. / 60

const (
	replyDelay = .6
	keyAspect  = .28
	keyTop     = .58
)

// Sounds is everything the piano plays.
type Sounds interface {
	Clicker
	Send()
	Receive()
	Suspend() error
}

// Input is the user input of one tick. Scroll is in pixels, positive down.
type Input struct {
	Scroll  float64
	X, Y    float64
	Inside  bool
	Tab     bool
	BackTab bool
	Escape  bool
	Enter   bool
	Mute    bool
}

type draw struct {
	*gg.Context
}

type progress struct {
	x, y, w float64
}

type Piano struct {
	draw
	rgba      *image.RGBA
	config    *config.Config
	page      *scroll.Page
	target    *scroll.Target
	motion    *scroll.Controller
	keys      *Keyboard
	order     []*Key
	selection *Selection
	sound     Sounds
	hover     *Key
	focus     int
	reply     float64
	bar       progress
	width     int
	height    int
	log       *log.Logger
}

// New builds a detached piano. Nothing moves until Attach.
func New(c *config.Config, s Sounds, l *log.Logger) (*Piano, error) {
	w, h := c.Window.Width, c.Window.Height
	page, err := c.Page(float64(w), float64(h))
	if err != nil {
		return nil, err
	}
	sc, err := c.Scroll()
	if err != nil {
		return nil, err
	}
	p := &Piano{
		config:    c,
		page:      page,
		target:    scroll.NewTarget(c.States[c.Initial]),
		keys:      NewKeyboard(c.Skills, c.Keyboard.WhiteKeys, c.Keyboard.BlackSlots),
		selection: NewSelection(s),
		sound:     s,
		focus:     -1,
		width:     w,
		height:    h,
		log:       l,
	}
	p.order = p.keys.Keys()
	p.motion = scroll.NewController(page, p.target, p, sc)
	p.motion.Log = l
	return p, nil
}

// Attach creates the canvas the keyboard is drawn on.
func (p *Piano) Attach() {
	p.rgba = image.NewRGBA(image.Rectangle{
		Max: image.Point{
			X: p.width,
			Y: p.height,
		},
	})
	p.Context = gg.NewContextForRGBA(p.rgba)
	p.SetFontFace(basicfont.Face7x13)
	margin := float64(p.height) / 40
	p.bar = progress{x: margin, y: float64(p.height) - margin, w: float64(p.width) - 2*margin}
}

func (p *Piano) Attached() bool {
	return p.rgba != nil
}

// Measure reports the keyboard container against the viewport.
func (p *Piano) Measure() (scroll.Box, bool) {
	if !p.Attached() {
		return scroll.Box{}, false
	}
	w, _ := p.page.Viewport()
	kw, _ := p.size()
	return scroll.Box{Viewport: w, Width: kw, MarginRight: p.config.Keyboard.MarginRight}, true
}

func (p *Piano) Page() *scroll.Page {
	return p.page
}

func (p *Piano) Motion() *scroll.Controller {
	return p.motion
}

func (p *Piano) Selection() *Selection {
	return p.selection
}

func (p *Piano) Keyboard() *Keyboard {
	return p.keys
}

func (p *Piano) Layout() (int, int) {
	return p.width, p.height
}

func (p *Piano) size() (float64, float64) {
	w := p.config.Keyboard.Width * float64(p.width)
	return w, w * keyAspect
}

// origin is the untransformed top left corner of the right aligned keyboard.
func (p *Piano) origin() (float64, float64) {
	w, h := p.size()
	return float64(p.width) - w - p.config.Keyboard.MarginRight, float64(p.height)*keyTop - h/2
}

func (p *Piano) center() (float64, float64) {
	x, y := p.origin()
	w, h := p.size()
	t := p.target.Value()
	return x + w/2 + t.X, y + h/2 + t.Y
}

// Screen maps keyboard coordinates to window coordinates.
func (p *Piano) Screen(x, y float64) (float64, float64) {
	w, h := p.size()
	cx, cy := p.center()
	t := p.target.Value()
	dx, dy := (x-w/2)*t.Scale, (y-h/2)*t.Scale
	sin, cos := math.Sincos(gg.Radians(t.Rotate))
	return cx + dx*cos - dy*sin, cy + dx*sin + dy*cos
}

// Local maps window coordinates to keyboard coordinates.
func (p *Piano) Local(x, y float64) (float64, float64) {
	w, h := p.size()
	cx, cy := p.center()
	t := p.target.Value()
	if t.Scale == 0 {
		return math.Inf(-1), math.Inf(-1)
	}
	dx, dy := x-cx, y-cy
	sin, cos := math.Sincos(-gg.Radians(t.Rotate))
	lx, ly := dx*cos-dy*sin, dx*sin+dy*cos
	return lx/t.Scale + w/2, ly/t.Scale + h/2
}

func (p *Piano) KeyAt(x, y float64) *Key {
	w, h := p.size()
	lx, ly := p.Local(x, y)
	return p.keys.At(lx, ly, w, h)
}

func (p *Piano) activate(k *Key) {
	if p.selection.Activate(k) && p.log != nil {
		p.log.Println("key", k.Name)
	}
}

func (p *Piano) clear() {
	if p.selection.Clear() && p.log != nil {
		p.log.Println("key released")
	}
}

func (p *Piano) moveFocus(d int) {
	n := len(p.order)
	if n == 0 {
		return
	}
	i := p.focus
	p.blur()
	if i < 0 && d < 0 {
		i = 0
	}
	p.focus = ((i+d)%n + n) % n
	p.activate(p.order[p.focus])
}

func (p *Piano) blur() {
	if p.focus < 0 {
		return
	}
	p.focus = -1
	p.clear()
}

// Step advances the piano by one tick.
func (p *Piano) Step(in Input) error {
	if !p.motion.Mounted() {
		_, err := p.motion.Mount()
		if err != nil {
			return err
		}
	}
	if in.Scroll != 0 {
		p.page.ScrollBy(in.Scroll)
	}
	p.motion.Update(Tick)
	switch {
	case in.Tab:
		p.moveFocus(1)
	case in.BackTab:
		p.moveFocus(-1)
	case in.Escape:
		p.blur()
	}
	var k *Key
	if in.Inside && p.Attached() {
		k = p.KeyAt(in.X, in.Y)
	}
	if k != p.hover {
		if p.hover != nil {
			p.clear()
		}
		p.hover = k
		if k != nil {
			p.activate(k)
		}
	}
	if in.Enter {
		p.sound.Send()
		p.reply = replyDelay
	}
	if p.reply > 0 {
		p.reply -= Tick
		if p.reply <= 0 {
			p.sound.Receive()
		}
	}
	if in.Mute {
		err := p.sound.Suspend()
		if err != nil && p.log != nil {
			p.log.Println(err)
		}
	}
	return nil
}

// Close removes the scroll triggers.
func (p *Piano) Close() error {
	p.motion.Unmount()
	return nil
}
