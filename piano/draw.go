package piano

import (
	"image"
	"strings"

	"github.com/fogleman/gg"
)

// Draw renders the page and the keyboard. It returns nil while detached.
func (p *Piano) Draw() *image.RGBA {
	if !p.Attached() {
		return nil
	}
	p.SetRGB(1, 1, 1)
	p.Clear()
	p.drawPage()
	p.drawKeyboard()
	p.drawCaption()
	p.drawProgress()
	return p.rgba
}

func (p *Piano) drawPage() {
	w, _ := p.page.Viewport()
	for i, s := range p.page.Sections() {
		y := s.Top - p.page.Offset()
		if y > float64(p.height) || y+s.Height < 0 {
			continue
		}
		g := .97
		if i%2 == 1 {
			g = .93
		}
		p.SetRGB(g, g, g)
		p.DrawRectangle(0, y, w, s.Height)
		p.Fill()
		p.SetRGB(.3, .3, .3)
		p.DrawString(strings.ToUpper(s.ID), 24, y+32)
	}
}

func (p *Piano) drawKeyboard() {
	w, h := p.size()
	cx, cy := p.center()
	t := p.target.Value()
	p.Push()
	defer p.Pop()
	p.Translate(cx, cy)
	p.Rotate(gg.Radians(t.Rotate))
	p.Scale(t.Scale, t.Scale)
	p.Translate(-w/2, -h/2)
	p.SetLineWidth(1)
	active := p.selection.Active()
	for _, k := range p.keys.White {
		x, y, kw, kh := p.keys.Rect(k, w, h)
		if k.Is(active) {
			p.SetRGB(.85, .9, 1)
		} else {
			p.SetRGB(1, 1, 1)
		}
		p.DrawRectangle(x, y, kw, kh)
		p.FillPreserve()
		p.SetRGB(0, 0, 0)
		p.Stroke()
		p.DrawStringAnchored(abbrev(k.Icon), x+kw/2, y+kh-12, .5, .5)
	}
	for _, k := range p.keys.Black {
		x, y, kw, kh := p.keys.Rect(k, w, h)
		if k.Is(active) {
			p.SetRGB(.25, .3, .45)
		} else {
			p.SetRGB(0, 0, 0)
		}
		p.DrawRectangle(x, y, kw, kh)
		p.Fill()
		p.SetRGB(1, 1, 1)
		p.DrawStringAnchored(abbrev(k.Icon), x+kw/2, y+kh-10, .5, .5)
	}
}

func abbrev(s string) string {
	if len(s) > 2 {
		s = s[:2]
	}
	return strings.ToUpper(s)
}

func (p *Piano) drawCaption() {
	label, description, ok := p.selection.Caption()
	if !ok {
		return
	}
	w, _ := p.size()
	x, y := p.Screen(w/2, 0)
	s := label + " - " + description
	tw, th := p.MeasureString(s)
	p.SetRGBA(0, 0, 0, .8)
	p.DrawRoundedRectangle(x-tw/2-8, y-th-24, tw+16, th+12, 4)
	p.Fill()
	p.SetRGB(1, 1, 1)
	p.DrawStringAnchored(s, x, y-18-th/2, .5, .5)
}

func (p *Piano) drawProgress() {
	p.SetRGBA(0, 0, 0, .3)
	p.SetLineWidth(1)
	p.DrawLine(p.bar.x, p.bar.y, p.bar.x+p.bar.w, p.bar.y)
	p.Stroke()
	end := p.page.Max()
	if end == 0 {
		return
	}
	// region marks grow while their window is scrubbed
	for _, t := range p.motion.Triggers() {
		x := p.bar.x + t.Start/end*p.bar.w
		d := 4 + 6*t.Progress(p.page.Offset())
		p.DrawLine(x, p.bar.y-d, x, p.bar.y+d)
		p.Stroke()
	}
	p.SetRGBA(0, 0, 0, 1)
	p.DrawPoint(p.bar.x+p.page.Offset()/end*p.bar.w, p.bar.y, 3)
	p.Fill()
}
