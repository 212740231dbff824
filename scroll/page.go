package scroll

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Section struct {
	ID     string
	Top    float64
	Height float64
}

func (s Section) Bottom() float64 {
	return s.Top + s.Height
}

type observer struct {
	id int
	fn func(prev, cur float64)
}

// Page is a vertical stack of sections seen through a viewport. Observers
// are notified in registration order when scrolling down and in reverse
// order when scrolling up.
type Page struct {
	sections  []Section
	width     float64
	height    float64
	offset    float64
	next      int
	observers []observer
}

// NewPage stacks sections of the given heights from the top of the page.
func NewPage(width, height float64, ids []string, heights []float64) (*Page, error) {
	if len(ids) != len(heights) {
		return nil, fmt.Errorf("%d sections with %d heights", len(ids), len(heights))
	}
	p := &Page{width: width, height: height}
	var top float64
	for i, id := range ids {
		if heights[i] <= 0 {
			return nil, fmt.Errorf("section %q height %v", id, heights[i])
		}
		p.sections = append(p.sections, Section{ID: id, Top: top, Height: heights[i]})
		top += heights[i]
	}
	return p, nil
}

func (p *Page) Sections() []Section {
	return p.sections
}

func (p *Page) Section(id string) (Section, bool) {
	for _, s := range p.sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

func (p *Page) Height() float64 {
	if len(p.sections) == 0 {
		return 0
	}
	return p.sections[len(p.sections)-1].Bottom()
}

func (p *Page) Viewport() (float64, float64) {
	return p.width, p.height
}

func (p *Page) Max() float64 {
	return math.Max(0, p.Height()-p.height)
}

func (p *Page) Offset() float64 {
	return p.offset
}

func (p *Page) ScrollBy(dy float64) {
	p.ScrollTo(p.offset + dy)
}

func (p *Page) ScrollTo(y float64) {
	y = math.Max(0, math.Min(y, p.Max()))
	if y == p.offset {
		return
	}
	prev := p.offset
	p.offset = y
	o := append([]observer(nil), p.observers...)
	if y < prev {
		for i := len(o) - 1; i >= 0; i-- {
			o[i].fn(prev, y)
		}
		return
	}
	for _, o := range o {
		o.fn(prev, y)
	}
}

// Observe registers fn for scroll changes. The returned func removes it.
func (p *Page) Observe(fn func(prev, cur float64)) func() {
	id := p.next
	p.next++
	p.observers = append(p.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range p.observers {
			if o.id == id {
				p.observers = append(p.observers[:i], p.observers[i+1:]...)
				return
			}
		}
	}
}

// Anchor pins a point of a section to a point of the viewport, both as
// fractions from the top.
type Anchor struct {
	Element  float64
	Viewport float64
}

var keywords = map[string]float64{
	"top":    0,
	"center": .5,
	"bottom": 1,
}

// ParseAnchor reads anchors like "top 50%" or "bottom bottom".
func ParseAnchor(s string) (Anchor, error) {
	f := strings.Fields(s)
	if len(f) != 2 {
		return Anchor{}, fmt.Errorf("anchor %q: want two positions", s)
	}
	var a [2]float64
	for i, v := range f {
		if k, ok := keywords[v]; ok {
			a[i] = k
			continue
		}
		if !strings.HasSuffix(v, "%") {
			return Anchor{}, fmt.Errorf("anchor %q: bad position %q", s, v)
		}
		n, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil {
			return Anchor{}, fmt.Errorf("anchor %q: %w", s, err)
		}
		a[i] = n / 100
	}
	return Anchor{Element: a[0], Viewport: a[1]}, nil
}

// Offset returns the scroll offset at which the anchor points meet.
func (a Anchor) Offset(s Section, viewport float64) float64 {
	return s.Top + a.Element*s.Height - a.Viewport*viewport
}
