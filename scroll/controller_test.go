package scroll

import (
	"math"
	"testing"
)

var testStates = map[string]Transform{
	"hero":     {X: 0, Y: 0, Scale: 1, Rotate: 0},
	"skills":   {X: 0, Y: 52, Scale: 1.02, Rotate: 0},
	"projects": {X: 0, Y: -26, Scale: 1.05, Rotate: 0},
	"contact":  {X: 120, Y: -80, Scale: .95, Rotate: 0},
}

type box struct {
	Box
	attached bool
}

func (b *box) Measure() (Box, bool) {
	return b.Box, b.attached
}

func testPage(t *testing.T) *Page {
	t.Helper()
	p, err := NewPage(1280, 720,
		[]string{"hero", "skills", "experience", "projects", "contact"},
		[]float64{900, 1200, 900, 1200, 800})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func testConfig() Config {
	end := Anchor{1, 1}
	return Config{
		States:   testStates,
		Initial:  "hero",
		Centered: "skills",
		Regions: []Region{
			{Section: "skills", Target: "skills", Previous: "hero", Start: Anchor{0, 1}, End: end, LeaveBackDuration: 4.2},
			{Section: "projects", Target: "projects", Previous: "skills", Start: Anchor{0, .7}, End: end},
			{Section: "contact", Target: "contact", Previous: "projects", Start: Anchor{0, .3}, End: end},
		},
		Timing: Timing{Default: .9, Durations: map[string]float64{"skills": 4.2}},
	}
}

func testController(t *testing.T) (*Controller, *Page, *Target, *box) {
	t.Helper()
	p := testPage(t)
	target := NewTarget(Identity)
	m := &box{Box: Box{Viewport: 1280, Width: 600, MarginRight: 40}, attached: true}
	c := NewController(p, target, m, testConfig())
	ok, err := c.Mount()
	if err != nil || !ok {
		t.Fatalf("Mount failed: %v %v", ok, err)
	}
	return c, p, target, m
}

func settle(c *Controller) {
	for i := 0; i < 600; i++ {
		c.Update(1. / 60)
	}
}

func near(a, b Transform) bool {
	const e = 1e-9
	return math.Abs(a.X-b.X) < e && math.Abs(a.Y-b.Y) < e &&
		math.Abs(a.Scale-b.Scale) < e && math.Abs(a.Rotate-b.Rotate) < e
}

func TestCenteredOffset(t *testing.T) {
	tests := []struct {
		box      Box
		expected float64
	}{
		{Box{Viewport: 1280, Width: 600, MarginRight: 40}, -300},
		{Box{Viewport: 1920, Width: 600, MarginRight: 40}, -620},
		{Box{Viewport: 800, Width: 800, MarginRight: 0}, 0},
	}

	for _, tt := range tests {
		b := tt.box
		x := CenteredOffset(b)
		if x != ((b.Viewport-b.Width)/2)-(b.Viewport-b.Width-b.MarginRight) {
			t.Errorf("%+v: offset %f does not match formula", b, x)
		}
		if x != tt.expected {
			t.Errorf("%+v: expected %f, got %f", b, tt.expected, x)
		}
		left := b.Viewport - b.Width - b.MarginRight + x
		if math.Abs(left+b.Width/2-b.Viewport/2) > 1e-9 {
			t.Errorf("%+v: box not centered, left %f", b, left)
		}
	}
}

func TestControllerDetached(t *testing.T) {
	p := testPage(t)
	target := NewTarget(Transform{X: 7, Scale: 1})
	m := &box{Box: Box{Viewport: 1280, Width: 600}}
	c := NewController(p, target, m, testConfig())
	ok, err := c.Mount()
	if ok || err != nil {
		t.Fatalf("expected silent no-op, got %v %v", ok, err)
	}
	if target.Busy() || c.Mounted() {
		t.Fatal("expected no tween and no triggers while detached")
	}
	p.ScrollTo(2000)
	settle(c)
	if target.Value().X != 7 {
		t.Errorf("expected untouched target, got %+v", target.Value())
	}
	m.attached = true
	ok, err = c.Mount()
	if !ok || err != nil {
		t.Fatalf("expected mount once attached, got %v %v", ok, err)
	}
	if c.Current() != "skills" {
		t.Errorf("expected refresh to skills at offset 2000, got %s", c.Current())
	}
}

func TestControllerMountTweensToInitial(t *testing.T) {
	c, _, target, _ := testController(t)
	if c.Current() != "hero" || !target.Busy() {
		t.Fatalf("expected tween to hero, got %s", c.Current())
	}
	if d, _ := target.Destination(); d != testStates["hero"] {
		t.Errorf("expected hero destination, got %+v", d)
	}
	if ok, _ := c.Mount(); !ok || len(c.Triggers()) != 3 {
		t.Error("expected second Mount to keep the triggers")
	}
}

func TestControllerForwardOrder(t *testing.T) {
	c, p, _, _ := testController(t)
	visited := []string{c.Current()}
	for y := 0.; y <= p.Max(); y += 10 {
		p.ScrollTo(y)
		if s := c.Current(); s != visited[len(visited)-1] {
			visited = append(visited, s)
		}
	}
	expected := []string{"hero", "skills", "projects", "contact"}
	if len(visited) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, visited)
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, visited)
		}
	}
}

func TestControllerLeaveBackRestoresPrevious(t *testing.T) {
	skills := testStates["skills"]
	skills.X = -300

	tests := []struct {
		region   int
		expected Transform
	}{
		{0, testStates["hero"]},
		{1, skills},
		{2, testStates["projects"]},
	}

	for _, tt := range tests {
		c, p, target, _ := testController(t)
		start := c.Triggers()[tt.region].Start
		p.ScrollTo(start + 1)
		settle(c)
		p.ScrollTo(start - 1)
		settle(c)
		if !near(target.Value(), tt.expected) {
			t.Errorf("region %d: expected %+v, got %+v", tt.region, tt.expected, target.Value())
		}
	}
}

func TestControllerSkillsTiming(t *testing.T) {
	c, p, target, _ := testController(t)
	settle(c)
	skills := c.Triggers()[0].Start
	p.ScrollTo(skills + 1)
	for i := 0; i < 60; i++ {
		c.Update(1. / 60)
	}
	if !target.Busy() {
		t.Fatal("expected hero to skills to take longer than 1s")
	}
	c.Update(3.3)
	if target.Busy() {
		t.Fatal("expected hero to skills to finish after 4.2s")
	}
	if target.Value().X != -300 {
		t.Errorf("expected centered x -300, got %f", target.Value().X)
	}

	p.ScrollTo(c.Triggers()[1].Start + 1)
	c.Update(.9)
	if target.Busy() {
		t.Error("expected skills to projects to finish after .9s")
	}

	p.ScrollTo(skills - 1)
	c.Update(1)
	if !target.Busy() || c.Current() != "hero" {
		t.Error("expected slow leave back to hero")
	}
	c.Update(3.3)
	if target.Busy() {
		t.Error("expected leave back to hero to finish after 4.2s")
	}
}

func TestControllerCenteredFollowsViewport(t *testing.T) {
	c, p, target, m := testController(t)
	m.Viewport = 1920
	p.ScrollTo(c.Triggers()[0].Start + 1)
	settle(c)
	if target.Value().X != -620 {
		t.Errorf("expected -620, got %f", target.Value().X)
	}
}

func TestControllerUnmount(t *testing.T) {
	c, p, target, _ := testController(t)
	p.ScrollTo(c.Triggers()[0].Start + 1)
	c.Update(.5)
	c.Unmount()
	v := target.Value()
	if target.Busy() {
		t.Fatal("expected tween cancelled on unmount")
	}
	p.ScrollTo(p.Max())
	p.ScrollTo(0)
	settle(c)
	if target.Value() != v || c.Current() != "skills" {
		t.Errorf("expected no change after unmount, got %+v %s", target.Value(), c.Current())
	}
}

func TestControllerJumps(t *testing.T) {
	c, p, target, _ := testController(t)
	p.ScrollTo(p.Max())
	if c.Current() != "contact" {
		t.Fatalf("expected contact after jump down, got %s", c.Current())
	}
	for _, tr := range c.Triggers() {
		if !tr.Entered() {
			t.Fatal("expected every trigger entered")
		}
	}
	p.ScrollTo(0)
	if c.Current() != "hero" {
		t.Fatalf("expected hero after jump up, got %s", c.Current())
	}
	settle(c)
	if !near(target.Value(), testStates["hero"]) {
		t.Errorf("expected hero, got %+v", target.Value())
	}
}

func TestControllerMountScrolled(t *testing.T) {
	p := testPage(t)
	p.ScrollTo(p.Max())
	m := &box{Box: Box{Viewport: 1280, Width: 600}, attached: true}
	c := NewController(p, NewTarget(Identity), m, testConfig())
	if _, err := c.Mount(); err != nil {
		t.Fatal(err)
	}
	if c.Current() != "contact" {
		t.Errorf("expected contact, got %s", c.Current())
	}
}

func TestControllerBadRegion(t *testing.T) {
	p := testPage(t)
	m := &box{attached: true}
	cfg := testConfig()
	cfg.Regions = append(cfg.Regions, Region{Section: "blog", Target: "hero", Previous: "hero"})
	if _, err := NewController(p, NewTarget(Identity), m, cfg).Mount(); err == nil {
		t.Error("expected error for unknown section")
	}
	cfg = testConfig()
	cfg.Regions[1].Target = "footer"
	if _, err := NewController(p, NewTarget(Identity), m, cfg).Mount(); err == nil {
		t.Error("expected error for unknown state")
	}
}
