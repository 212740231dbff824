package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	sc, err := c.Scroll()
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Regions) != 3 {
		t.Fatalf("expected 3 regions, got %d", len(sc.Regions))
	}
	skills := sc.Regions[0]
	if skills.Previous != "hero" || skills.LeaveBackDuration != 4.2 || skills.LeaveBackDelay != 0 {
		t.Errorf("unexpected skills region %+v", skills)
	}
	if skills.Start.Element != 0 || skills.Start.Viewport != 1 || skills.End.Element != 1 {
		t.Errorf("unexpected skills anchors %+v %+v", skills.Start, skills.End)
	}
	if sc.Regions[2].Start.Viewport != .3 {
		t.Errorf("expected contact to start at 30%%, got %f", sc.Regions[2].Start.Viewport)
	}
	if sc.Timing.Durations["skills"] != 4.2 || sc.Timing.Default != .9 {
		t.Errorf("unexpected timing %+v", sc.Timing)
	}
}

func TestDefaultAudioBackend(t *testing.T) {
	// the oto factory reports a missing output device, ebiten fails later
	// inside its game loop
	if b := Default().Audio.Backend; b != "oto" {
		t.Errorf("expected oto backend by default, got %q", b)
	}
}

func TestPage(t *testing.T) {
	p, err := Default().Page(1280, 720)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Sections()) != 5 {
		t.Fatalf("expected 5 sections, got %d", len(p.Sections()))
	}
	s, ok := p.Section("skills")
	if !ok || s.Top != 900 {
		t.Errorf("expected skills at 900, got %+v", s)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.yaml")
	data := `
audio:
  backend: none
states:
  contact: {x: 40, y: -10, scale: 0.9, rotate: 5}
regions:
  - section: skills
    target: skills
    previous: hero
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Audio.Backend != "none" || c.Audio.SampleRate != 44100 {
		t.Errorf("unexpected audio %+v", c.Audio)
	}
	if c.States["contact"].Rotate != 5 || c.States["hero"].Scale != 1 {
		t.Errorf("expected states merged, got %+v", c.States)
	}
	if len(c.Regions) != 1 {
		t.Fatalf("expected regions replaced, got %d", len(c.Regions))
	}
	start, end, err := c.Regions[0].Anchors()
	if err != nil || start.Viewport != .5 || end.Element != 1 {
		t.Errorf("expected default anchors, got %+v %+v %v", start, end, err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.yaml")
	c := Default()
	c.Keyboard.WhiteKeys = 7
	c.Keyboard.BlackSlots = []int{1, 2, 4, 5, 6}
	if err := Save(c, path); err != nil {
		t.Fatal(err)
	}
	l, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if l.Keyboard.WhiteKeys != 7 || len(l.Skills) != len(c.Skills) {
		t.Errorf("unexpected reloaded keyboard %+v", l.Keyboard)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		change func(*Config)
		want   string
	}{
		{"backend", func(c *Config) { c.Audio.Backend = "alsa" }, "backend"},
		{"section", func(c *Config) { c.Regions[0].Section = "blog" }, "unknown section"},
		{"state", func(c *Config) { c.Regions[1].Previous = "footer" }, "unknown state"},
		{"anchor", func(c *Config) { c.Regions[2].Start = "top" }, "anchor"},
		{"initial", func(c *Config) { c.Initial = "intro" }, "initial"},
		{"slot", func(c *Config) { c.Keyboard.BlackSlots = []int{14} }, "slot"},
		{"height", func(c *Config) { c.Sections[0].Height = 0 }, "height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.change(c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}
