package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pshvedko/keyscroll/scroll"
)

type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Audio struct {
	Backend    string `yaml:"backend"` // oto, ebiten or none
	SampleRate int    `yaml:"sample_rate"`
}

type Section struct {
	ID     string  `yaml:"id"`
	Height float64 `yaml:"height"` // in viewport heights
}

type Region struct {
	Section           string  `yaml:"section"`
	Target            string  `yaml:"target"`
	Previous          string  `yaml:"previous"`
	Start             string  `yaml:"start"`
	End               string  `yaml:"end"`
	LeaveBackDuration float64 `yaml:"leave_back_duration,omitempty"`
	LeaveBackDelay    float64 `yaml:"leave_back_delay,omitempty"`
}

type Timing struct {
	Default   float64            `yaml:"default"`
	Durations map[string]float64 `yaml:"durations"`
}

type Skill struct {
	ID               string `yaml:"id"`
	Name             string `yaml:"name"`
	Label            string `yaml:"label"`
	ShortDescription string `yaml:"short_description"`
	Icon             string `yaml:"icon"`
}

type Keyboard struct {
	WhiteKeys   int     `yaml:"white_keys"`
	BlackSlots  []int   `yaml:"black_slots"`
	Width       float64 `yaml:"width"` // fraction of the window width
	MarginRight float64 `yaml:"margin_right"`
}

type Config struct {
	Window   Window                      `yaml:"window"`
	Audio    Audio                       `yaml:"audio"`
	Sections []Section                   `yaml:"sections"`
	States   map[string]scroll.Transform `yaml:"states"`
	Initial  string                      `yaml:"initial"`
	Centered string                      `yaml:"centered"`
	Regions  []Region                    `yaml:"regions"`
	Timing   Timing                      `yaml:"timing"`
	Keyboard Keyboard                    `yaml:"keyboard"`
	Skills   []Skill                     `yaml:"skills"`
}

const (
	DefaultStart = "top 50%"
	DefaultEnd   = "bottom bottom"
)

func Default() *Config {
	return &Config{
		Window: Window{Width: 1280, Height: 720},
		Audio:  Audio{Backend: "oto", SampleRate: 44100},
		Sections: []Section{
			{ID: "hero", Height: 1.25},
			{ID: "skills", Height: 1.6},
			{ID: "experience", Height: 1.2},
			{ID: "projects", Height: 1.6},
			{ID: "contact", Height: 1.1},
		},
		States: map[string]scroll.Transform{
			"hero":     {X: 0, Y: 0, Scale: 1, Rotate: 0},
			"skills":   {X: 0, Y: 52, Scale: 1.02, Rotate: 0},
			"projects": {X: 0, Y: -26, Scale: 1.05, Rotate: 0},
			"contact":  {X: 120, Y: -80, Scale: .95, Rotate: 0},
		},
		Initial:  "hero",
		Centered: "skills",
		Regions: []Region{
			{Section: "skills", Target: "skills", Previous: "hero", Start: "top 100%", End: DefaultEnd, LeaveBackDuration: 4.2},
			{Section: "projects", Target: "projects", Previous: "skills", Start: "top 70%", End: DefaultEnd},
			{Section: "contact", Target: "contact", Previous: "projects", Start: "top 30%", End: DefaultEnd},
		},
		Timing: Timing{Default: .9, Durations: map[string]float64{"skills": 4.2}},
		Keyboard: Keyboard{
			WhiteKeys:   14,
			BlackSlots:  []int{1, 2, 4, 5, 6, 8, 9, 11, 12, 13},
			Width:       .55,
			MarginRight: 32,
		},
		Skills: append([]Skill(nil), skills...),
	}
}

// Load overlays the YAML file at path on the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	err = yaml.Unmarshal(data, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	err = c.Validate()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Save(c *Config, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Audio.Backend {
	case "ebiten", "oto", "none":
	default:
		return fmt.Errorf("unknown audio backend %q", c.Audio.Backend)
	}
	if c.Audio.Backend != "none" && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("sample rate %d", c.Audio.SampleRate)
	}
	if len(c.Sections) == 0 {
		return fmt.Errorf("no sections")
	}
	ids := map[string]bool{}
	for _, s := range c.Sections {
		if s.Height <= 0 {
			return fmt.Errorf("section %q height %v", s.ID, s.Height)
		}
		ids[s.ID] = true
	}
	if _, ok := c.States[c.Initial]; !ok {
		return fmt.Errorf("unknown initial state %q", c.Initial)
	}
	for _, r := range c.Regions {
		if !ids[r.Section] {
			return fmt.Errorf("region %q: unknown section", r.Section)
		}
		for _, n := range []string{r.Target, r.Previous} {
			if _, ok := c.States[n]; !ok {
				return fmt.Errorf("region %q: unknown state %q", r.Section, n)
			}
		}
		_, _, err := r.Anchors()
		if err != nil {
			return fmt.Errorf("region %q: %w", r.Section, err)
		}
	}
	if c.Keyboard.WhiteKeys <= 0 || len(c.Keyboard.BlackSlots) == 0 {
		return fmt.Errorf("keyboard needs white keys and black slots")
	}
	for _, s := range c.Keyboard.BlackSlots {
		if s <= 0 || s >= c.Keyboard.WhiteKeys {
			return fmt.Errorf("black slot %d outside %d white keys", s, c.Keyboard.WhiteKeys)
		}
	}
	return nil
}

// Anchors parses the region bounds, filling in the defaults.
func (r Region) Anchors() (start, end scroll.Anchor, err error) {
	s, e := r.Start, r.End
	if s == "" {
		s = DefaultStart
	}
	if e == "" {
		e = DefaultEnd
	}
	start, err = scroll.ParseAnchor(s)
	if err != nil {
		return
	}
	end, err = scroll.ParseAnchor(e)
	return
}

// Scroll builds the controller configuration.
func (c *Config) Scroll() (scroll.Config, error) {
	sc := scroll.Config{
		States:   c.States,
		Initial:  c.Initial,
		Centered: c.Centered,
		Timing:   scroll.Timing{Default: c.Timing.Default, Durations: c.Timing.Durations},
		Ease:     scroll.EaseOut,
	}
	for _, r := range c.Regions {
		start, end, err := r.Anchors()
		if err != nil {
			return sc, err
		}
		sc.Regions = append(sc.Regions, scroll.Region{
			Section:           r.Section,
			Target:            r.Target,
			Previous:          r.Previous,
			Start:             start,
			End:               end,
			LeaveBackDuration: r.LeaveBackDuration,
			LeaveBackDelay:    r.LeaveBackDelay,
		})
	}
	return sc, nil
}

// Page lays out the sections for a viewport.
func (c *Config) Page(width, height float64) (*scroll.Page, error) {
	var ids []string
	var heights []float64
	for _, s := range c.Sections {
		ids = append(ids, s.ID)
		heights = append(heights, s.Height*height)
	}
	return scroll.NewPage(width, height, ids, heights)
}
