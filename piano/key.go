package piano

import (
	"github.com/pshvedko/keyscroll/config"
)

type Color byte

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

type Key struct {
	config.Skill
	Color
	Index int
	// Left is the center of a black key in percent of the white key span.
	Left float64
}

func (k *Key) Is(o *Key) bool {
	return k != nil && o != nil && k.Name == o.Name
}

// Keyboard partitions skills into white keys and black keys placed on a
// repeating slot pattern.
type Keyboard struct {
	White []*Key
	Black []*Key
}

func NewKeyboard(skills []config.Skill, whites int, slots []int) *Keyboard {
	k := &Keyboard{}
	for i, s := range skills {
		if i < whites {
			k.White = append(k.White, &Key{Skill: s, Color: White, Index: i})
			continue
		}
		j := i - whites
		slot := slots[j%len(slots)]
		k.Black = append(k.Black, &Key{
			Skill: s,
			Color: Black,
			Index: j,
			Left:  float64(slot) / float64(whites) * 100,
		})
	}
	return k
}

// Keys returns white keys followed by black keys.
func (k *Keyboard) Keys() []*Key {
	return append(append([]*Key(nil), k.White...), k.Black...)
}

const (
	blackWidth  = .6
	blackHeight = .62
)

// Rect is the key rectangle on a keyboard of w by h.
func (k *Keyboard) Rect(key *Key, w, h float64) (x, y, kw, kh float64) {
	n := float64(len(k.White))
	if n == 0 {
		n = 1
	}
	white := w / n
	if key.Color == White {
		return float64(key.Index) * white, 0, white, h
	}
	kw = white * blackWidth
	return key.Left/100*w - kw/2, 0, kw, h * blackHeight
}

// At returns the key under x, y on a keyboard of w by h. Black keys lie on
// top of white keys.
func (k *Keyboard) At(x, y, w, h float64) *Key {
	for _, keys := range [][]*Key{k.Black, k.White} {
		for _, key := range keys {
			kx, ky, kw, kh := k.Rect(key, w, h)
			if x >= kx && x < kx+kw && y >= ky && y < ky+kh {
				return key
			}
		}
	}
	return nil
}
