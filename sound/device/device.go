// Package device opens audio outputs for the sound engine.
package device

import (
	"fmt"

	"github.com/pshvedko/keyscroll/sound"
)

// Open returns the factory of a backend. The none backend has no factory,
// which leaves the engine silent.
func Open(backend string, rate int) (sound.Factory, error) {
	switch backend {
	case "ebiten":
		return Ebiten(rate), nil
	case "oto":
		return Oto(rate), nil
	case "none", "":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown audio backend %q", backend)
}
