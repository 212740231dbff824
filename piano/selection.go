package piano

// Clicker plays key clicks.
type Clicker interface {
	Press()
	Release()
}

// Selection is the key activated by hover or focus.
type Selection struct {
	sound  Clicker
	active *Key
}

func NewSelection(c Clicker) *Selection {
	return &Selection{sound: c}
}

// Activate makes k active with a press click. Activating the active key
// does nothing.
func (s *Selection) Activate(k *Key) bool {
	if k == nil || s.active.Is(k) {
		return false
	}
	s.sound.Press()
	s.active = k
	return true
}

// Clear deactivates the active key with a release click.
func (s *Selection) Clear() bool {
	if s.active == nil {
		return false
	}
	s.sound.Release()
	s.active = nil
	return true
}

func (s *Selection) Active() *Key {
	return s.active
}

// Caption is what the display shows for the active key.
func (s *Selection) Caption() (label, description string, ok bool) {
	if s.active == nil {
		return
	}
	return s.active.Label, s.active.ShortDescription, true
}
