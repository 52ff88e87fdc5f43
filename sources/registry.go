package sources

// Registry collects zero or more sources into a single Source. The TryPoll
// functions consult each registered source in registration order and return
// the first hit. The read functions return the first non-neutral answer, so
// that an input identified through the registry reads correctly regardless
// of which source it came from.
//
// The zero value is an empty registry, ready for use. An empty registry
// never polls a hit and reads every input as neutral
type Registry struct {
	sources []Source
}

// NewRegistry is a convenience constructor for a Registry with an initial
// list of sources
func NewRegistry(sources ...Source) *Registry {
	r := &Registry{}
	for _, s := range sources {
		r.Register(s)
	}
	return r
}

// Register adds a source to the end of the polling order. A nil source is
// ignored
func (r *Registry) Register(s Source) {
	if s == nil {
		return
	}
	r.sources = append(r.sources, s)
}

// TryPollAxis implements the Source interface
func (r *Registry) TryPollAxis(joystick int) (Axis, bool) {
	for _, s := range r.sources {
		if a, ok := s.TryPollAxis(joystick); ok {
			return a, true
		}
	}
	return Axis{}, false
}

// TryPollButton implements the Source interface
func (r *Registry) TryPollButton(joystick int) (Button, bool) {
	for _, s := range r.sources {
		if b, ok := s.TryPollButton(joystick); ok {
			return b, true
		}
	}
	return Button{}, false
}

// TryPollKey implements the Source interface
func (r *Registry) TryPollKey() (Key, bool) {
	for _, s := range r.sources {
		if k, ok := s.TryPollKey(); ok {
			return k, true
		}
	}
	return Key(0), false
}

// AxisValue implements the Source interface
func (r *Registry) AxisValue(axis Axis) float64 {
	for _, s := range r.sources {
		if v := s.AxisValue(axis); v != 0 {
			return v
		}
	}
	return 0
}

// ButtonHeld implements the Source interface
func (r *Registry) ButtonHeld(button Button) bool {
	for _, s := range r.sources {
		if s.ButtonHeld(button) {
			return true
		}
	}
	return false
}

// KeyHeld implements the Source interface
func (r *Registry) KeyHeld(key Key) bool {
	for _, s := range r.sources {
		if s.KeyHeld(key) {
			return true
		}
	}
	return false
}

// KeyJustPressed implements the Source interface
func (r *Registry) KeyJustPressed(key Key) bool {
	for _, s := range r.sources {
		if s.KeyJustPressed(key) {
			return true
		}
	}
	return false
}
