package flow

// Screens builds each screen on first use and keeps it for later visits.
type Screens[T any] struct {
	factories map[State]func() T
	built     map[State]T
}

// NewScreens returns an empty registry.
func NewScreens[T any]() *Screens[T] {
	return &Screens[T]{
		factories: make(map[State]func() T),
		built:     make(map[State]T),
	}
}

// Register sets the factory for a state. It replaces any cached instance.
func (r *Screens[T]) Register(s State, factory func() T) {
	r.factories[s] = factory
	delete(r.built, s)
}

// Get returns the screen for s, constructing it if needed.
func (r *Screens[T]) Get(s State) (T, bool) {
	if v, ok := r.built[s]; ok {
		return v, true
	}
	f, ok := r.factories[s]
	if !ok {
		var zero T
		return zero, false
	}
	v := f()
	r.built[s] = v
	return v, true
}

// Built reports whether the screen for s has been constructed.
func (r *Screens[T]) Built(s State) bool {
	_, ok := r.built[s]
	return ok
}
