package engine

// Event fans a value out to every registered listener, in the order they
// were added. It is not safe for concurrent use; the game loop owns it.
type Event[T any] struct {
	listeners []func(T)
}

// AddListener ignores nil callbacks.
func (e *Event[T]) AddListener(fn func(T)) {
	if fn != nil {
		e.listeners = append(e.listeners, fn)
	}
}

func (e *Event[T]) ListenerCount() int { return len(e.listeners) }

func (e *Event[T]) Invoke(v T) {
	for _, fn := range e.listeners {
		fn(v)
	}
}
