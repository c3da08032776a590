package overflow

// listeners is an ordered set of synchronous subscribers.
type listeners[T any] struct {
	next int
	subs []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// add registers fn and returns its unsubscribe func. Calling the returned
// func more than once is a no-op.
func (l *listeners[T]) add(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	id := l.next
	l.next++
	l.subs = append(l.subs, subscriber[T]{id: id, fn: fn})
	done := false
	return func() {
		if done {
			return
		}
		done = true
		for i, s := range l.subs {
			if s.id == id {
				l.subs = append(l.subs[:i:i], l.subs[i+1:]...)
				return
			}
		}
	}
}

// emit calls every subscriber registered when emit started, in order.
func (l *listeners[T]) emit(v T) {
	if len(l.subs) == 0 {
		return
	}
	snapshot := append([]subscriber[T](nil), l.subs...)
	for _, s := range snapshot {
		s.fn(v)
	}
}

func (l *listeners[T]) len() int { return len(l.subs) }
