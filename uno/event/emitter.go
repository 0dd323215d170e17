package event

// Emitter delivers one kind of payload to its handlers in the order they
// were added. It is not safe for concurrent use.
type Emitter[P any] struct {
	handlers []func(P)
}

func (e *Emitter[P]) On(handler func(P)) {
	e.handlers = append(e.handlers, handler)
}

func (e *Emitter[P]) Emit(payload P) {
	for _, handler := range e.handlers {
		handler(payload)
	}
}

func (e *Emitter[P]) Len() int {
	return len(e.handlers)
}
