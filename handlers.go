package radial

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

// handlerRegistry holds change callbacks in registration order.
type handlerRegistry[T any] struct {
	entries []handler[T]
	nextID  uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id     uint32
	remove func(id uint32)
}

// Remove unregisters this callback so it no longer fires. Calling Remove more
// than once is harmless.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove(h.id)
}

func (r *handlerRegistry[T]) add(fn func(T)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.entries = append(r.entries, handler[T]{id: id, fn: fn})
	return CallbackHandle{id: id, remove: r.removeID}
}

// removeID deletes the entry, keeping registration order.
func (r *handlerRegistry[T]) removeID(id uint32) {
	for i := range r.entries {
		if r.entries[i].id == id {
			copy(r.entries[i:], r.entries[i+1:])
			r.entries[len(r.entries)-1] = handler[T]{}
			r.entries = r.entries[:len(r.entries)-1]
			return
		}
	}
}

func (r *handlerRegistry[T]) fire(v T) {
	for _, h := range r.entries {
		h.fn(v)
	}
}
