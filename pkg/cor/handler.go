package cor

// Unhandled is returned by Handle when no handler in the remaining chain
// recognizes the request. It is a normal outcome, not an error.
const Unhandled = ""

// Handler is a link of a chain of responsibility.
type Handler interface {
	// SetNext stores next as the successor and returns next, so that
	// a.SetNext(b).SetNext(c) links a->b and b->c.
	SetNext(next Handler) Handler
	// Handle returns a non-empty message if this handler or one of its
	// successors satisfied the request, Unhandled otherwise.
	Handle(request string) string
}

// Base is the delegation unit embedded by concrete handlers.
// The zero value has no successor and is ready to use.
type Base struct {
	next Handler
}

// SetNext replaces the successor. A nil or typed-nil handler clears it.
// The argument is returned unchanged.
func (b *Base) SetNext(next Handler) Handler {
	if IsNil(next) {
		b.next = nil
	} else {
		b.next = next
	}
	return next
}

// Next returns the current successor or nil.
func (b *Base) Next() Handler {
	return b.next
}

// Handle forwards the request to the successor and returns its result
// verbatim. Without a successor it returns Unhandled.
func (b *Base) Handle(request string) string {
	if b.next != nil {
		return b.next.Handle(request)
	}
	return Unhandled
}
