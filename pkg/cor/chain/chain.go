package chain

import (
	"github.com/ib-77/cor3/pkg/cor"
)

// Link connects handlers in the given order and returns the first one.
// It returns nil when no handlers are passed and panics on a nil handler.
func Link(handlers ...cor.Handler) cor.Handler {
	for _, h := range handlers {
		if cor.IsNil(h) {
			panic("chain: nil handler passed to Link")
		}
	}
	if len(handlers) == 0 {
		return nil
	}
	for i := 0; i < len(handlers)-1; i++ {
		handlers[i].SetNext(handlers[i+1])
	}
	return handlers[0]
}

// Chain tracks the head and tail of a chain under construction.
type Chain struct {
	head cor.Handler
	tail cor.Handler
}

// Start creates a chain from head. The tail is found by following the
// successors head already has, however many there are. Start panics when
// head is nil or the chain from head is cyclic.
func Start(head cor.Handler) *Chain {
	if cor.IsNil(head) {
		panic("chain: nil handler passed to Start")
	}
	tail := head
	err := cor.Walk(head, func(h cor.Handler) bool {
		tail = h
		return true
	})
	if err != nil {
		panic("chain: cyclic chain passed to Start")
	}
	return &Chain{head: head, tail: tail}
}

// Then links next after the current tail and makes it the new tail.
func (c *Chain) Then(next cor.Handler) *Chain {
	if cor.IsNil(next) {
		panic("chain: nil handler passed to Then")
	}
	c.tail = c.tail.SetNext(next)
	return c
}

// Head returns the first link.
func (c *Chain) Head() cor.Handler {
	return c.head
}

// Tail returns the last link.
func (c *Chain) Tail() cor.Handler {
	return c.tail
}

// Handle runs request from the head of the chain.
func (c *Chain) Handle(request string) string {
	return c.head.Handle(request)
}

// String describes the chain, e.g. "Monkey > Squirrel > Dog".
func (c *Chain) String() string {
	return cor.Describe(c.head, " > ")
}
