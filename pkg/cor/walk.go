package cor

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrCycle is returned by Walk when a handler is reached a second time.
var ErrCycle = errors.New("cor: cyclic chain")

// Linked is implemented by handlers that expose their successor.
// Base implements it, so every handler embedding Base does too.
type Linked interface {
	Next() Handler
}

// Named lets a handler choose the name reported by Names.
type Named interface {
	Name() string
}

// Walk calls visit for head and each successor in order until visit returns
// false, the chain ends or a handler does not implement Linked. The length
// of the chain is not limited. When a handler is reached a second time Walk
// stops before visiting it again and returns ErrCycle.
func Walk(head Handler, visit func(h Handler) bool) error {
	seen := make(map[any]struct{})
	for h := head; !IsNil(h); {
		if reflect.ValueOf(h).Kind() == reflect.Pointer {
			if _, ok := seen[h]; ok {
				return ErrCycle
			}
			seen[h] = struct{}{}
		}
		if !visit(h) {
			return nil
		}
		l, ok := h.(Linked)
		if !ok {
			return nil
		}
		h = l.Next()
	}
	return nil
}

// Names returns the names of head and its successors in traversal order.
// On a cyclic chain each handler is listed once.
func Names(head Handler) []string {
	names, _ := collectNames(head)
	return names
}

// Describe joins Names with sep, e.g. "Monkey > Squirrel > Dog".
// A cyclic chain ends with sep followed by "...".
func Describe(head Handler, sep string) string {
	names, err := collectNames(head)
	if errors.Is(err, ErrCycle) {
		names = append(names, "...")
	}
	return strings.Join(names, sep)
}

func collectNames(head Handler) ([]string, error) {
	names := make([]string, 0)
	err := Walk(head, func(h Handler) bool {
		names = append(names, NameOf(h))
		return true
	})
	return names, err
}

// NameOf returns Name() for Named handlers, String() for fmt.Stringer
// handlers and the bare type name otherwise.
func NameOf(h Handler) string {
	switch v := h.(type) {
	case Named:
		return v.Name()
	case fmt.Stringer:
		return v.String()
	}
	t := reflect.TypeOf(h)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}
