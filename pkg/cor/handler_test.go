package cor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// literal recognizes one request and counts how often it was consulted.
type literal struct {
	Base
	name  string
	want  string
	calls int
}

func (l *literal) Name() string { return l.name }

func (l *literal) Handle(request string) string {
	l.calls++
	if request == l.want {
		return l.name + " took " + request
	}
	return l.Base.Handle(request)
}

func TestBase_NoSuccessorReturnsUnhandled(t *testing.T) {
	t.Parallel()

	var b Base
	if got := b.Handle("anything"); got != Unhandled {
		t.Fatalf("expected unhandled, got %q", got)
	}
	if b.Next() != nil {
		t.Fatalf("expected no successor on zero value")
	}
}

func TestBase_SetNextReturnsArgument(t *testing.T) {
	t.Parallel()

	a := &literal{name: "a", want: "x"}
	b := &literal{name: "b", want: "y"}

	got := a.SetNext(b)

	assert.Same(t, b, got)
	assert.Same(t, b, a.Next())
}

func TestBase_SetNextChainsOnArgument(t *testing.T) {
	t.Parallel()

	a := &literal{name: "a", want: "x"}
	b := &literal{name: "b", want: "y"}
	c := &literal{name: "c", want: "z"}

	a.SetNext(b).SetNext(c)

	assert.Same(t, b, a.Next(), "a should link to b, not c")
	assert.Same(t, c, b.Next())
	assert.Nil(t, c.Next())
}

func TestBase_SetNextReplacesSuccessor(t *testing.T) {
	t.Parallel()

	a := &literal{name: "a", want: "x"}
	b := &literal{name: "b", want: "y"}
	c := &literal{name: "c", want: "z"}

	a.SetNext(b)
	a.SetNext(c)

	assert.Same(t, c, a.Next())
	assert.Equal(t, Unhandled, a.Handle("y"))
	assert.Equal(t, 0, b.calls)
}

func TestBase_SetNextNilClearsSuccessor(t *testing.T) {
	t.Parallel()

	a := &literal{name: "a", want: "x"}
	a.SetNext(&literal{name: "b", want: "y"})

	var typedNil *literal
	got := a.SetNext(typedNil)

	assert.Nil(t, a.Next())
	assert.Equal(t, Handler(typedNil), got)
	assert.Equal(t, Unhandled, a.Handle("y"))

	a.SetNext(nil)
	assert.Nil(t, a.Next())
}

func TestHandle_ShortCircuitsOnMatch(t *testing.T) {
	t.Parallel()

	a := &literal{name: "a", want: "x"}
	b := &literal{name: "b", want: "y"}
	c := &literal{name: "c", want: "y"}
	a.SetNext(b).SetNext(c)

	got := a.Handle("y")

	assert.Equal(t, "b took y", got)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
	assert.Equal(t, 0, c.calls, "handlers after the match must not be consulted")
}

func TestHandle_MissVisitsEveryHandlerOnce(t *testing.T) {
	t.Parallel()

	a := &literal{name: "a", want: "x"}
	b := &literal{name: "b", want: "y"}
	c := &literal{name: "c", want: "z"}
	a.SetNext(b).SetNext(c)

	got := a.Handle("nobody")

	assert.Equal(t, Unhandled, got)
	for _, h := range []*literal{a, b, c} {
		assert.Equal(t, 1, h.calls, "handler %s", h.name)
	}
}

func TestHandle_SubChainIgnoresPredecessors(t *testing.T) {
	t.Parallel()

	a := &literal{name: "a", want: "x"}
	b := &literal{name: "b", want: "y"}
	a.SetNext(b)

	assert.Equal(t, Unhandled, b.Handle("x"))
	assert.Equal(t, 0, a.calls)
}

func TestHandle_Deterministic(t *testing.T) {
	t.Parallel()

	a := &literal{name: "a", want: "x"}
	a.SetNext(&literal{name: "b", want: "y"})

	first := a.Handle("y")
	for i := 0; i < 10; i++ {
		require.Equal(t, first, a.Handle("y"))
	}
}
