package animals

import "github.com/ib-77/cor3/pkg/cor"

// Eater is an animal configured at runtime with its name and the one food
// it accepts.
type Eater struct {
	cor.Base
	name string
	food string
}

// NewEater panics when name or food is empty.
func NewEater(name, food string) *Eater {
	if name == "" {
		panic("animals: empty name passed to NewEater")
	}
	if food == "" {
		panic("animals: empty food passed to NewEater")
	}
	return &Eater{name: name, food: food}
}

func (e *Eater) Name() string {
	return e.name
}

// Food returns the request this eater accepts.
func (e *Eater) Food() string {
	return e.food
}

func (e *Eater) Handle(request string) string {
	if request == e.food {
		return eat(e.name, request)
	}
	return e.Base.Handle(request)
}
