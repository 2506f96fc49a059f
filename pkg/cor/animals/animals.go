package animals

import (
	"fmt"

	"github.com/ib-77/cor3/pkg/cor"
)

const (
	Banana   = "Banana"
	Nut      = "Nut"
	MeatBall = "MeatBall"
)

// eat formats the message returned when an animal accepts the food.
func eat(name, food string) string {
	return fmt.Sprintf("%s: I'll eat the %s.", name, food)
}

type Monkey struct {
	cor.Base
}

func NewMonkey() *Monkey {
	return &Monkey{}
}

func (m *Monkey) Name() string {
	return "Monkey"
}

func (m *Monkey) Handle(request string) string {
	if request == Banana {
		return eat(m.Name(), request)
	}
	return m.Base.Handle(request)
}

type Squirrel struct {
	cor.Base
}

func NewSquirrel() *Squirrel {
	return &Squirrel{}
}

func (s *Squirrel) Name() string {
	return "Squirrel"
}

func (s *Squirrel) Handle(request string) string {
	if request == Nut {
		return eat(s.Name(), request)
	}
	return s.Base.Handle(request)
}

type Dog struct {
	cor.Base
}

func NewDog() *Dog {
	return &Dog{}
}

func (d *Dog) Name() string {
	return "Dog"
}

func (d *Dog) Handle(request string) string {
	if request == MeatBall {
		return eat(d.Name(), request)
	}
	return d.Base.Handle(request)
}
