package demos

import (
	"context"
	"io"

	"github.com/conceptlab/walkthrough"
)

// Speaker is the capability of producing a sound.
type Speaker interface {
	Speak() string
}

// Describer is the capability of describing oneself.
type Describer interface {
	Describe() string
}

// Animal is the base variant: it can describe itself but has no
// particular sound.
type Animal struct {
	Name    string
	Species string
}

func (a Animal) Speak() string {
	return "..."
}

func (a Animal) Describe() string {
	return a.Name + " the " + a.Species
}

// Dog embeds Animal, overrides Speak, and extends Describe with its breed.
type Dog struct {
	Animal
	Breed string
}

// NewDog fixes the species the way a derived constructor would.
func NewDog(name, breed string) Dog {
	return Dog{
		Animal: Animal{Name: name, Species: "Dog"},
		Breed:  breed,
	}
}

func (d Dog) Speak() string {
	return "Woof!"
}

func (d Dog) Describe() string {
	return d.Animal.Describe() + " (" + d.Breed + ")"
}

// Inheritance demonstrates behavior override through capability
// interfaces: the embedding variant replaces Speak and extends Describe.
func Inheritance() walkthrough.Demo {
	return walkthrough.DemoFunc{
		ID:   "inheritance",
		Desc: "capability interfaces and behavior override",
		Fn:   runInheritance,
	}
}

func runInheritance(_ context.Context, w io.Writer) error {
	p := newPrinter(w)

	generic := Animal{Name: "Generic", Species: "Unknown"}
	buddy := NewDog("Buddy", "Golden Retriever")

	p.Linef("Animal: %s", generic.Describe())
	p.Linef("Dog: %s", buddy.Describe())
	p.Linef("Dog speaks: %s", buddy.Speak())

	// One virtual call site, two behaviors.
	p.Blank()
	p.Line("Through the Speaker interface:")
	for _, s := range []Speaker{generic, buddy} {
		p.Linef("- %s", s.Speak())
	}

	return p.finish("inheritance")
}
