package animals

import (
	"fmt"
	"io"
)

// Animal moves and speaks in a species-specific way.
type Animal interface {
	Name() string
	Move(w io.Writer)
	Speak(w io.Writer)
}

// Generic is the base animal; it moves generically and is silent.
type Generic struct {
	name string
}

func NewGeneric(name string) Generic {
	return Generic{name: name}
}

func (a Generic) Name() string {
	return a.name
}

func (a Generic) Move(w io.Writer) {
	fmt.Fprintf(w, "%s is moving in a generic way\n", a.name)
}

func (a Generic) Speak(io.Writer) {}

type Dog struct{ Generic }

func NewDog(name string) Dog { return Dog{NewGeneric(name)} }

func (d Dog) Move(w io.Writer) {
	fmt.Fprintf(w, "%s runs happily on four legs! 🐕\n", d.name)
}

func (d Dog) Speak(w io.Writer) {
	fmt.Fprintln(w, "Woof! Woof!")
}

type Fish struct{ Generic }

func NewFish(name string) Fish { return Fish{NewGeneric(name)} }

func (f Fish) Move(w io.Writer) {
	fmt.Fprintf(w, "%s swims gracefully through the water! 🐟\n", f.name)
}

func (f Fish) Speak(w io.Writer) {
	fmt.Fprintln(w, "Blub blub...")
}

type Bird struct{ Generic }

func NewBird(name string) Bird { return Bird{NewGeneric(name)} }

func (b Bird) Move(w io.Writer) {
	fmt.Fprintf(w, "%s soars through the sky! 🦅\n", b.name)
}

func (b Bird) Speak(w io.Writer) {
	fmt.Fprintln(w, "Chirp! Chirp!")
}
