// Package demo prints the fixed hero and animal walkthrough.
package demo

import (
	"fmt"
	"io"

	"github.com/danmuck/labkit/internal/animals"
	"github.com/danmuck/labkit/internal/heroes"
)

const unlockPassword = "JLADarkKnight"

func Run(w io.Writer) {
	fmt.Fprintln(w, "=== Superhero Demonstration ===")
	ironMan := heroes.NewTechHero("Iron Man", "Tony Stark", 95, "Repulsor Beams")
	drStrange := heroes.NewMagicHero("Doctor Strange", "Stephen Strange", 99, "Crimson Bands of Cyttorak")

	ironMan.Introduce(w)
	ironMan.Attack(w)
	ironMan.Hack(w)
	ironMan.RevealSecret(w, unlockPassword)

	drStrange.Introduce(w)
	drStrange.Attack(w)
	drStrange.Teleport(w)

	fmt.Fprintln(w, "\n=== Animal Polymorphism Demonstration ===")
	zoo := []animals.Animal{
		animals.NewDog("Rex"),
		animals.NewFish("Nemo"),
		animals.NewBird("Eagle"),
	}
	for _, a := range zoo {
		a.Move(w)
		a.Speak(w)
	}
}
