package heroes

import (
	"fmt"
	"io"
)

// revealPassword unlocks RevealSecret.
const revealPassword = "JLADarkKnight"

// Hero is the behavior shared by every hero variant.
type Hero interface {
	Name() string
	PowerLevel() int
	Introduce(w io.Writer)
	Attack(w io.Writer)
	RevealSecret(w io.Writer, password string)
	DefeatVillain() int
	VillainsDefeated() int
	String() string
}

// Hacker is implemented by heroes that can hack.
type Hacker interface {
	Hack(w io.Writer)
}

// Teleporter is implemented by heroes that can teleport.
type Teleporter interface {
	Teleport(w io.Writer)
}

// Superhero is the base hero. Variants embed it and override Attack.
type Superhero struct {
	name             string
	secretIdentity   string
	villainsDefeated int
	Level            int
}

func NewSuperhero(name, secretIdentity string, level int) *Superhero {
	return &Superhero{
		name:           name,
		secretIdentity: secretIdentity,
		Level:          level,
	}
}

func (h *Superhero) Name() string {
	return h.name
}

func (h *Superhero) PowerLevel() int {
	return h.Level
}

func (h *Superhero) Introduce(w io.Writer) {
	fmt.Fprintf(w, "I am %s! Power level: %d\n", h.name, h.Level)
}

// RevealSecret prints the secret identity only for the right password.
func (h *Superhero) RevealSecret(w io.Writer, password string) {
	if password == revealPassword {
		fmt.Fprintf(w, "My real identity is %s\n", h.secretIdentity)
		return
	}
	fmt.Fprintln(w, "Access denied!")
}

func (h *Superhero) Attack(w io.Writer) {
	fmt.Fprintf(w, "%s uses a basic attack!\n", h.name)
}

// DefeatVillain increments and returns the villain count.
func (h *Superhero) DefeatVillain() int {
	h.villainsDefeated++
	return h.villainsDefeated
}

func (h *Superhero) VillainsDefeated() int {
	return h.villainsDefeated
}

func (h *Superhero) String() string {
	return fmt.Sprintf("Superhero: %s (Power: %d)", h.name, h.Level)
}

// TechHero fights with a gadget.
type TechHero struct {
	*Superhero
	Gadget string
}

func NewTechHero(name, secretIdentity string, level int, gadget string) *TechHero {
	return &TechHero{
		Superhero: NewSuperhero(name, secretIdentity, level),
		Gadget:    gadget,
	}
}

func (h *TechHero) Attack(w io.Writer) {
	fmt.Fprintf(w, "%s deploys %s!\n", h.name, h.Gadget)
}

func (h *TechHero) Hack(w io.Writer) {
	fmt.Fprintf(w, "%s is hacking the mainframe...\n", h.name)
}

// MagicHero fights with a spell.
type MagicHero struct {
	*Superhero
	Spell string
}

func NewMagicHero(name, secretIdentity string, level int, spell string) *MagicHero {
	return &MagicHero{
		Superhero: NewSuperhero(name, secretIdentity, level),
		Spell:     spell,
	}
}

func (h *MagicHero) Attack(w io.Writer) {
	fmt.Fprintf(w, "%s casts %s!\n", h.name, h.Spell)
}

func (h *MagicHero) Teleport(w io.Writer) {
	fmt.Fprintf(w, "%s vanishes in a puff of smoke!\n", h.name)
}

var (
	_ Hero       = (*Superhero)(nil)
	_ Hero       = (*TechHero)(nil)
	_ Hero       = (*MagicHero)(nil)
	_ Hacker     = (*TechHero)(nil)
	_ Teleporter = (*MagicHero)(nil)
)
