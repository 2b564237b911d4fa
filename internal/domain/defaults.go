package domain

import (
	"log/slog"
	"strings"
)

type seed struct {
	name, species, sound string
}

var defaultSeeds = []seed{
	{"Buddy", "Dog", "Woof"},
	{"Whiskers", "Cat", "Meow"},
	{"Charlie", "Bird", "Tweet"},
}

// DefaultAnimals builds the initial roster. Entries that fail validation are
// dropped, so the result only ever holds valid records.
func DefaultAnimals(log *slog.Logger) []Animal {
	out := make([]Animal, 0, len(defaultSeeds))
	for _, s := range defaultSeeds {
		if a, ok := CreateAnimal(log, s.name, s.species, s.sound); ok {
			out = append(out, a)
		}
	}
	return out
}

// FindAnimal returns the first animal whose name matches, ignoring case.
func FindAnimal(animals []Animal, name string) (Animal, bool) {
	for _, a := range animals {
		if strings.EqualFold(a.name, strings.TrimSpace(name)) {
			return a, true
		}
	}
	return Animal{}, false
}
