package domain

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Animal is an immutable record describing one animal on the roster.
// Construct it with NewAnimal, AnimalFromValues or CreateAnimal; the zero value is not valid.
type Animal struct {
	id      string
	name    string
	species string
	sound   string
}

// NewAnimal validates and trims the three inputs and assigns a fresh id.
// Fields are checked in order name, species, sound; the first failure wins.
func NewAnimal(name, species, sound string) (Animal, error) {
	const op = "domain.new_animal"

	n := strings.TrimSpace(name)
	if n == "" {
		return Animal{}, invalidInput(op, "name")
	}
	s := strings.TrimSpace(species)
	if s == "" {
		return Animal{}, invalidInput(op, "species")
	}
	d := strings.TrimSpace(sound)
	if d == "" {
		return Animal{}, invalidInput(op, "sound")
	}

	return Animal{id: uuid.NewString(), name: n, species: s, sound: d}, nil
}

// AnimalFromValues is NewAnimal for untyped input such as decoded YAML.
// A non-string value fails the same way an empty string does.
func AnimalFromValues(name, species, sound any) (Animal, error) {
	const op = "domain.animal_from_values"

	fields := [3]struct {
		label string
		v     any
	}{{"name", name}, {"species", species}, {"sound", sound}}

	var out [3]string
	for i, f := range fields {
		s, ok := f.v.(string)
		if !ok {
			return Animal{}, invalidInput(op, f.label)
		}
		out[i] = s
	}
	return NewAnimal(out[0], out[1], out[2])
}

// CreateAnimal never fails: invalid input is logged and reported as absent.
func CreateAnimal(log *slog.Logger, name, species, sound string) (Animal, bool) {
	a, err := NewAnimal(name, species, sound)
	if err != nil {
		if log == nil {
			log = slog.Default()
		}
		log.Warn("animal.create.rejected",
			"name", name,
			"species", species,
			"sound", sound,
			"err", err,
		)
		return Animal{}, false
	}
	return a, true
}

func (a Animal) ID() string      { return a.id }
func (a Animal) Name() string    { return a.name }
func (a Animal) Species() string { return a.species }
func (a Animal) Sound() string   { return a.sound }

// Speak renders the animal's canned speech line.
func (a Animal) Speak() string {
	return fmt.Sprintf("%s the %s says: %s!", a.name, a.species, a.sound)
}

// Info renders the name/species summary shown in the details panel.
func (a Animal) Info() string {
	return fmt.Sprintf("Name: %s, Species: %s", a.name, a.species)
}

// Label is the accessible name of the item that selects this animal.
func (a Animal) Label() string {
	return fmt.Sprintf("Select %s the %s", a.name, a.species)
}

// SpeakLabel is the accessible name of the speak action for this animal.
func (a Animal) SpeakLabel() string {
	return fmt.Sprintf("Make %s the %s speak", a.name, a.species)
}

// IsValid re-checks that every field is present.
func (a Animal) IsValid() bool {
	return a.id != "" && a.name != "" && a.species != "" && a.sound != ""
}

// Same reports whether both values refer to the same constructed record.
func (a Animal) Same(b Animal) bool {
	return a.id != "" && a.id == b.id
}

type animalJSON struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Sound   string `json:"sound"`
}

func (a Animal) MarshalJSON() ([]byte, error) {
	return json.Marshal(animalJSON{ID: a.id, Name: a.name, Species: a.species, Sound: a.sound})
}

func (a Animal) String() string {
	return fmt.Sprintf("%s (%s)", a.name, a.species)
}
