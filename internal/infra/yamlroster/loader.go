package yamlroster

import (
	"fmt"
	"os"

	"github.com/aalvaropc/petspeak/internal/domain"
	"github.com/aalvaropc/petspeak/internal/ports"
	"gopkg.in/yaml.v3"
)

// Loader reads a roster file of the form:
//
//	animals:
//	  - name: Rex
//	    species: Dog
//	    sound: Bark
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.RosterLoader = (*Loader)(nil)

func (l *Loader) LoadRoster(path string) ([]domain.Animal, []error, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &domain.OpError{
			Op:   "yamlroster.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yr yamlRoster
	if err := yaml.Unmarshal(b, &yr); err != nil {
		return nil, nil, &domain.OpError{
			Op:   "yamlroster.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	animals := make([]domain.Animal, 0, len(yr.Animals))
	var rejected []error
	for i, e := range yr.Animals {
		a, err := domain.AnimalFromValues(e.Name, e.Species, e.Sound)
		if err != nil {
			rejected = append(rejected, &domain.OpError{
				Op:   "yamlroster.entry",
				Kind: domain.KindInvalidInput,
				Path: path,
				Err:  fmt.Errorf("animals[%d]: %w", i, err),
			})
			continue
		}
		animals = append(animals, a)
	}

	return animals, rejected, nil
}

// Entries are decoded as any so a number or list in place of a string is
// caught by validation instead of being stringified by the decoder.
type yamlRoster struct {
	Animals []yamlAnimal `yaml:"animals"`
}

type yamlAnimal struct {
	Name    any `yaml:"name"`
	Species any `yaml:"species"`
	Sound   any `yaml:"sound"`
}
