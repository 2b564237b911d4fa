package usecase

import (
	"io"
	"log/slog"

	"github.com/aalvaropc/petspeak/internal/domain"
)

type AddAnimal struct {
	log *slog.Logger
}

func NewAddAnimal(log *slog.Logger) *AddAnimal {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &AddAnimal{log: log}
}

// Execute returns a new roster with the animal appended. The input slice is
// never modified. On invalid input the original roster comes back unchanged
// with the validation error, whose message is fit to show to the user.
func (uc *AddAnimal) Execute(roster []domain.Animal, name, species, sound string) ([]domain.Animal, domain.Animal, error) {
	a, err := domain.NewAnimal(name, species, sound)
	if err != nil {
		uc.log.Warn("roster.add.rejected", "err", err)
		return roster, domain.Animal{}, err
	}

	out := make([]domain.Animal, 0, len(roster)+1)
	out = append(out, roster...)
	out = append(out, a)

	uc.log.Info("roster.add", "animal_id", a.ID(), "name", a.Name(), "species", a.Species())
	return out, a, nil
}
