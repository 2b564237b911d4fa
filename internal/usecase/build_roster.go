package usecase

import (
	"io"
	"log/slog"

	"github.com/aalvaropc/petspeak/internal/domain"
	"github.com/aalvaropc/petspeak/internal/ports"
)

type BuildRoster struct {
	loader ports.RosterLoader
	log    *slog.Logger
}

type RosterOption func(*BuildRoster)

func WithRosterLogger(log *slog.Logger) RosterOption {
	return func(uc *BuildRoster) {
		if log != nil {
			uc.log = log
		}
	}
}

func NewBuildRoster(loader ports.RosterLoader, opts ...RosterOption) *BuildRoster {
	uc := &BuildRoster{
		loader: loader,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute assembles the starting roster: the default animals (when enabled)
// followed by the valid entries of spec.Path. Invalid entries are logged and
// skipped. If the roster file cannot be read, the animals gathered so far are
// still returned together with the error.
func (uc *BuildRoster) Execute(spec domain.RosterSpec) ([]domain.Animal, error) {
	var animals []domain.Animal
	if spec.IncludeDefaults {
		animals = append(animals, domain.DefaultAnimals(uc.log)...)
	}

	if spec.Path == "" || uc.loader == nil {
		return animals, nil
	}

	extra, rejected, err := uc.loader.LoadRoster(spec.Path)
	if err != nil {
		uc.log.Error("roster.load.failed", "path", spec.Path, "err", err)
		return animals, err
	}
	for _, r := range rejected {
		uc.log.Warn("roster.entry.rejected", "path", spec.Path, "err", r)
	}

	uc.log.Info("roster.loaded",
		"path", spec.Path,
		"defaults", spec.IncludeDefaults,
		"extra", len(extra),
		"rejected", len(rejected),
	)
	return append(animals, extra...), nil
}
