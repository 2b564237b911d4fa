package usecase

import (
	"github.com/aalvaropc/petspeak/internal/domain"
)

type fakeRosterLoader struct {
	animals  []domain.Animal
	rejected []error
	err      error
	gotPath  *string
}

func (f fakeRosterLoader) LoadRoster(path string) ([]domain.Animal, []error, error) {
	if f.gotPath != nil {
		*f.gotPath = path
	}
	return f.animals, f.rejected, f.err
}

type fakeInitializer struct {
	got   *domain.WorkspaceSpec
	force *bool
	err   error
}

func (f fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	*f.got = spec
	*f.force = force
	return f.err
}
