package ports

import "github.com/aalvaropc/petspeak/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
