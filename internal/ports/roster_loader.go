package ports

import "github.com/aalvaropc/petspeak/internal/domain"

// RosterLoader loads extra animals from a source (e.g., filesystem).
// Entries that fail validation are reported per entry, not as a load failure.
type RosterLoader interface {
	LoadRoster(path string) (animals []domain.Animal, rejected []error, err error)
}
