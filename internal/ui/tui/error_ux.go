package tui

import (
	"errors"

	"github.com/aalvaropc/petspeak/internal/domain"
)

// userMessage turns an error into a short line for the toast area.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var ie *domain.InputError
	if errors.As(err, &ie) {
		return ie.Msg
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindInvalidInput:
			if errors.Is(err, domain.ErrNoSelection) {
				return "Select an animal first"
			}
			return "Invalid input"
		case domain.KindNotFound:
			return "Not found"
		case domain.KindInvalidConfig:
			return "Invalid config"
		default:
			return "Unexpected error (see logs)"
		}
	}

	return "Unexpected error (see logs)"
}
