package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/petspeak/internal/domain"
	"github.com/aalvaropc/petspeak/internal/usecase"
)

func cmdAddAnimal(log *slog.Logger, roster []domain.Animal, name, species, sound string) tea.Cmd {
	return func() tea.Msg {
		out, a, err := usecase.NewAddAnimal(log).Execute(roster, name, species, sound)
		return animalAddedMsg{roster: out, animal: a, err: err}
	}
}
