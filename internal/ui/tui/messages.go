package tui

import "github.com/aalvaropc/petspeak/internal/domain"

type animalAddedMsg struct {
	roster []domain.Animal
	animal domain.Animal
	err    error
}
