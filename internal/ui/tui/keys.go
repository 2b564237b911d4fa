package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Select key.Binding
	Speak  key.Binding
	Add    key.Binding
	Back   key.Binding
	Next   key.Binding
	Quit   key.Binding
	Reset  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Speak:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "speak")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add animal")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Next:   key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "next")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "try again")),
	}
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
