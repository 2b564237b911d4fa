package viewstate

import (
	"strings"

	"github.com/aalvaropc/petspeak/internal/domain"
	"github.com/aalvaropc/petspeak/internal/ports"
)

const (
	HeadingAnimals  = "Available Animals:"
	HeadingSelected = "Selected Animal:"
	HeadingSpeech   = "Speech Output:"
)

// Render draws the screen as plain text. Each animal line carries a pressed
// marker; the speech region is present only while speech is shown.
func Render(animals []domain.Animal, s State, assets ports.AssetResolver) string {
	var b strings.Builder

	b.WriteString(HeadingAnimals)
	b.WriteString("\n")
	for _, a := range animals {
		mark := "[ ]"
		if s.IsPressed(a) {
			mark = "[x]"
		}
		b.WriteString("  ")
		b.WriteString(mark)
		b.WriteString(" ")
		if assets != nil {
			b.WriteString(assets.Resolve(a.Species()))
			b.WriteString(" ")
		}
		b.WriteString(a.String())
		b.WriteString("\n")
	}

	if a, ok := s.Selected(); ok {
		b.WriteString("\n")
		b.WriteString(HeadingSelected)
		b.WriteString("\n  ")
		b.WriteString(a.Info())
		b.WriteString("\n  (")
		b.WriteString(a.SpeakLabel())
		b.WriteString(")\n")
	}

	if text, ok := s.Speech(); ok {
		b.WriteString("\n")
		b.WriteString(HeadingSpeech)
		b.WriteString("\n  ")
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String()
}
