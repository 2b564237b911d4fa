package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/petspeak/internal/domain"
)

type flakyAssets struct {
	fail *bool
}

func (f flakyAssets) Resolve(string) string {
	if *f.fail {
		panic("asset store unavailable")
	}
	return "*"
}

func TestSafeModel_RecoversAndResets(t *testing.T) {
	fail := false
	deps := Deps{Assets: flakyAssets{fail: &fail}, Logger: quietLog()}
	roster := domain.DefaultAnimals(quietLog())
	reset := func() model {
		m, _ := newModel(deps, roster).Update(tea.WindowSizeMsg{Width: 100, Height: 60})
		return m.(model)
	}

	s := wrapSafe(reset(), quietLog(), reset)

	fail = true
	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("expected no command after panic")
	}
	s = next.(safeModel)

	out := s.View()
	if !strings.Contains(out, "Something went wrong") || !strings.Contains(out, "asset store unavailable") {
		t.Fatalf("expected failure view, got:\n%s", out)
	}

	fail = false
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	s = next.(safeModel)
	if s.failure != "" {
		t.Fatalf("expected failure cleared")
	}
	if _, ok := s.m.state.Selected(); ok {
		t.Fatalf("expected fresh state after reset")
	}
	if !strings.Contains(s.View(), "Buddy (Dog)") {
		t.Fatalf("expected animal screen after reset, got:\n%s", s.View())
	}
}

func TestSafeModel_QuitFromFailure(t *testing.T) {
	s := safeModel{failure: "boom", log: quietLog()}
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestSafeModel_PassesThrough(t *testing.T) {
	m := newModel(Deps{Logger: quietLog()}, domain.DefaultAnimals(quietLog()))
	s := wrapSafe(m, nil, nil)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(safeModel)
	if _, ok := s.m.state.Selected(); !ok {
		t.Fatalf("expected selection to reach inner model")
	}
}
