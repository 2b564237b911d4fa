package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// safeModel is the last-resort error shell around the animal screen. A panic
// in Update or View replaces the screen with an alert; "r" rebuilds the inner
// model from scratch.
type safeModel struct {
	m     model
	log   *slog.Logger
	reset func() model

	failure string
}

func wrapSafe(m model, log *slog.Logger, reset func() model) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log, reset: reset}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	if s.failure != "" {
		return s.updateFailed(msg)
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic.recovered",
				"where", "tui.update",
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			s.failure = fmt.Sprint(r)
			tm = s
			cmd = nil
		}
	}()

	inner, c := s.m.Update(msg)

	if mm, ok := inner.(model); ok {
		s.m = mm
	} else if sm, ok := inner.(safeModel); ok {
		s = sm
	}

	return s, c
}

func (s safeModel) updateFailed(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	keys := defaultKeys()
	switch {
	case key.Matches(km, keys.Quit):
		return s, tea.Quit
	case key.Matches(km, keys.Reset):
		s.log.Info("tui.reset", "after", s.failure)
		if s.reset != nil {
			s.m = s.reset()
		}
		s.failure = ""
		return s, nil
	}
	return s, nil
}

func (s safeModel) View() (out string) {
	if s.failure != "" {
		return s.failureView()
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic.recovered",
				"where", "tui.view",
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			s.failure = fmt.Sprint(r)
			out = s.failureView()
		}
	}()
	return s.m.View()
}

func (s safeModel) failureView() string {
	t := DefaultTheme()
	body := t.Title.Render("🚨 Something went wrong:") + "\n\n" +
		s.failure + "\n\n" +
		t.Help.Render(helpLine(defaultKeys().Reset, defaultKeys().Quit))
	return lipgloss.NewStyle().Padding(1, 2).Render(t.Alert.Render(body))
}

var _ tea.Model = (*safeModel)(nil)
