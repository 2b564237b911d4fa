// Package viewstate holds the selection and speech state behind the animal
// screen. State is a value: every transition returns the next state, so a
// Bubble Tea model can embed it without sharing mutable data.
package viewstate

import (
	"io"
	"log/slog"

	"github.com/aalvaropc/petspeak/internal/domain"
)

type State struct {
	log      *slog.Logger
	selected domain.Optional[domain.Animal]
	speech   domain.Optional[string]
}

// New returns the initial state: nothing selected, no speech shown.
func New(log *slog.Logger) State {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return State{log: log}
}

// Select makes a the current animal and hides any speech in the same step.
// An invalid animal is rejected and the state is returned unchanged.
func (s State) Select(a domain.Animal) (State, error) {
	if !a.IsValid() {
		s.logger().Warn("selection.select.rejected", "animal_id", a.ID(), "name", a.Name())
		return s, &domain.OpError{
			Op:   "viewstate.select",
			Kind: domain.KindInvalidInput,
			Err:  domain.ErrInvalidInput,
		}
	}

	s.selected = domain.Some(a)
	s.speech = domain.None[string]()
	s.logger().Debug("selection.select", "animal_id", a.ID(), "name", a.Name())
	return s, nil
}

// Speak shows the selected animal's speech. Repeated calls replace the text
// rather than appending. With nothing selected it is a logged no-op.
func (s State) Speak() (State, error) {
	a, ok := s.selected.Get()
	if !ok {
		s.logger().Warn("selection.speak.ignored", "reason", "no selection")
		return s, &domain.OpError{
			Op:   "viewstate.speak",
			Kind: domain.KindInvalidInput,
			Err:  domain.ErrNoSelection,
		}
	}

	s.speech = domain.Some(a.Speak())
	s.logger().Debug("selection.speak", "animal_id", a.ID())
	return s, nil
}

func (s State) Selected() (domain.Animal, bool) { return s.selected.Get() }

func (s State) Speech() (string, bool) { return s.speech.Get() }

// IsPressed reports whether a is the currently selected animal.
func (s State) IsPressed(a domain.Animal) bool {
	cur, ok := s.selected.Get()
	return ok && cur.Same(a)
}

func (s State) logger() *slog.Logger {
	if s.log == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return s.log
}
