package tui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/petspeak/internal/domain"
	"github.com/aalvaropc/petspeak/internal/ui/viewstate"
)

type screen int

const (
	screenAnimals screen = iota
	screenAdd
)

type animalItem struct {
	animal  domain.Animal
	glyph   string
	pressed bool
}

func (it animalItem) Title() string {
	mark := "[ ]"
	if it.pressed {
		mark = "[x]"
	}
	if it.glyph == "" {
		return mark + " " + it.animal.String()
	}
	return mark + " " + it.glyph + " " + it.animal.String()
}

func (it animalItem) Description() string { return it.animal.Label() }
func (it animalItem) FilterValue() string { return it.animal.Name() }

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger
	keys  keyMap

	scr    screen
	roster []domain.Animal
	list   list.Model
	state  viewstate.State
	form   addForm
	toast  string
}

func Run(deps Deps, roster []domain.Animal) error {
	reset := func() model { return newModel(deps, roster) }
	p := tea.NewProgram(wrapSafe(reset(), deps.Logger, reset), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps, roster []domain.Animal) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	m := model{
		theme:  DefaultTheme(),
		deps:   deps,
		log:    log,
		keys:   defaultKeys(),
		scr:    screenAnimals,
		roster: roster,
		state:  viewstate.New(log),
	}

	l := list.New(m.items(), list.NewDefaultDelegate(), 0, 0)
	l.Title = "Available Animals"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	// q and ctrl+c are handled by the model; esc only cancels.
	l.DisableQuitKeybindings()
	m.list = l

	return m
}

func (m model) items() []list.Item {
	items := make([]list.Item, 0, len(m.roster))
	for _, a := range m.roster {
		it := animalItem{animal: a, pressed: m.state.IsPressed(a)}
		if m.deps.Assets != nil {
			it.glyph = m.deps.Assets.Resolve(a.Species())
		}
		items = append(items, it)
	}
	return items
}

func (m model) refreshItems() (model, tea.Cmd) {
	cmd := m.list.SetItems(m.items())
	return m, cmd
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-16)
		return m, nil

	case animalAddedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.roster = msg.roster
		m.scr = screenAnimals
		m.toast = "Added " + msg.animal.Name() + " the " + msg.animal.Species()
		return m.refreshItems()

	case tea.KeyMsg:
		if m.scr == screenAdd {
			return m.updateForm(msg)
		}
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			it, ok := m.list.SelectedItem().(animalItem)
			if !ok {
				return m, nil
			}
			next, err := m.state.Select(it.animal)
			if err != nil {
				return m, nil
			}
			m.state = next
			m.toast = ""
			return m.refreshItems()

		case key.Matches(msg, m.keys.Speak):
			// Errors are logged by the state and leave it unchanged.
			m.state, _ = m.state.Speak()
			return m, nil

		case key.Matches(msg, m.keys.Add):
			m.scr = screenAdd
			m.form = newAddForm()
			m.toast = ""
			return m, nil
		}
	}

	if m.scr == screenAnimals {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.scr = screenAnimals
		m.toast = ""
		return m, nil

	case key.Matches(msg, m.keys.Next):
		if !m.form.advance() {
			return m, nil
		}
		name, species, sound := m.form.values()
		return m, cmdAddAnimal(m.log, m.roster, name, species, sound)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("petspeak") + "\n" +
		m.theme.Subtitle.Render("Pick an animal and make it speak") + "\n"

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenAnimals:
		body := m.theme.Card.Render(m.list.View())

		if a, ok := m.state.Selected(); ok {
			panel := m.theme.Title.Render(viewstate.HeadingSelected) + "\n" +
				a.Info() + "\n\n" +
				m.theme.Button.Render("Make "+a.Name()+" Speak!") + " " +
				m.theme.Help.Render("("+a.SpeakLabel()+": s)")
			body += "\n" + m.theme.Card.Render(panel)
		}

		if text, ok := m.state.Speech(); ok {
			body += "\n" + m.theme.Speech.Render(
				m.theme.Title.Render("🗣️ "+viewstate.HeadingSpeech)+"\n"+m.theme.Title.Render(text),
			)
		}

		help := m.theme.Help.Render(helpLine(m.keys.Select, m.keys.Speak, m.keys.Add, m.keys.Quit) + " • / search")
		return wrap.Render(header + "\n" + body + toast + "\n" + help + m.debugLine())

	case screenAdd:
		card := m.theme.Card.Render(
			m.theme.Title.Render("Add New Animal") + "\n\n" + m.form.view(),
		)
		help := m.theme.Help.Render(helpLine(m.keys.Next, m.keys.Back))
		return wrap.Render(header + "\n" + card + toast + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) debugLine() string {
	if !m.deps.Debug || m.deps.LogPath == "" {
		return ""
	}
	line := "debug: logging to " + m.deps.LogPath
	if !m.deps.LogStarted.IsZero() {
		line += " since " + m.deps.LogStarted.Format("15:04:05 MST")
	}
	return "\n" + m.theme.Help.Render(line)
}
