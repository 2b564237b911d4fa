package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var formLabels = [3]string{"Name", "Species", "Sound"}

// addForm collects name, species and sound one field at a time.
type addForm struct {
	inputs [3]textinput.Model
	focus  int
}

func newAddForm() addForm {
	var f addForm
	for i, label := range formLabels {
		in := textinput.New()
		in.Prompt = label + ": "
		in.Placeholder = "enter animal " + strings.ToLower(label)
		in.CharLimit = 64
		f.inputs[i] = in
	}
	f.inputs[0].Focus()
	return f
}

// advance moves focus to the next field; it reports true when the last
// field was already focused and the form is ready to submit.
func (f *addForm) advance() bool {
	if f.focus == len(f.inputs)-1 {
		return true
	}
	f.inputs[f.focus].Blur()
	f.focus++
	f.inputs[f.focus].Focus()
	return false
}

func (f addForm) values() (name, species, sound string) {
	return f.inputs[0].Value(), f.inputs[1].Value(), f.inputs[2].Value()
}

func (f addForm) update(msg tea.Msg) (addForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f addForm) view() string {
	var b strings.Builder
	for i := range f.inputs {
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	return b.String()
}
