package search

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Placeholder is shown in the empty search field
const Placeholder = "Search"

// Toolbar is the search field above the monitor list.
// The text input only renders the field; every change goes through the Relay.
type Toolbar struct {
	input textinput.Model
	relay *Relay
	style lipgloss.Style
	width int
}

// NewToolbar creates a toolbar seeded with initial whose changes are sent to onQuery
func NewToolbar(initial string, onQuery QueryFunc) *Toolbar {
	ti := textinput.New()
	ti.Prompt = "⌕ "
	ti.Placeholder = Placeholder
	ti.SetValue(initial)
	ti.CursorEnd()

	return &Toolbar{
		input: ti,
		relay: NewRelay(initial, onQuery),
		style: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		width: 40,
	}
}

// Init mounts the relay, reporting the initial value to the owner
func (t *Toolbar) Init() tea.Cmd {
	t.relay.Mount()
	return nil
}

// Update feeds a message to the text field and relays any resulting text change
func (t *Toolbar) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	t.relay.Edit(t.input.Value())
	return cmd
}

// SetText replaces the field contents as if the user had typed it
func (t *Toolbar) SetText(text string) {
	t.input.SetValue(text)
	t.input.CursorEnd()
	t.relay.Edit(text)
}

// Clear empties the field
func (t *Toolbar) Clear() {
	t.SetText("")
}

// Value returns the current search text
func (t *Toolbar) Value() string {
	return t.relay.Value()
}

// Focus gives the field keyboard focus
func (t *Toolbar) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes keyboard focus, keeping the text
func (t *Toolbar) Blur() {
	t.input.Blur()
}

// Focused reports whether the field has keyboard focus
func (t *Toolbar) Focused() bool {
	return t.input.Focused()
}

// SetWidth sets the width of the field in cells
func (t *Toolbar) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	t.width = width
}

// Unmount stops change reporting; used when the owner goes away
func (t *Toolbar) Unmount() {
	t.relay.Unmount()
}

// View renders the field
func (t *Toolbar) View() string {
	style := t.style
	if t.input.Focused() {
		style = style.BorderForeground(lipgloss.Color("99"))
	}
	// Border and padding take four cells
	t.input.Width = t.width - 4 - lipgloss.Width(t.input.Prompt)
	return style.Width(t.width - 2).Render(t.input.View())
}
