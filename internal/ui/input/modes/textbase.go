package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"waterdeck/internal/ui/input/types"
)

// TextInputMode is a base for modes that type into a text field.
// Keys it does not consume are passed on to the field.
type TextInputMode struct {
	mode types.Mode
	name string
}

func NewTextInputMode(mode types.Mode, name string) TextInputMode {
	return TextInputMode{
		mode: mode,
		name: name,
	}
}

func (m TextInputMode) Name() string {
	return m.name
}

func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "enter":
		// Leave the field; the text stays
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "ctrl+u":
		return []types.Action{types.ClearTextAction{}}, true
	default:
		return nil, false
	}
}
