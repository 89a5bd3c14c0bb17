package modes

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"waterdeck/internal/ui/input/types"
)

// ggTimeout is how long a first 'g' waits for the second
const ggTimeout = 500 * time.Millisecond

type NormalMode struct {
	keys        KeyMap
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode(keys KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "g" {
		if m.lastKeyWasG && time.Since(m.lastGTime) < ggTimeout {
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true
	}
	// Any other key cancels the 'g' prefix
	m.lastKeyWasG = false

	switch {
	case msg.Type == tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.Top):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, m.keys.Bottom):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.NextPage):
		if ctx.Page() < ctx.Pages() {
			return []types.Action{types.PageAction{Direction: "next"}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.PrevPage):
		if ctx.Page() > 1 {
			return []types.Action{types.PageAction{Direction: "prev"}}, true
		}
		return nil, true

	case key.Matches(msg, m.keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, m.keys.Delete):
		// Only when the cursor is on a monitor
		if ctx.CurrentMonitorName() != "" {
			return []types.Action{
				types.RequestDeleteAction{},
				types.ChangeModeAction{Mode: types.ModeDeleteConfirm},
			}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.Sort):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSortSelect}}, true

	case key.Matches(msg, m.keys.Dismiss):
		return []types.Action{types.DismissToastsAction{}}, true

	case key.Matches(msg, m.keys.Reload):
		return []types.Action{types.ReloadAction{}}, true

	case key.Matches(msg, m.keys.Save):
		return []types.Action{types.SaveSearchAction{}}, true

	case key.Matches(msg, m.keys.Detail):
		if ctx.CurrentMonitorName() != "" {
			return []types.Action{types.OpenDetailAction{}}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
