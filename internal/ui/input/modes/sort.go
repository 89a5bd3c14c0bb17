package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"waterdeck/internal/monitors"
	"waterdeck/internal/ui/input/types"
)

// SortSelectMode steps through the sort fields. Every step is applied at once
// so the list previews it; esc puts the sort the mode started with back.
type SortSelectMode struct {
	current  monitors.Sort
	original monitors.Sort
}

func NewSortSelectMode() *SortSelectMode {
	return &SortSelectMode{current: monitors.DefaultSort(), original: monitors.DefaultSort()}
}

func (m *SortSelectMode) Name() string {
	return "sort"
}

func (m *SortSelectMode) Enter(ctx types.Context) []types.Action {
	m.current = ctx.CurrentSort()
	if !m.current.Field.Valid() {
		m.current = monitors.DefaultSort()
	}
	m.original = m.current
	return nil
}

func (m *SortSelectMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// HandleKey processes key messages for sort selection
func (m *SortSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "q":
		// Cancel and restore the original sort
		return []types.Action{
			types.SortByAction{Sort: m.original},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "enter", "o":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case "down", "j", "right", "l", "tab":
		return m.step(1), true

	case "up", "k", "left", "h", "shift+tab":
		return m.step(-1), true

	case "r":
		m.current = m.current.Reversed()
		return []types.Action{types.SortByAction{Sort: m.current}}, true
	}

	// Other keys do nothing while the menu is open
	return nil, true
}

// step moves to the neighbouring field, sorted in its natural direction
func (m *SortSelectMode) step(delta int) []types.Action {
	fields := monitors.SortFields()
	idx := 0
	for i, f := range fields {
		if f == m.current.Field {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	m.current = monitors.ByField(fields[idx])
	return []types.Action{types.SortByAction{Sort: m.current}}
}
