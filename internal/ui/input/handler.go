package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"waterdeck/internal/ui/input/modes"
	"waterdeck/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        modes.KeyMap
}

func New() *Handler {
	keys := modes.DefaultKeyMap()
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode(keys)
	h.modes[types.ModeSearch] = modes.NewSearchMode()
	h.modes[types.ModeDeleteConfirm] = modes.NewConfirmMode()
	h.modes[types.ModeSortSelect] = modes.NewSortSelectMode()

	return h
}

// HandleKey runs the key through the current mode and returns the resulting actions.
// Mode changes are applied here and also returned so the model can react to them.
// In text modes an unconsumed key becomes an EditTextAction for the field.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		if h.isTextMode(h.currentMode) {
			return []types.Action{types.EditTextAction{Key: msg}}
		}
		return nil
	}

	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}

		allActions = append(allActions, handler.Exit(ctx)...)
		h.currentMode = changeMode.Mode
		allActions = append(allActions, action)
		if next := h.modes[h.currentMode]; next != nil {
			allActions = append(allActions, next.Enter(ctx)...)
			handler = next
		}
	}

	return allActions
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// KeyMap returns the normal-mode bindings, for the help footer
func (h *Handler) KeyMap() modes.KeyMap {
	return h.keys
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}
