package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"waterdeck/internal/monitors"
)

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type PageAction struct {
	Direction string // "next" or "prev"
}

func (a PageAction) Type() string { return "page" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions

// EditTextAction carries a key the search field should apply to its text
type EditTextAction struct {
	Key tea.KeyMsg
}

func (a EditTextAction) Type() string { return "edit_text" }

type ClearTextAction struct{}

func (a ClearTextAction) Type() string { return "clear_text" }

// Monitor actions
type RequestDeleteAction struct{}

func (a RequestDeleteAction) Type() string { return "request_delete" }

type ConfirmDeleteAction struct{}

func (a ConfirmDeleteAction) Type() string { return "confirm_delete" }

type CancelDeleteAction struct{}

func (a CancelDeleteAction) Type() string { return "cancel_delete" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type SaveSearchAction struct{}

func (a SaveSearchAction) Type() string { return "save_search" }

// SortByAction reorders the list; the sort menu sends one per step so the list previews it
type SortByAction struct {
	Sort monitors.Sort
}

func (a SortByAction) Type() string { return "sort_by" }

type DismissToastsAction struct{}

func (a DismissToastsAction) Type() string { return "dismiss_toasts" }

type OpenDetailAction struct{}

func (a OpenDetailAction) Type() string { return "open_detail" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
