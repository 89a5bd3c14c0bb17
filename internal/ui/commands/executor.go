package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"waterdeck/internal/domain"
	"waterdeck/internal/eventbus"
	"waterdeck/internal/monitors"
	"waterdeck/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, store monitors.Store, bus eventbus.EventBus, reloader Reloader) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:    state,
			Store:    store,
			Bus:      bus,
			Reloader: reloader,
		},
	}
}

// ExecuteDelete creates and executes a delete command
func (e *Executor) ExecuteDelete(monitor *domain.Monitor) tea.Cmd {
	return NewDeleteCommand(e.ctx, monitor).Execute()
}

// ExecuteReload creates and executes a reload command
func (e *Executor) ExecuteReload() tea.Cmd {
	return NewReloadCommand(e.ctx).Execute()
}
