package commands

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"waterdeck/internal/domain"
	"waterdeck/internal/eventbus"
	"waterdeck/internal/monitors"
	"waterdeck/internal/ui/notify"
	"waterdeck/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// Reloader re-reads the monitor catalog into the store
type Reloader interface {
	Reload() (int, error)
}

// CommandContext provides context for command execution
type CommandContext struct {
	State    *state.AppState
	Store    monitors.Store
	Bus      eventbus.EventBus
	Reloader Reloader
}

// DeleteCommand removes a monitor from the store
type DeleteCommand struct {
	ctx     *CommandContext
	monitor *domain.Monitor
}

// NewDeleteCommand creates a new delete command
func NewDeleteCommand(ctx *CommandContext, monitor *domain.Monitor) *DeleteCommand {
	return &DeleteCommand{
		ctx:     ctx,
		monitor: monitor,
	}
}

// Execute deletes the monitor and announces the result
func (c *DeleteCommand) Execute() tea.Cmd {
	if c.monitor == nil {
		return nil
	}

	deleted, err := c.ctx.Store.Delete(c.monitor.ID)
	if err != nil {
		log.Printf("Delete %s failed: %v", c.monitor.ID, err)
		return notify.NotifyCmd(notify.Error, fmt.Sprintf("Could not delete '%s': %v", c.monitor.Name, err))
	}

	c.ctx.State.Refresh(c.ctx.Store)
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.MonitorDeletedEvent{ID: deleted.ID, Name: deleted.Name})
	}
	return notify.NotifyCmd(notify.Success, fmt.Sprintf("Monitor '%s' deleted", deleted.Name))
}

// ReloadCommand reads the catalog again on request
type ReloadCommand struct {
	ctx *CommandContext
}

// NewReloadCommand creates a new reload command
func NewReloadCommand(ctx *CommandContext) *ReloadCommand {
	return &ReloadCommand{ctx: ctx}
}

// Execute reloads the catalog and refreshes the list
func (c *ReloadCommand) Execute() tea.Cmd {
	if c.ctx.Reloader == nil {
		return notify.NotifyCmd(notify.Warning, "No catalog to reload")
	}

	count, err := c.ctx.Reloader.Reload()
	if err != nil {
		log.Printf("Reload failed: %v", err)
		return notify.NotifyCmd(notify.Error, fmt.Sprintf("Reload failed: %v", err))
	}

	c.ctx.State.Refresh(c.ctx.Store)
	log.Printf("Catalog reloaded on request: %d monitors", count)
	return notify.NotifyCmd(notify.Info, fmt.Sprintf("Reloaded %d monitors", count))
}
