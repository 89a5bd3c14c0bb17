package handlers

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"waterdeck/internal/eventbus"
	"waterdeck/internal/monitors"
	"waterdeck/internal/ui/notify"
	"waterdeck/internal/ui/state"
)

// EventHandler applies domain events from background sources to the UI state
type EventHandler struct {
	state *state.AppState
	store monitors.Store
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, store monitors.Store) *EventHandler {
	return &EventHandler{
		state: appState,
		store: store,
	}
}

// HandleEvent processes domain events and returns any toast to show
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CatalogLoadedEvent:
		h.state.Refresh(h.store)
		if e.Count == 0 {
			return notify.NotifyCmd(notify.Warning, "Catalog has no monitors")
		}

	case eventbus.CatalogReloadedEvent:
		h.state.Refresh(h.store)
		return notify.NotifyCmd(notify.Info, fmt.Sprintf("Catalog reloaded (%d monitors)", e.Count))

	case eventbus.MonitorDeletedEvent:
		// The deleting command already announced it
		h.state.Refresh(h.store)

	case eventbus.ErrorEvent:
		log.Printf("Error event: %s: %v", e.Message, e.Err)
		return notify.NotifyCmd(notify.Error, ErrorText(e))
	}

	return nil
}

// ErrorText is the toast text for an error event
func ErrorText(e eventbus.ErrorEvent) string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}
