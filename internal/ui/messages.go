package ui

import (
	"waterdeck/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// configSavedMsg reports the result of saving the current search as the default
type configSavedMsg struct {
	query string
	err   error
}
