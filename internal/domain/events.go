package domain

import "github.com/google/uuid"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded   EventType = "CatalogLoaded"
	EventCatalogReloaded EventType = "CatalogReloaded"
	EventMonitorDeleted  EventType = "MonitorDeleted"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted once the monitor catalog has been read at startup
type CatalogLoadedEvent struct {
	Path  string
	Count int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogReloadedEvent is emitted when the catalog file changed on disk and was read again
type CatalogReloadedEvent struct {
	Path  string
	Count int
}

func (e CatalogReloadedEvent) Type() EventType { return EventCatalogReloaded }

// MonitorDeletedEvent is emitted when a monitor is removed from the store
type MonitorDeletedEvent struct {
	ID   uuid.UUID
	Name string
}

func (e MonitorDeletedEvent) Type() EventType { return EventMonitorDeleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	CatalogPath string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
