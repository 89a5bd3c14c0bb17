// Package search turns keystrokes in the list toolbar into a search query
// for the list that owns it.
//
// The Relay is the single source of truth for the search text: it is seeded
// once from the owner's initial value and from then on the owner only hears
// about changes. The owner never writes back into the field.
//
// The Relay forwards text untouched. The Toolbar is a single-line field, so
// its text input turns pasted tabs and newlines into spaces before the Relay
// sees the edit.
package search

// QueryFunc receives the current search text
type QueryFunc func(query string)

// Relay buffers the text of a search field and forwards every change to a consumer
type Relay struct {
	value   string
	onQuery QueryFunc
	mounted bool
}

// NewRelay creates a relay seeded with initial. Nothing is reported until Mount.
func NewRelay(initial string, onQuery QueryFunc) *Relay {
	return &Relay{
		value:   initial,
		onQuery: onQuery,
	}
}

// Mount reports the seeded value to the consumer. Only the first call has any effect.
func (r *Relay) Mount() {
	if r.mounted {
		return
	}
	r.mounted = true
	r.notify()
}

// Edit replaces the buffered text and reports it when it differs from the current value.
// An edit on a relay that was never mounted mounts it first, so the consumer
// always sees the seeded value before any edit.
func (r *Relay) Edit(text string) {
	if !r.mounted {
		r.Mount()
	}
	if text == r.value {
		return
	}
	r.value = text
	r.notify()
}

// Value returns the buffered text
func (r *Relay) Value() string {
	return r.value
}

// Mounted reports whether Mount has run
func (r *Relay) Mounted() bool {
	return r.mounted
}

// Unmount drops the consumer. Later edits still update Value but report nothing.
func (r *Relay) Unmount() {
	r.onQuery = nil
}

func (r *Relay) notify() {
	if r.onQuery != nil {
		r.onQuery(r.value)
	}
}
