package notify

import "time"

// Density controls how much padding a toast gets
type Density int

const (
	DensityDefault Density = iota
	DensityCompact
)

// Vertical is the screen edge toasts stack against
type Vertical int

const (
	AnchorTop Vertical = iota
	AnchorBottom
)

// Horizontal is where toasts sit across the screen
type Horizontal int

const (
	AnchorLeft Horizontal = iota
	AnchorCenter
	AnchorRight
)

// Anchor is the screen position of the toast stack
type Anchor struct {
	Vertical   Vertical
	Horizontal Horizontal
}

// Policy values
const (
	MaxConcurrent    = 5
	AutoHideDuration = 3000 * time.Millisecond
)

// Policy is the presentation policy for toasts. It is a plain value: copies
// handed to renderers cannot affect each other.
type Policy struct {
	Density          Density
	MaxConcurrent    int
	PreventDuplicate bool
	AutoHide         time.Duration
	Anchor           Anchor
}

// DefaultPolicy returns the dashboard's toast policy: compact toasts, at most
// five on screen, duplicates suppressed, hidden after three seconds, stacked
// in the top right corner.
func DefaultPolicy() Policy {
	return Policy{
		Density:          DensityCompact,
		MaxConcurrent:    MaxConcurrent,
		PreventDuplicate: true,
		AutoHide:         AutoHideDuration,
		Anchor:           Anchor{Vertical: AnchorTop, Horizontal: AnchorRight},
	}
}
