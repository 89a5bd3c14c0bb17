package input

import (
	"waterdeck/internal/monitors"
	"waterdeck/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of rows on the current page
func (c *ModelContext) TotalItems() int {
	return len(c.State.Rows)
}

// CurrentMonitorName returns the name of the monitor under the cursor, or ""
func (c *ModelContext) CurrentMonitorName() string {
	if m := c.State.Selected(); m != nil {
		return m.Name
	}
	return ""
}

func (c *ModelContext) Page() int {
	return c.State.Meta.Page
}

func (c *ModelContext) Pages() int {
	return c.State.Meta.Pages()
}

func (c *ModelContext) SearchQuery() string {
	return c.State.Query.Search
}

func (c *ModelContext) CurrentSort() monitors.Sort {
	return c.State.Query.Sort
}
