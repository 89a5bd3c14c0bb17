package state

import (
	"waterdeck/internal/domain"
	"waterdeck/internal/monitors"
)

// AppState contains all the application state
type AppState struct {
	// Listing
	Query monitors.Query    // search term and page currently shown
	Rows  []*domain.Monitor // monitors on the current page
	Meta  domain.ListMeta   // paging info for Rows

	// Selection state
	SelectedIndex int // row within the current page

	// Pending confirmation
	DeleteTarget *domain.Monitor // monitor awaiting delete confirmation

	// UI state
	Width       int
	Height      int
	InPagerMode bool // an external pager owns the terminal
}

// NewAppState creates a new application state
func NewAppState(initialQuery string, pageSize int) *AppState {
	return &AppState{
		Query: monitors.Query{Search: initialQuery, Page: 1, Limit: pageSize, Sort: monitors.DefaultSort()},
	}
}

// Refresh re-runs the current query against the store and keeps the selection in range
func (s *AppState) Refresh(store monitors.Store) {
	s.Rows, s.Meta = monitors.List(store, s.Query)
	// List clamps the page; remember where we actually are
	s.Query.Page = s.Meta.Page
	s.clampSelection()
}

// SetSearch changes the search term and goes back to the first page
func (s *AppState) SetSearch(term string, store monitors.Store) {
	s.Query.Search = term
	s.Query.Page = 1
	s.SelectedIndex = 0
	s.Refresh(store)
}

// SetSort changes the ordering and goes back to the first page
func (s *AppState) SetSort(sort monitors.Sort, store monitors.Store) {
	s.Query.Sort = sort
	s.Query.Page = 1
	s.SelectedIndex = 0
	s.Refresh(store)
}

// NextPage moves to the following page, reporting whether it moved
func (s *AppState) NextPage(store monitors.Store) bool {
	if s.Query.Page >= s.Meta.Pages() {
		return false
	}
	s.Query.Page++
	s.SelectedIndex = 0
	s.Refresh(store)
	return true
}

// PrevPage moves to the preceding page, reporting whether it moved
func (s *AppState) PrevPage(store monitors.Store) bool {
	if s.Query.Page <= 1 {
		return false
	}
	s.Query.Page--
	s.SelectedIndex = 0
	s.Refresh(store)
	return true
}

// MoveSelection moves the cursor by delta rows within the page
func (s *AppState) MoveSelection(delta int) {
	s.SelectedIndex += delta
	s.clampSelection()
}

// SelectFirst moves the cursor to the top of the page
func (s *AppState) SelectFirst() {
	s.SelectedIndex = 0
}

// SelectLast moves the cursor to the bottom of the page
func (s *AppState) SelectLast() {
	s.SelectedIndex = len(s.Rows) - 1
	s.clampSelection()
}

// Selected returns the monitor under the cursor, or nil when the page is empty
func (s *AppState) Selected() *domain.Monitor {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Rows) {
		return nil
	}
	return s.Rows[s.SelectedIndex]
}

func (s *AppState) clampSelection() {
	if s.SelectedIndex >= len(s.Rows) {
		s.SelectedIndex = len(s.Rows) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}
