package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterdeck/internal/domain"
	"waterdeck/internal/monitors"
)

func seedStore(n int) *monitors.MemoryStore {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	list := make([]*domain.Monitor, 0, n)
	for i := 0; i < n; i++ {
		list = append(list, &domain.Monitor{
			ID:        uuid.New(),
			Name:      fmt.Sprintf("monitor-%02d", i),
			Type:      domain.MonitorDrift,
			Severity:  domain.SeverityLow,
			ModelName: "churn",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return monitors.NewMemoryStore(list)
}

func TestRefreshFillsFirstPage(t *testing.T) {
	store := seedStore(12)
	s := NewAppState("", 5)

	s.Refresh(store)

	require.Len(t, s.Rows, 5)
	assert.Equal(t, "monitor-11", s.Rows[0].Name, "newest first")
	assert.Equal(t, 3, s.Meta.Pages())
	assert.Equal(t, 12, s.Meta.Total)
}

func TestSetSearchResetsPageAndSelection(t *testing.T) {
	store := seedStore(12)
	s := NewAppState("", 5)
	s.Refresh(store)
	require.True(t, s.NextPage(store))
	s.MoveSelection(2)

	s.SetSearch("monitor-0", store)

	assert.Equal(t, 1, s.Query.Page)
	assert.Equal(t, 0, s.SelectedIndex)
	assert.Equal(t, 10, s.Meta.Matched)
}

func TestPaging(t *testing.T) {
	store := seedStore(12)
	s := NewAppState("", 5)
	s.Refresh(store)

	assert.False(t, s.PrevPage(store))
	assert.True(t, s.NextPage(store))
	assert.True(t, s.NextPage(store))
	assert.False(t, s.NextPage(store), "already on the last page")
	assert.Equal(t, 3, s.Query.Page)
	assert.Len(t, s.Rows, 2)
	assert.True(t, s.PrevPage(store))
	assert.Equal(t, 2, s.Query.Page)
}

func TestSelectionClamps(t *testing.T) {
	store := seedStore(3)
	s := NewAppState("", 10)
	s.Refresh(store)

	s.MoveSelection(10)
	assert.Equal(t, 2, s.SelectedIndex)
	s.MoveSelection(-10)
	assert.Equal(t, 0, s.SelectedIndex)

	s.SelectLast()
	assert.Equal(t, "monitor-00", s.Selected().Name)
	s.SelectFirst()
	assert.Equal(t, "monitor-02", s.Selected().Name)
}

func TestRefreshAfterDeleteKeepsSelectionInRange(t *testing.T) {
	store := seedStore(3)
	s := NewAppState("", 10)
	s.Refresh(store)
	s.SelectLast()

	_, err := store.Delete(s.Selected().ID)
	require.NoError(t, err)
	s.Refresh(store)

	assert.Equal(t, 1, s.SelectedIndex)
	require.NotNil(t, s.Selected())
}

func TestEmptyPageHasNoSelection(t *testing.T) {
	s := NewAppState("nothing matches this", 10)
	s.Refresh(seedStore(3))

	assert.Empty(t, s.Rows)
	assert.Nil(t, s.Selected())
	assert.Equal(t, 1, s.Meta.Pages())
}

func TestSetSortReordersFromFirstPage(t *testing.T) {
	store := seedStore(12)
	s := NewAppState("", 5)
	s.Refresh(store)
	require.True(t, s.NextPage(store))
	s.MoveSelection(3)

	s.SetSort(monitors.ByField(monitors.SortName), store)

	assert.Equal(t, 1, s.Query.Page)
	assert.Equal(t, 0, s.SelectedIndex)
	require.Len(t, s.Rows, 5)
	assert.Equal(t, "monitor-00", s.Rows[0].Name)
	assert.Equal(t, "monitor-04", s.Rows[4].Name)

	s.SetSort(monitors.ByField(monitors.SortName).Reversed(), store)
	assert.Equal(t, "monitor-11", s.Rows[0].Name)
}

func TestNewAppStateStartsWithDefaultSort(t *testing.T) {
	s := NewAppState("", 5)
	assert.Equal(t, monitors.DefaultSort(), s.Query.Sort)
}
