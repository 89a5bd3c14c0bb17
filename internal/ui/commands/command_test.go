package commands

import (
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterdeck/internal/domain"
	"waterdeck/internal/eventbus"
	"waterdeck/internal/monitors"
	"waterdeck/internal/ui/notify"
	"waterdeck/internal/ui/state"
)

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() { return func() {} }
func (b *recordingBus) Close() {}

type fakeReloader struct {
	count int
	err   error
	calls int
}

func (r *fakeReloader) Reload() (int, error) {
	r.calls++
	return r.count, r.err
}

func setup(t *testing.T) (*Executor, *state.AppState, *monitors.MemoryStore, *recordingBus, *fakeReloader) {
	t.Helper()
	store := monitors.NewMemoryStore([]*domain.Monitor{
		{ID: uuid.New(), Name: "accuracy", Type: domain.MonitorPerformance, Severity: domain.SeverityHigh, CreatedAt: time.Now()},
		{ID: uuid.New(), Name: "nulls", Type: domain.MonitorDataQuality, Severity: domain.SeverityLow, CreatedAt: time.Now().Add(-time.Hour)},
	})
	st := state.NewAppState("", 10)
	st.Refresh(store)
	bus := &recordingBus{}
	reloader := &fakeReloader{count: 2}
	return NewExecutor(st, store, bus, reloader), st, store, bus, reloader
}

func TestDeleteRemovesMonitorAndAnnounces(t *testing.T) {
	exec, st, store, bus, _ := setup(t)
	target := st.Selected()
	require.Equal(t, "accuracy", target.Name)

	cmd := exec.ExecuteDelete(target)

	require.NotNil(t, cmd)
	assert.Equal(t, notify.NotifyMsg{Variant: notify.Success, Message: "Monitor 'accuracy' deleted"}, cmd())
	assert.Equal(t, 1, store.Count())
	require.Len(t, st.Rows, 1)
	assert.Equal(t, "nulls", st.Rows[0].Name)
	require.Len(t, bus.events, 1)
	assert.Equal(t, eventbus.MonitorDeletedEvent{ID: target.ID, Name: "accuracy"}, bus.events[0])
}

func TestDeleteMissingMonitorShowsError(t *testing.T) {
	exec, _, store, bus, _ := setup(t)
	ghost := &domain.Monitor{ID: uuid.New(), Name: "ghost"}

	msg := exec.ExecuteDelete(ghost)().(notify.NotifyMsg)

	assert.Equal(t, notify.Error, msg.Variant)
	assert.Contains(t, msg.Message, "Could not delete 'ghost'")
	assert.Equal(t, 2, store.Count())
	assert.Empty(t, bus.events)
}

func TestDeleteNil(t *testing.T) {
	exec, _, _, _, _ := setup(t)
	assert.Nil(t, exec.ExecuteDelete(nil))
}

func TestReload(t *testing.T) {
	exec, _, _, _, reloader := setup(t)

	msg := exec.ExecuteReload()().(notify.NotifyMsg)

	assert.Equal(t, 1, reloader.calls)
	assert.Equal(t, notify.NotifyMsg{Variant: notify.Info, Message: "Reloaded 2 monitors"}, msg)
}

func TestReloadFailure(t *testing.T) {
	exec, st, _, _, reloader := setup(t)
	reloader.err = errors.New("bad toml")

	msg := exec.ExecuteReload()().(notify.NotifyMsg)

	assert.Equal(t, notify.Error, msg.Variant)
	assert.Equal(t, "Reload failed: bad toml", msg.Message)
	assert.Len(t, st.Rows, 2, "list unchanged")
}

func TestReloadWithoutCatalog(t *testing.T) {
	st := state.NewAppState("", 10)
	exec := NewExecutor(st, monitors.NewMemoryStore(nil), nil, nil)

	msg := exec.ExecuteReload()().(notify.NotifyMsg)

	assert.Equal(t, notify.Warning, msg.Variant)
}
