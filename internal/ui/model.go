package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"waterdeck/internal/config"
	"waterdeck/internal/eventbus"
	"waterdeck/internal/monitors"
	"waterdeck/internal/ui/commands"
	"waterdeck/internal/ui/handlers"
	"waterdeck/internal/ui/input"
	inputtypes "waterdeck/internal/ui/input/types"
	"waterdeck/internal/ui/notify"
	"waterdeck/internal/ui/search"
	"waterdeck/internal/ui/state"
	"waterdeck/internal/ui/toast"
	"waterdeck/internal/ui/views"
)

// maxToolbarWidth keeps the search field from spanning very wide terminals
const maxToolbarWidth = 60

// Model is the monitor list page
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService
	state     *state.AppState
	store     monitors.Store

	help help.Model
	now  func() time.Time

	toolbar      *search.Toolbar
	toasts       *toast.Stack
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
}

// NewModel creates the list page over store. reloader may be nil when there is no catalog file.
func NewModel(cfg *config.Config, configSvc config.ConfigService, store monitors.Store, bus eventbus.EventBus, reloader commands.Reloader) *Model {
	appState := state.NewAppState(cfg.UISettings.InitialQuery, cfg.UISettings.PageSize)
	appState.Refresh(store)

	m := &Model{
		bus:          bus,
		config:       cfg,
		configSvc:    configSvc,
		state:        appState,
		store:        store,
		help:         help.New(),
		now:          time.Now,
		toasts:       toast.NewStack(notify.DefaultPolicy()),
		renderer:     views.NewRenderer(cfg.UISettings.ShowSeverity, cfg.UISettings.ShowModel),
		eventHandler: handlers.NewEventHandler(appState, store),
		cmdExecutor:  commands.NewExecutor(appState, store, bus, reloader),
		inputHandler: input.New(),
	}

	// Every change of the search text lands here, including the initial value at mount
	m.toolbar = search.NewToolbar(cfg.UISettings.InitialQuery, func(query string) {
		m.state.SetSearch(query, m.store)
	})

	return m
}

// Init mounts the search field
func (m *Model) Init() tea.Cmd {
	return m.toolbar.Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		width := msg.Width - 4
		if width > maxToolbarWidth {
			width = maxToolbarWidth
		}
		m.toolbar.SetWidth(width)
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{State: m.state}
		actions := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case notify.NotifyMsg, toast.ExpireMsg:
		return m, m.toasts.Update(msg)

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case pagerClosedMsg:
		m.state.InPagerMode = false
		if msg.err != nil {
			log.Printf("Pager for %s failed: %v", msg.title, msg.err)
			return m, notify.NotifyCmd(notify.Error, fmt.Sprintf("Could not open %s", msg.title))
		}
		return m, nil

	case configSavedMsg:
		if msg.err != nil {
			log.Printf("Saving config failed: %v", msg.err)
			return m, notify.NotifyCmd(notify.Error, fmt.Sprintf("Could not save settings: %v", msg.err))
		}
		if msg.query == "" {
			return m, notify.NotifyCmd(notify.Success, "Default search cleared")
		}
		return m, notify.NotifyCmd(notify.Success, fmt.Sprintf("Default search set to %q", msg.query))

	default:
		// Cursor blink and other field messages
		if m.toolbar.Focused() {
			return m, m.toolbar.Update(msg)
		}
		return m, nil
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.state.MoveSelection(-1)
		case "down":
			m.state.MoveSelection(1)
		case "home":
			m.state.SelectFirst()
		case "end":
			m.state.SelectLast()
		}

	case inputtypes.PageAction:
		switch a.Direction {
		case "next":
			m.state.NextPage(m.store)
		case "prev":
			m.state.PrevPage(m.store)
		}

	case inputtypes.ChangeModeAction:
		if a.Mode == inputtypes.ModeSearch {
			return m.toolbar.Focus()
		}
		m.toolbar.Blur()

	case inputtypes.EditTextAction:
		return m.toolbar.Update(a.Key)

	case inputtypes.ClearTextAction:
		m.toolbar.Clear()

	case inputtypes.RequestDeleteAction:
		m.state.DeleteTarget = m.state.Selected()

	case inputtypes.ConfirmDeleteAction:
		target := m.state.DeleteTarget
		m.state.DeleteTarget = nil
		return m.cmdExecutor.ExecuteDelete(target)

	case inputtypes.CancelDeleteAction:
		m.state.DeleteTarget = nil

	case inputtypes.SortByAction:
		m.state.SetSort(a.Sort, m.store)

	case inputtypes.DismissToastsAction:
		m.toasts.DismissAll()

	case inputtypes.ReloadAction:
		return m.cmdExecutor.ExecuteReload()

	case inputtypes.SaveSearchAction:
		return m.saveSearch(m.state.Query.Search)

	case inputtypes.OpenDetailAction:
		if sel := m.state.Selected(); sel != nil {
			m.state.InPagerMode = true
			return openPager(sel.Name, views.RenderMonitorDetail(sel, m.now()))
		}

	case inputtypes.ToggleHelpAction:
		m.state.InPagerMode = true
		return openPager("help", views.RenderHelpContent(m.inputHandler.KeyMap()))

	case inputtypes.QuitAction:
		m.toolbar.Unmount()
		return tea.Quit
	}

	return nil
}

// saveSearch stores query as the search the dashboard opens with
func (m *Model) saveSearch(query string) tea.Cmd {
	if m.configSvc == nil {
		return nil
	}
	cfg := *m.config
	cfg.UISettings.InitialQuery = query
	svc := m.configSvc
	return func() tea.Msg {
		err := svc.Save(&cfg)
		return configSavedMsg{query: query, err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Loading..."
	}

	deleteTarget := ""
	if m.state.DeleteTarget != nil {
		deleteTarget = m.state.DeleteTarget.Name
	}

	return m.renderer.Render(views.ViewState{
		Width:         m.state.Width,
		Height:        m.state.Height,
		Rows:          m.state.Rows,
		Meta:          m.state.Meta,
		SelectedIndex: m.state.SelectedIndex,
		SearchQuery:   m.toolbar.Value(),
		Searching:     m.inputHandler.CurrentMode() == inputtypes.ModeSearch,
		Sort:          m.state.Query.Sort,
		Sorting:       m.inputHandler.CurrentMode() == inputtypes.ModeSortSelect,
		Toolbar:       m.toolbar.View(),
		Toasts:        m.toasts.View(m.state.Width - 4),
		ToastsAtTop:   m.toasts.Policy().Anchor.Vertical == notify.AnchorTop,
		DeleteTarget:  deleteTarget,
		HelpModel:     m.help,
		KeyMap:        m.inputHandler.KeyMap(),
		Now:           m.now(),
	})
}
