package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"waterdeck/internal/domain"
	"waterdeck/internal/monitors"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Rows          []*domain.Monitor
	Meta          domain.ListMeta
	SelectedIndex int
	SearchQuery   string
	Searching     bool   // the search field has focus
	Sort          monitors.Sort
	Sorting       bool // the sort menu is open
	Toolbar       string // rendered search field
	Toasts        string // rendered toast stack
	ToastsAtTop   bool
	DeleteTarget  string // name of the monitor awaiting confirmation
	HelpModel     help.Model
	KeyMap        help.KeyMap
	Now           time.Time
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	monitorRender *MonitorRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showSeverity, showModel bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		monitorRender: NewMonitorRenderer(styles, showSeverity, showModel),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	innerWidth := termWidth - r.styles.Main.GetHorizontalFrameSize()

	content := &strings.Builder{}

	if state.Toasts != "" && state.ToastsAtTop {
		content.WriteString(state.Toasts)
		content.WriteString("\n")
	}

	content.WriteString(r.renderTitle(state, innerWidth))
	content.WriteString("\n\n")

	content.WriteString(state.Toolbar)
	content.WriteString("\n")

	if state.Sorting {
		content.WriteString(r.renderSortMenu(state.Sort))
		content.WriteString("\n")
	}
	if state.DeleteTarget != "" {
		content.WriteString(r.styles.Confirm.Render(fmt.Sprintf("Delete monitor '%s'? (y/n): ", state.DeleteTarget)))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(r.renderTable(state))
	content.WriteString("\n\n")
	content.WriteString(r.renderFooter(state))

	// Help sits on the last line
	helpText := r.renderHelp(state, innerWidth)
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - r.styles.Main.GetVerticalFrameSize()
	if availableLines <= 0 {
		availableLines = 22
	}
	bottom := 1
	if state.Toasts != "" && !state.ToastsAtTop {
		bottom += lipgloss.Height(state.Toasts)
	}
	if paddingNeeded := availableLines - currentLines - bottom; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}

	if state.Toasts != "" && !state.ToastsAtTop {
		content.WriteString("\n")
		content.WriteString(state.Toasts)
	}
	content.WriteString("\n")
	content.WriteString(helpText)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitle draws the logo with the search indicator and counts aligned right
func (r *Renderer) renderTitle(state ViewState, width int) string {
	logo := r.styles.Title.Render("waterdeck")

	var right []string
	if state.SearchQuery != "" {
		right = append(right, r.styles.Search.Render(fmt.Sprintf("[Search: %s]", state.SearchQuery)))
	}
	if state.Sort.Field.Valid() {
		right = append(right, r.styles.Dim.Render("sorted by "+state.Sort.Label()))
	}
	right = append(right, r.styles.Dim.Render(countText(state.Meta, state.SearchQuery != "")))
	rightContent := strings.Join(right, "  ")

	paddingWidth := width - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return logo + strings.Repeat(" ", paddingWidth) + rightContent
}

func countText(meta domain.ListMeta, filtered bool) string {
	if filtered {
		return fmt.Sprintf("%d of %d monitors", meta.Matched, meta.Total)
	}
	if meta.Total == 1 {
		return "1 monitor"
	}
	return fmt.Sprintf("%d monitors", meta.Total)
}

// renderSortMenu lists the sort fields with the active one marked
func (r *Renderer) renderSortMenu(sort monitors.Sort) string {
	items := make([]string, 0, len(monitors.SortFields()))
	for _, f := range monitors.SortFields() {
		if f == sort.Field {
			items = append(items, r.styles.Highlight.Render("> "+sort.Label()))
			continue
		}
		items = append(items, r.styles.Dim.Render(f.Label()))
	}
	return "Sort: " + strings.Join(items, "  ")
}

// renderTable renders the header and the rows of the current page
func (r *Renderer) renderTable(state ViewState) string {
	if len(state.Rows) == 0 {
		if state.Meta.Total == 0 {
			return r.styles.Dim.Render("No monitors in the catalog.")
		}
		return r.styles.Dim.Render(fmt.Sprintf("No monitors match %q.", state.SearchQuery))
	}

	now := state.Now
	if now.IsZero() {
		now = time.Now()
	}

	lines := make([]string, 0, len(state.Rows)+1)
	lines = append(lines, r.monitorRender.RenderHeader())
	for i, m := range state.Rows {
		lines = append(lines, r.monitorRender.RenderMonitor(m, i == state.SelectedIndex, state.SearchQuery, now))
	}
	return strings.Join(lines, "\n")
}

// renderFooter shows which page is visible
func (r *Renderer) renderFooter(state ViewState) string {
	meta := state.Meta
	if meta.Matched == 0 {
		return r.styles.Footer.Render("Page 1 of 1")
	}
	first := (meta.Page-1)*meta.Limit + 1
	last := first + len(state.Rows) - 1
	return r.styles.Footer.Render(fmt.Sprintf("Page %d of %d · %d-%d of %d",
		meta.Page, meta.Pages(), first, last, meta.Matched))
}

// renderHelp renders the one-line key help for the current mode
func (r *Renderer) renderHelp(state ViewState, width int) string {
	if state.Searching {
		return r.styles.Help.Render("type to search • enter/esc done • ctrl+u clear")
	}
	if state.Sorting {
		return r.styles.Help.Render("←/→ choose • r reverse • enter done • esc cancel")
	}
	if state.DeleteTarget != "" {
		return r.styles.Help.Render("y confirm • n/esc cancel")
	}
	if state.KeyMap == nil {
		return r.styles.Help.Render("Press ? for help")
	}
	h := state.HelpModel
	h.Width = width
	return h.View(state.KeyMap)
}

// RenderHelpContent renders the full key reference shown in the help pager
func RenderHelpContent(keyMap help.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("waterdeck help"))
	b.WriteString("\n")

	sections := []string{"Navigation", "Paging, Search & Sort", "Monitors", "Other"}
	for i, group := range keyMap.FullHelp() {
		name := "Other"
		if i < len(sections) {
			name = sections[i]
		}
		b.WriteString(sectionStyle.Render(name))
		b.WriteString("\n")
		for _, binding := range group {
			writeBinding(&b, binding, keyStyle, descStyle)
		}
	}

	b.WriteString(sectionStyle.Render("Search field"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("enter/esc"), descStyle.Render("Leave the field, keep the text")))
	b.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("ctrl+u"), descStyle.Render("Clear the search")))
	b.WriteString(sectionStyle.Render("Sort menu"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("←/→ j/k"), descStyle.Render("Sort by the next field")))
	b.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("r"), descStyle.Render("Reverse the direction")))
	b.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("enter"), descStyle.Render("Keep the sort")))
	b.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("esc"), descStyle.Render("Go back to the previous sort")))
	b.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Search matches name, model, type and severity"))

	return b.String()
}

func writeBinding(b *strings.Builder, binding key.Binding, keyStyle, descStyle lipgloss.Style) {
	h := binding.Help()
	b.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(h.Key), descStyle.Render(h.Desc)))
}
