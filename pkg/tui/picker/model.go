// Package picker hosts the Bubble Tea program for the interactive emoji
// picker: a search input, collection tabs, and a keyboard-driven result
// list over the catalog selection state machine.
package picker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/owo/pkg/cache"
	"tableflip.dev/owo/pkg/catalog"
	"tableflip.dev/owo/pkg/loader"
	"tableflip.dev/owo/pkg/selection"
	"tableflip.dev/owo/pkg/tui/events"
	"tableflip.dev/owo/pkg/tui/theme"
)

// Queries shorter than two runes apply immediately; anything longer waits
// for the input to settle.
const debounceInterval = 50 * time.Millisecond

// Options configures the picker program.
type Options struct {
	ID     events.ComponentID
	Loader *loader.Loader
	URLs   []string
	Store  cache.Store

	// InitialCollection is the remembered tab to open on; "" falls back
	// to the first collection.
	InitialCollection string
	// RememberCollection persists the active tab for the next open. May
	// be nil.
	RememberCollection func(string)

	MultiSelect  bool
	ForceRefresh bool
}

type catalogLoadedMsg struct {
	result     loader.Result
	background bool
}

type debounceFiredMsg struct {
	gen int
}

type cacheChangedMsg struct {
	ok bool
}

// Model contains the picker UI state.
type Model struct {
	id     events.ComponentID
	ldr    *loader.Loader
	urls   []string
	store  cache.Store
	ctx    context.Context
	cancel context.CancelFunc

	state    *selection.State
	debounce selection.Debouncer
	input    textinput.Model
	theme    theme.Theme

	initialCollection string
	remember          func(string)
	startMulti        bool
	forceRefresh      bool

	width  int
	height int
	scroll int

	loading    bool
	refreshing bool
	failures   int
	picked     []catalog.Item
	watchCh    <-chan cache.Event
	quitting   bool
}

// New constructs the picker model.
func New(opts Options) *Model {
	id := opts.ID
	if id == "" {
		id = events.ComponentID("picker")
	}

	input := textinput.New()
	input.Placeholder = "type to search"
	input.Prompt = "/ "

	return &Model{
		id:                id,
		ldr:               opts.Loader,
		urls:              opts.URLs,
		store:             opts.Store,
		input:             input,
		theme:             theme.Default(),
		initialCollection: opts.InitialCollection,
		remember:          opts.RememberCollection,
		startMulti:        opts.MultiSelect,
		forceRefresh:      opts.ForceRefresh,
		loading:           true,
	}
}

// Run launches the Bubble Tea program and returns the final model so the
// caller can read the picked items.
func Run(opts Options) (*Model, error) {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	out, err := p.Run()
	if err != nil {
		return nil, err
	}
	final, ok := out.(*Model)
	if !ok {
		return m, nil
	}
	return final, nil
}

// Picked returns every item activated during the session, in pick order.
func (m *Model) Picked() []catalog.Item { return m.picked }

// State exposes the selection state machine (nil until the first load).
func (m *Model) State() *selection.State { return m.state }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.ctx, m.cancel = context.WithCancel(context.Background())

	cmds := []tea.Cmd{
		m.input.Focus(),
		m.loadCmd(m.forceRefresh, false),
	}
	if m.store != nil {
		if ch, err := m.store.Watch(m.ctx); err == nil {
			m.watchCh = ch
			cmds = append(cmds, waitForCacheEvent(ch))
		}
		// A failed watcher is silent: the picker works without it.
	}
	return tea.Batch(cmds...)
}

func (m *Model) loadCmd(force, background bool) tea.Cmd {
	ldr := m.ldr
	urls := m.urls
	ctx := m.ctx
	return func() tea.Msg {
		res := ldr.LoadAll(ctx, urls, force)
		return catalogLoadedMsg{result: res, background: background}
	}
}

func waitForCacheEvent(ch <-chan cache.Event) tea.Cmd {
	return func() tea.Msg {
		_, ok := <-ch
		return cacheChangedMsg{ok: ok}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.input.SetWidth(maxInt(10, v.Width-4))
		m.ensureVisible()
		return m, nil

	case catalogLoadedMsg:
		return m.handleLoaded(v)

	case debounceFiredMsg:
		if query, ok := m.debounce.Fire(v.gen); ok {
			return m, m.applyQuery(query)
		}
		return m, nil

	case cacheChangedMsg:
		if !v.ok {
			return m, nil
		}
		// Another process refreshed the cache: reload from it.
		cmds := []tea.Cmd{waitForCacheEvent(m.watchCh)}
		if m.state != nil && !m.loading && !m.refreshing {
			cmds = append(cmds, m.loadCmd(false, true))
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(v)
	}

	return m, nil
}

func (m *Model) handleLoaded(msg catalogLoadedMsg) (tea.Model, tea.Cmd) {
	res := msg.result
	m.failures = len(res.Failures)

	if msg.background {
		m.refreshing = false
		if len(res.Collections) == 0 {
			// A failed background refresh never clears cached results.
			if err := res.LastError(); err != nil {
				return m, events.CatalogLoadFailedCmd(m.id, err.Error(), true)
			}
			return m, nil
		}
		if m.state == nil {
			return m, nil
		}
		index := catalog.NewIndex(res.Collections)
		cmds := []tea.Cmd{events.CatalogLoadedCmd(m.id, index, false, len(res.Failures))}
		if m.state.SetCatalog(index) {
			m.scroll = 0
			cmds = append(cmds, events.FilteredChangedCmd(m.id, m.state.Filtered()))
		}
		return m, tea.Batch(cmds...)
	}

	m.loading = false
	var cmds []tea.Cmd

	if len(res.Collections) == 0 && len(res.Failures) > 0 {
		if m.state == nil {
			m.state = selection.NewState(catalog.NewIndex(nil), catalog.All)
		}
		m.state.SetUnavailable(res.LastError().Error())
		return m, events.CatalogLoadFailedCmd(m.id, res.LastError().Error(), false)
	}

	index := catalog.NewIndex(res.Collections)
	cmds = append(cmds, events.CatalogLoadedCmd(m.id, index, res.CacheHits > 0, len(res.Failures)))
	if m.state == nil {
		m.state = selection.NewState(index, m.initialCollection)
		if m.startMulti && !m.state.MultiSelect() {
			m.state.ToggleMultiSelect()
		}
	} else if m.state.SetCatalog(index) {
		m.scroll = 0
		cmds = append(cmds, events.FilteredChangedCmd(m.id, m.state.Filtered()))
	}

	// Cached data rendered first; fetch fresh copies behind it.
	if res.CacheHits > 0 && !m.forceRefresh {
		m.refreshing = true
		cmds = append(cmds, m.loadCmd(true, true))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case "enter":
		return m.activate()

	case "down", "ctrl+n":
		if m.state != nil && m.state.NavigateDown() {
			m.ensureVisible()
			return m, events.HighlightChangedCmd(m.id, m.state.Highlight())
		}
		return m, nil

	case "up", "ctrl+p":
		if m.state != nil && m.state.NavigateUp() {
			m.ensureVisible()
			return m, events.HighlightChangedCmd(m.id, m.state.Highlight())
		}
		return m, nil

	case "tab":
		return m.cycleTab(1)

	case "shift+tab":
		return m.cycleTab(-1)

	case "ctrl+t":
		if m.state != nil {
			m.state.ToggleMultiSelect()
		}
		return m, nil

	case "ctrl+r":
		if m.state == nil || m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, m.loadCmd(true, true)
	}

	// Everything else feeds the search input.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	value := m.input.Value()
	trimmed := strings.TrimSpace(value)
	switch {
	case trimmed == "" || len([]rune(trimmed)) == 1:
		// Clearing and first keystrokes respond immediately.
		m.debounce.Cancel()
		return m, tea.Batch(cmd, m.applyQuery(value))
	default:
		gen := m.debounce.Arm(value)
		return m, tea.Batch(cmd, tea.Tick(debounceInterval, func(time.Time) tea.Msg {
			return debounceFiredMsg{gen: gen}
		}))
	}
}

func (m *Model) applyQuery(query string) tea.Cmd {
	if m.state == nil {
		return nil
	}
	if m.state.SubmitQuery(query) {
		m.scroll = 0
		return events.FilteredChangedCmd(m.id, m.state.Filtered())
	}
	return nil
}

func (m *Model) cycleTab(delta int) (tea.Model, tea.Cmd) {
	if m.state == nil {
		return m, nil
	}
	changed := m.state.CycleCollection(delta)
	m.input.SetValue("")
	m.debounce.Cancel()
	if m.remember != nil {
		m.remember(m.state.ActiveCollection())
	}
	if changed {
		m.scroll = 0
		return m, events.FilteredChangedCmd(m.id, m.state.Filtered())
	}
	return m, nil
}

func (m *Model) activate() (tea.Model, tea.Cmd) {
	if m.state == nil {
		return m, nil
	}
	item, ok := m.state.Activate()
	if !ok {
		return m, nil
	}
	m.picked = append(m.picked, item)
	multi := m.state.MultiSelect()
	if m.remember != nil {
		m.remember(m.state.ActiveCollection())
	}
	if !multi {
		m.quitting = true
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Batch(events.ItemActivatedCmd(m.id, item, multi), tea.Quit)
	}
	return m, events.ItemActivatedCmd(m.id, item, multi)
}

func (m *Model) listHeight() int {
	// Tabs, input, and footer each take a line, plus one spacer.
	h := m.height - 4
	if h < 1 {
		h = 10
	}
	return h
}

func (m *Model) ensureVisible() {
	if m.state == nil {
		return
	}
	hl := m.state.Highlight()
	if hl < 0 {
		m.scroll = 0
		return
	}
	visible := m.listHeight()
	if hl < m.scroll {
		m.scroll = hl
	} else if hl >= m.scroll+visible {
		m.scroll = hl - visible + 1
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(m.viewTabs(width))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.viewList(width))
	b.WriteString("\n")
	b.WriteString(m.viewFooter(width))
	return b.String()
}

func (m *Model) viewTabs(width int) string {
	if m.state == nil {
		return m.theme.Tabs.Tab.Render("…")
	}
	idx := m.state.Index()
	active := m.state.ActiveCollection()

	parts := make([]string, 0, len(idx.Collections())+1)
	for _, col := range idx.Collections() {
		parts = append(parts, m.renderTab(col.Name, len(col.Items), col.Name == active))
	}
	parts = append(parts, m.renderTab(catalog.All, idx.Len(), active == catalog.All))

	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return truncate.String(row, uint(width))
}

func (m *Model) renderTab(name string, count int, active bool) string {
	label := fmt.Sprintf("%s %s", name, m.theme.Tabs.Count.Render(fmt.Sprintf("(%d)", count)))
	if active {
		return m.theme.Tabs.ActiveTab.Render(label)
	}
	return m.theme.Tabs.Tab.Render(label)
}

func (m *Model) viewList(width int) string {
	height := m.listHeight()
	lines := make([]string, 0, height)

	switch {
	case m.loading:
		lines = append(lines, m.theme.List.Empty.Render("loading emoji collections…"))

	case len(m.urls) == 0:
		lines = append(lines, m.theme.List.Empty.Render("no catalog sources configured"))
		lines = append(lines, m.theme.List.Empty.Render("add OWO JSON urls to your .owo config"))

	case m.state != nil && m.state.Err() != "":
		lines = append(lines, m.theme.List.Error.Render("failed to load collections"))
		lines = append(lines, m.theme.List.Error.Render(m.state.Err()))

	case m.state != nil && len(m.state.Filtered()) == 0:
		if q := m.state.Query(); q != "" {
			lines = append(lines, m.theme.List.Empty.Render(fmt.Sprintf("no matches for %q", q)))
		} else {
			lines = append(lines, m.theme.List.Empty.Render("nothing here"))
		}

	case m.state != nil:
		items := m.state.Filtered()
		hl := m.state.Highlight()
		showCategory := m.state.ActiveCollection() == catalog.All || m.state.Query() != ""

		end := m.scroll + height
		if end > len(items) {
			end = len(items)
		}
		for i := m.scroll; i < end; i++ {
			lines = append(lines, m.renderRow(items[i], i == hl, showCategory, width))
		}
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(item catalog.Item, highlighted, showCategory bool, width int) string {
	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(m.theme.List.Icon.Render(item.Icon))
	b.WriteString("  ")
	b.WriteString(item.Text)
	if showCategory {
		b.WriteString("  ")
		b.WriteString(m.theme.List.URL.Render(item.Category))
	}
	if item.Type == catalog.TypeImage && item.URL != item.Icon {
		b.WriteString("  ")
		b.WriteString(m.theme.List.URL.Render(item.URL))
	}
	row := truncate.String(b.String(), uint(width))
	if highlighted {
		return m.theme.List.Highlighted.Render(row)
	}
	return m.theme.List.Row.Render(row)
}

func (m *Model) viewFooter(width int) string {
	var parts []string
	if m.state != nil {
		parts = append(parts, m.theme.Footer.Status.Render(fmt.Sprintf("%d items", len(m.state.Filtered()))))
		if m.state.MultiSelect() {
			parts = append(parts, m.theme.Footer.Multi.Render(fmt.Sprintf("multi (%d picked)", len(m.picked))))
		}
	}
	if m.refreshing {
		parts = append(parts, m.theme.Footer.Status.Render("refreshing…"))
	}
	if m.failures > 0 {
		parts = append(parts, m.theme.Footer.Status.Render(fmt.Sprintf("%d source(s) failed", m.failures)))
	}
	parts = append(parts, m.theme.Footer.Help.Render("↑/↓ move · enter pick · tab collections · ctrl+t multi · ctrl+r refresh · esc quit"))
	return truncate.String(strings.Join(parts, "  "), uint(width))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
