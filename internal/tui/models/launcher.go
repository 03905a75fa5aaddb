// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/canaveral-launcher/canaveral/internal/application"
	"github.com/canaveral-launcher/canaveral/internal/config"
	"github.com/canaveral-launcher/canaveral/internal/domain"
	"github.com/canaveral-launcher/canaveral/internal/grid"
	"github.com/canaveral-launcher/canaveral/internal/tui/styles"
)

// CatalogSource runs discovery and returns the newest catalog.
type CatalogSource interface {
	Refresh(ctx context.Context) application.Snapshot
}

// AppStarter initiates application launches.
type AppStarter interface {
	Launch(ctx context.Context, entry domain.CatalogEntry) error
	// Settle waits out the grace delay before the launcher exits.
	Settle(ctx context.Context)
}

// ReloadFunc re-reads the preferences and reconfigures discovery with them.
type ReloadFunc func(ctx context.Context) (config.Config, error)

// LauncherOptions configures a Launcher.
type LauncherOptions struct {
	Config  config.Config
	Catalog CatalogSource
	Apps    AppStarter
	Reload  ReloadFunc
	Logger  *slog.Logger
	// Now is the clock used for scroll gestures. Defaults to time.Now.
	Now func() time.Time
}

// wheelStep is the scroll distance credited for one horizontal wheel
// notch; three notches page once.
const wheelStep = grid.SwipeThreshold / 3

type point struct {
	X, Y int
}

// Launcher is the full-screen application grid: a search box, the paged
// grid of applications and the page indicator.
//
//nolint:containedctx // Bubble Tea commands run outside Update and need the program context
type Launcher struct {
	ctx     context.Context
	styles  *styles.Styles
	keyMap  KeyMap
	search  textinput.Model
	spinner spinner.Model
	swipe   *grid.SwipeTracker
	now     func() time.Time
	logger  *slog.Logger

	source CatalogSource
	apps   AppStarter
	reload ReloadFunc
	cfg    config.Config

	width  int
	height int
	layout grid.LayoutContext

	catalog    *domain.Catalog
	generation uint64
	filtered   []domain.CatalogEntry
	selection  grid.Selection

	press     *point
	launching bool
	status    string
	quitting  bool
}

// NewLauncher creates the launcher model. Discovery starts with Init.
func NewLauncher(ctx context.Context, styleConfig *styles.Styles, opts LauncherOptions) *Launcher {
	search := textinput.New()
	search.Placeholder = "Search applications"
	search.Prompt = "⌕ "
	search.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styleConfig.AccentText

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	model := &Launcher{
		ctx:     ctx,
		styles:  styleConfig,
		keyMap:  DefaultKeyMap(),
		search:  search,
		spinner: spin,
		swipe:   grid.NewSwipeTracker(grid.SwipeThreshold, grid.SwipeIdle),
		now:     now,
		logger:  logger,
		source:  opts.Catalog,
		apps:    opts.Apps,
		reload:  opts.Reload,
		cfg:     opts.Config.Normalize(),
		width:   defaultWidth,
		height:  defaultHeight,
	}

	model.relayout()

	return model
}

// Init starts the first discovery pass.
func (m *Launcher) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.refresh())
}

// Update handles messages and returns updated model and commands.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m *Launcher) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()

		return m, nil

	case CatalogLoadedMsg:
		m.applySnapshot(msg.Snapshot)

		return m, nil

	case PreferencesChangedMsg:
		return m, m.reloadPreferences()

	case PreferencesAppliedMsg:
		return m, m.applyPreferences(msg)

	case LaunchFinishedMsg:
		return m, m.finishLaunch(msg)

	case spinner.TickMsg:
		if !m.Loading() {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	var cmd tea.Cmd

	m.search, cmd = m.search.Update(msg)

	return m, cmd
}

// Loading reports whether the first discovery pass is still running.
func (m *Launcher) Loading() bool {
	return m.catalog == nil
}

// Query returns the current search text.
func (m *Launcher) Query() string {
	return m.selection.Query
}

// Selection returns the navigation state.
func (m *Launcher) Selection() grid.Selection {
	return m.selection
}

// Layout returns the grid geometry in use.
func (m *Launcher) Layout() grid.LayoutContext {
	return m.layout
}

// Generation returns the generation of the catalog on screen.
func (m *Launcher) Generation() uint64 {
	return m.generation
}

// Visible returns the entries of the visible list: the current page when
// browsing, every match when searching.
func (m *Launcher) Visible() []domain.CatalogEntry {
	p := m.pagination()

	return grid.PageSlice(m.filtered, p, m.selection.Page)
}

// Selected returns the selected entry, if the visible list is not empty.
func (m *Launcher) Selected() (domain.CatalogEntry, bool) {
	visible := m.Visible()
	if m.selection.Index >= len(visible) {
		return domain.CatalogEntry{}, false
	}

	return visible[m.selection.Index], true
}

// Status returns the transient status line, such as a launch failure.
func (m *Launcher) Status() string {
	return m.status
}

// Quitting reports whether the launcher asked the program to exit.
func (m *Launcher) Quitting() bool {
	return m.quitting
}

func (m *Launcher) pagination() grid.Pagination {
	return grid.NewPagination(len(m.filtered), m.layout, m.selection.Searching())
}

func (m *Launcher) relayout() {
	m.layout = grid.FitLayout(m.width, m.height, geometry(m.cfg.Appearance))
	m.search.Width = max(1, m.width-searchChrome)
	m.selection = m.pagination().Clamp(m.selection)
}

func (m *Launcher) refresh() tea.Cmd {
	if m.source == nil {
		return nil
	}

	ctx, source := m.ctx, m.source

	return func() tea.Msg {
		return CatalogLoadedMsg{Snapshot: source.Refresh(ctx)}
	}
}

// applySnapshot shows snap unless an equal or newer catalog is already on
// screen. The query is kept and the selection clamped to the new list.
func (m *Launcher) applySnapshot(snap application.Snapshot) {
	if snap.Catalog == nil || (m.catalog != nil && snap.Generation <= m.generation) {
		m.logger.Debug("ignoring stale catalog", "generation", snap.Generation, "shown", m.generation)

		return
	}

	m.catalog = snap.Catalog
	m.generation = snap.Generation
	m.filtered = m.catalog.Filter(m.selection.Query)
	m.selection = m.pagination().Clamp(m.selection)
}

func (m *Launcher) reloadPreferences() tea.Cmd {
	if m.reload == nil {
		return m.refresh()
	}

	ctx, reload, source := m.ctx, m.reload, m.source

	return func() tea.Msg {
		cfg, err := reload(ctx)
		if err != nil {
			return PreferencesAppliedMsg{Err: err}
		}

		msg := PreferencesAppliedMsg{Config: cfg}
		if source != nil {
			msg.Snapshot = source.Refresh(ctx)
		}

		return msg
	}
}

func (m *Launcher) applyPreferences(msg PreferencesAppliedMsg) tea.Cmd {
	if msg.Err != nil {
		m.logger.Warn("keeping previous preferences", "error", msg.Err)
		m.status = "Preferences not reloaded: " + msg.Err.Error()

		return nil
	}

	m.cfg = msg.Config.Normalize()
	m.relayout()
	m.applySnapshot(msg.Snapshot)

	return nil
}

func (m *Launcher) handleKey(msg tea.KeyMsg) tea.Cmd {
	if event, ok := m.keyMap.Event(msg); ok {
		return m.dispatch(event)
	}

	previous := m.search.Value()

	var cmd tea.Cmd

	m.search, cmd = m.search.Update(msg)

	if query := m.search.Value(); query != previous {
		return tea.Batch(cmd, m.dispatch(grid.Event{Kind: grid.SearchTextChanged, Query: query}))
	}

	return cmd
}

// dispatch runs event through the navigation reducer and performs the
// requested effect.
func (m *Launcher) dispatch(event grid.Event) tea.Cmd {
	return m.apply(grid.Reduce(m.selection, event, m.pagination()))
}

func (m *Launcher) apply(transition grid.Transition) tea.Cmd {
	queryChanged := transition.State.Query != m.selection.Query
	m.selection = transition.State

	if queryChanged {
		m.filtered = m.catalog.Filter(m.selection.Query)
		m.selection = m.pagination().Clamp(m.selection)
		m.status = ""
	}

	switch transition.Effect {
	case grid.EffectQuit:
		m.quitting = true

		return tea.Quit

	case grid.EffectLaunch:
		if transition.Launch < 0 || transition.Launch >= len(m.filtered) {
			return nil
		}

		return m.launch(m.filtered[transition.Launch])

	default:
		return nil
	}
}

func (m *Launcher) launch(entry domain.CatalogEntry) tea.Cmd {
	if m.launching || m.apps == nil {
		return nil
	}

	m.launching = true
	m.status = "Launching " + entry.DisplayName + "…"

	ctx, apps, settle := m.ctx, m.apps, m.cfg.Launch.ExitAfterLaunch

	return func() tea.Msg {
		err := apps.Launch(ctx, entry)
		if err == nil && settle {
			apps.Settle(ctx)
		}

		return LaunchFinishedMsg{Entry: entry, Err: err}
	}
}

func (m *Launcher) finishLaunch(msg LaunchFinishedMsg) tea.Cmd {
	m.launching = false

	if msg.Err != nil {
		m.status = fmt.Sprintf("Could not launch %s", msg.Entry.DisplayName)

		return nil
	}

	if m.cfg.Launch.ExitAfterLaunch {
		m.quitting = true

		return tea.Quit
	}

	m.status = ""
	m.search.SetValue("")

	return m.dispatch(grid.Event{Kind: grid.SearchTextChanged})
}

func (m *Launcher) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelRight,
		msg.Shift && msg.Button == tea.MouseButtonWheelDown:
		return m.scroll(-wheelStep)

	case msg.Button == tea.MouseButtonWheelLeft,
		msg.Shift && msg.Button == tea.MouseButtonWheelUp:
		return m.scroll(wheelStep)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.press = &point{X: msg.X, Y: msg.Y}

		return nil

	case msg.Action == tea.MouseActionRelease:
		return m.release(point{X: msg.X, Y: msg.Y})

	default:
		return nil
	}
}

func (m *Launcher) scroll(dx float64) tea.Cmd {
	event, ok := m.swipe.Add(dx, 0, m.now())
	if !ok {
		return nil
	}

	return m.dispatch(event)
}

// release ends a press: a long horizontal drag pages, a press and release
// on the same spot clicks.
func (m *Launcher) release(at point) tea.Cmd {
	if m.press == nil {
		return nil
	}

	start := *m.press
	m.press = nil

	if event, ok := grid.DragSwipe(float64(at.X-start.X), float64(at.Y-start.Y), grid.DragThreshold); ok {
		return m.dispatch(event)
	}

	if at != start {
		return nil
	}

	return m.click(at)
}

func (m *Launcher) click(at point) tea.Cmd {
	scr := m.screen()

	switch scr.hitArrow(at, m.pagination(), m.selection) {
	case arrowPrevious:
		return m.dispatch(grid.Event{Kind: grid.MoveLeft, PageModifier: true})
	case arrowNext:
		return m.dispatch(grid.Event{Kind: grid.MoveRight, PageModifier: true})
	}

	index, ok := scr.cellIndex(at, m.selection, m.pagination())
	if !ok {
		return nil
	}

	state := m.selection
	state.Index = index

	return m.apply(grid.Reduce(state, grid.Event{Kind: grid.Confirm}, m.pagination()))
}
