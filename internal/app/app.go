// Package app contains the root application model.
package app

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/twig/internal/config"
	"github.com/zjrosen/twig/internal/git"
	"github.com/zjrosen/twig/internal/keys"
	"github.com/zjrosen/twig/internal/log"
	"github.com/zjrosen/twig/internal/mode"
	"github.com/zjrosen/twig/internal/mode/branches"
	"github.com/zjrosen/twig/internal/mode/graph"
	"github.com/zjrosen/twig/internal/mode/repos"
	"github.com/zjrosen/twig/internal/mode/shared"
	"github.com/zjrosen/twig/internal/mode/status"
	"github.com/zjrosen/twig/internal/paths"
	"github.com/zjrosen/twig/internal/pubsub"
	"github.com/zjrosen/twig/internal/ui/loading"
	"github.com/zjrosen/twig/internal/ui/logoverlay"
	"github.com/zjrosen/twig/internal/ui/output"
	"github.com/zjrosen/twig/internal/ui/toaster"
	"github.com/zjrosen/twig/internal/watcher"
)

// Registry is the repository store as the app uses it.
type Registry interface {
	repos.Registry
	MarkOpened(ctx context.Context, path string) error
}

// Options configures a Model.
type Options struct {
	Config     config.Config
	ConfigPath string
	Registry   Registry

	// Executor builds the git executor for an opened work tree.
	Executor func(root string) git.Executor

	Clipboard shared.Clipboard
	Opener    shared.Opener
	Notifier  shared.Notifier
	Clock     shared.Clock

	// Debug enables the log overlay (Ctrl+X toggle).
	Debug bool
	// Repo is opened straight away instead of showing the picker.
	Repo string
}

// Model is the root application state.
type Model struct {
	opts Options

	// Repository picker, shown while no repository is open
	picking bool
	picker  mode.Controller

	// Repository views, indexed by mode.ViewID
	services mode.Services
	active   mode.ViewID
	views    [len(tabOrder)]mode.Controller
	status   *git.StatusSnapshot

	width  int
	height int

	toaster    toaster.Model
	output     output.Model
	loading    loading.Model
	logOverlay logoverlay.Model

	logCancel   context.CancelFunc
	logListener *pubsub.Listener[string]

	// File watcher for auto-refresh, one per open repository
	watcherHandle   *watcher.Watcher
	watcherCancel   context.CancelFunc
	watcherListener *pubsub.Listener[watcher.Event]
}

// New creates the application model. The zone manager must be initialised
// with zone.NewGlobal before the first View.
func New(opts Options) Model {
	if opts.Executor == nil {
		opts.Executor = func(root string) git.Executor { return git.NewRealExecutor(root) }
	}
	if opts.Clock == nil {
		opts.Clock = shared.RealClock{}
	}
	if opts.Notifier == nil {
		opts.Notifier = shared.NopNotifier{}
	}

	m := Model{
		opts:       opts,
		picking:    true,
		picker:     repos.New(opts.Registry, opts.Config),
		toaster:    toaster.New(opts.Config.UI.NotificationTimeout),
		output:     output.New(opts.Config.UI.OutputHeight, opts.Config.UI.MarkdownStyle),
		loading:    loading.New(),
		logOverlay: logoverlay.New(),
	}

	if opts.Debug {
		ctx, cancel := context.WithCancel(context.Background())
		if l := log.NewListener(ctx); l != nil {
			m.logCancel = cancel
			m.logListener = l
		} else {
			cancel()
		}
	}
	return m
}

// Init loads the picker, opens the requested repository if any and starts
// tailing the debug log.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.picker.Init()}
	if m.opts.Repo != "" {
		path := m.opts.Repo
		cmds = append(cmds, func() tea.Msg { return mode.OpenRepoMsg{Path: path} })
	}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logOverlay = m.logOverlay.SetSize(msg.Width, msg.Height)
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.logOverlay.Visible() {
			return m, nil
		}

	case log.Event:
		m.logOverlay = m.logOverlay.Refresh()
		return m, m.logListener.Listen()

	case logoverlay.CloseMsg:
		return m, nil

	case mode.ShowToastMsg:
		style := toaster.StyleError
		if msg.Info {
			style = toaster.StyleInfo
		}
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(msg.Message, style)
		return m, cmd

	case toaster.FadeMsg, toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case mode.ShowOutputMsg:
		m.output = m.output.Show(msg.Title, msg.Markdown)
		m.layout()
		return m, nil

	case mode.OperationStartedMsg:
		var cmd tea.Cmd
		m.loading, cmd = m.loading.Start(msg.ID, msg.Label)
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.loading, cmd = m.loading.Update(msg)
		return m, cmd

	case mode.OperationFinishedMsg:
		return m.handleFinished(msg)

	case mode.RefreshMsg:
		return m, m.refresh()

	case refreshedMsg:
		return m.handleRefreshed(msg)

	case pubsub.Event[watcher.Event]:
		return m.handleWatcher(msg)

	case mode.OpenRepoMsg:
		return m.openRepo(msg.Path)

	case mode.ExitMsg:
		if m.picking {
			return m, nil
		}
		log.Info(log.CatMode, "Leaving repository", "root", m.services.Git.Root())
		m.closeRepo()
		return m, m.picker.Init()

	case mode.QuitMsg:
		return m, tea.Quit
	}

	return m.delegate(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Global.Quit) {
		return m, tea.Quit
	}

	if m.opts.Debug && key.Matches(msg, keys.Global.ShowLog) && !m.logOverlay.Visible() {
		m.logOverlay = m.logOverlay.Toggle()
		return m, nil
	}
	// The log overlay takes every key while it is visible.
	if m.logOverlay.Visible() {
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd
	}

	if m.picking {
		return m.delegate(msg)
	}

	view := m.views[m.active]
	if view.Navigating() {
		if m.output.Visible() {
			var res output.Result
			m.output, res = m.output.Update(msg)
			switch {
			case res.Closed:
				m.layout()
				return m, nil
			case res.Resized:
				m.layout()
				return m, m.saveOutputHeight()
			}
		}

		switch {
		case key.Matches(msg, keys.Global.NextView):
			m.active = m.active.Next()
			log.Debug(log.CatMode, "Switching view", "to", m.active)
			return m, nil
		case key.Matches(msg, keys.Global.PrevView):
			m.active = m.active.Prev()
			log.Debug(log.CatMode, "Switching view", "to", m.active)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.views[m.active], cmd = view.Update(msg)
	return m, cmd
}

// delegate hands msg to the picker, or to the active view for input and to
// every view for anything else: a reply to one view's request (its remotes,
// a cursor blink) must reach it even after the user switched tabs.
func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.picking {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		var cmd tea.Cmd
		m.views[m.active], cmd = m.views[m.active].Update(msg)
		return m, cmd
	}

	cmds := make([]tea.Cmd, 0, len(m.views))
	for i := range m.views {
		var cmd tea.Cmd
		m.views[i], cmd = m.views[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleFinished(msg mode.OperationFinishedMsg) (tea.Model, tea.Cmd) {
	m.loading = m.loading.Finish(msg.ID)

	cmds := []tea.Cmd{m.refresh()}
	if msg.Err != nil {
		log.ErrorErr(log.CatGit, "Operation failed", msg.Err, "op", msg.Label)
		cmds = append(cmds, mode.FailureCmd(msg))
	} else {
		log.Info(log.CatGit, "Operation finished", "op", msg.Label)
		if msg.Notify && m.opts.Config.UI.NotifyDesktop {
			n, label := m.opts.Notifier, msg.Label
			cmds = append(cmds, func() tea.Msg {
				n.Notify("twig", label+" finished")
				return nil
			})
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleRefreshed(msg refreshedMsg) (tea.Model, tea.Cmd) {
	if m.picking || msg.root != m.services.Git.Root() {
		return m, nil
	}
	if msg.err != nil {
		return m, mode.ToastCmd(git.Message(msg.err))
	}
	m.status = msg.snap.Status
	return m.delegate(msg.snap)
}

func (m Model) handleWatcher(msg pubsub.Event[watcher.Event]) (tea.Model, tea.Cmd) {
	if m.watcherListener == nil || msg.Payload.Root != m.services.Git.Root() {
		return m, nil
	}
	switch msg.Payload.Kind {
	case watcher.RepoChanged:
		m.services.LogCache.Invalidate(context.Background(), msg.Payload.Root)
		log.Debug(log.CatWatcher, "Repository changed, refreshing", "root", msg.Payload.Root)
		return m, tea.Batch(m.refresh(), m.watcherListener.Listen())
	case watcher.WatchError:
		log.Warn(log.CatWatcher, "Watcher error received", "error", msg.Payload.Err)
	}
	return m, m.watcherListener.Listen()
}

// refresh reloads the open repository.
func (m Model) refresh() tea.Cmd {
	if m.picking {
		return nil
	}
	return refreshCmd(m.services.Git, m.services.LogCache, m.opts.Config.LogLimit)
}

func (m Model) openRepo(path string) (tea.Model, tea.Cmd) {
	root, err := paths.ResolveRepo(path)
	if err != nil {
		log.Warn(log.CatMode, "Cannot open repository", "path", path, "error", err)
		return m, mode.ToastCmd(err.Error())
	}
	if err := m.opts.Registry.MarkOpened(context.Background(), root); err != nil {
		log.Warn(log.CatStore, "Failed to mark repository opened", "path", root, "error", err)
	}
	if !m.picking {
		m.closeRepo()
	}

	exec := m.opts.Executor(root)
	m.services = mode.Services{
		Git:        exec,
		Config:     m.opts.Config,
		ConfigPath: m.opts.ConfigPath,
		Clipboard:  m.opts.Clipboard,
		Opener:     m.opts.Opener,
		Clock:      m.opts.Clock,
		Notifier:   m.opts.Notifier,
		LogCache:   mode.NewLogCache(exec),
	}
	m.views = [len(tabOrder)]mode.Controller{
		mode.ViewStatus:   status.New(m.services),
		mode.ViewBranches: branches.New(m.services),
		mode.ViewGraph:    graph.New(m.services),
	}
	m.active = mode.ViewStatus
	m.status = nil
	m.picking = false
	m.layout()
	log.Info(log.CatMode, "Opened repository", "root", root)

	cmds := []tea.Cmd{m.refresh()}
	for _, v := range m.views {
		cmds = append(cmds, v.Init())
	}
	if cmd := m.startWatcher(root); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// startWatcher watches root when auto-refresh is on. The app works without
// it, so failures are only logged.
func (m *Model) startWatcher(root string) tea.Cmd {
	if !m.opts.Config.AutoRefresh {
		return nil
	}
	w, err := watcher.New(watcher.Config{Root: root, Debounce: m.opts.Config.RefreshDebounce})
	if err != nil {
		log.Warn(log.CatWatcher, "Watcher unavailable", "error", err)
		return nil
	}
	if err := w.Start(); err != nil {
		log.Warn(log.CatWatcher, "Watcher failed to start", "error", err)
		_ = w.Stop()
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.watcherHandle = w
	m.watcherCancel = cancel
	m.watcherListener = pubsub.NewListener(ctx, w.Broker())
	return m.watcherListener.Listen()
}

// closeRepo tears down the repository views and returns to the picker.
func (m *Model) closeRepo() {
	m.stopWatcher()
	m.views = [len(tabOrder)]mode.Controller{}
	m.services = mode.Services{}
	m.status = nil
	m.output = m.output.Hide()
	m.picking = true
	m.layout()
}

func (m *Model) stopWatcher() {
	if m.watcherCancel != nil {
		m.watcherCancel()
	}
	if m.watcherHandle != nil {
		if err := m.watcherHandle.Stop(); err != nil {
			log.Warn(log.CatWatcher, "Stopping watcher", "error", err)
		}
	}
	m.watcherHandle, m.watcherCancel, m.watcherListener = nil, nil, nil
}

// saveOutputHeight persists a resized output panel.
func (m Model) saveOutputHeight() tea.Cmd {
	path, height := m.opts.ConfigPath, m.output.Height()
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		if err := config.SaveValue(path, "ui.output_height", height); err != nil {
			log.Warn(log.CatConfig, "Failed to save output height", "error", err)
		}
		return nil
	}
}

// viewHeight is what remains for a view below the header and above the
// output panel.
func (m Model) viewHeight() int {
	h := m.height - headerHeight
	if m.output.Visible() {
		h -= m.output.Height()
	}
	return max(h, 1)
}

func (m *Model) layout() {
	if m.picker != nil {
		m.picker = m.picker.SetSize(m.width, m.height)
	}
	m.output = m.output.SetWidth(m.width)
	for i, v := range m.views {
		if v != nil {
			m.views[i] = v.SetSize(m.width, m.viewHeight())
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var view string
	if m.picking {
		view = m.picker.View()
	} else {
		name := filepath.Base(m.services.Git.Root())
		parts := []string{
			header(m.width, name, m.status, m.active, m.loading.View()),
			m.views[m.active].View(),
		}
		if m.output.Visible() {
			parts = append(parts, m.output.View())
		}
		view = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	if m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}
	return zone.Scan(view)
}

// Close releases the watcher and log subscriptions.
func (m *Model) Close() error {
	if m.logCancel != nil {
		m.logCancel()
	}
	m.stopWatcher()
	return nil
}
