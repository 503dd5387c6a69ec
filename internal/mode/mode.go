// Package mode defines the view controller interface, the services injected
// into every view, and the modal coordinator that gates base navigation.
package mode

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/twig/internal/cachemanager"
	"github.com/zjrosen/twig/internal/config"
	"github.com/zjrosen/twig/internal/git"
	"github.com/zjrosen/twig/internal/mode/shared"
)

// ViewID identifies one of the repository views.
type ViewID int

const (
	ViewStatus ViewID = iota
	ViewBranches
	ViewGraph
)

var viewNames = [...]string{"Status", "Branches", "Graph"}

func (v ViewID) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return "Unknown"
	}
	return viewNames[v]
}

// Next cycles Status → Branches → Graph → Status.
func (v ViewID) Next() ViewID { return (v + 1) % ViewID(len(viewNames)) }

// Prev cycles in the opposite direction.
func (v ViewID) Prev() ViewID {
	return (v + ViewID(len(viewNames)) - 1) % ViewID(len(viewNames))
}

// Controller defines the interface all views implement.
type Controller interface {
	// Init returns initial commands for the view.
	Init() tea.Cmd

	// Update handles messages and returns the updated view and commands.
	Update(msg tea.Msg) (Controller, tea.Cmd)

	// View renders the view.
	View() string

	// SetSize handles terminal resize events.
	SetSize(width, height int) Controller

	// Navigating reports whether the base list owns the keyboard, that is
	// no modal is open.
	Navigating() bool
}

// LogCache keeps the graph log per repository root.
type LogCache = cachemanager.ReadThrough[[]git.LogEntry, int]

// Services contains shared dependencies injected into view controllers.
type Services struct {
	Git        git.Executor
	Config     config.Config
	ConfigPath string
	Clipboard  shared.Clipboard
	Opener     shared.Opener
	Clock      shared.Clock
	Notifier   shared.Notifier
	LogCache   *LogCache
}

// NewLogCache builds the graph log cache over exec.
func NewLogCache(exec git.Executor) *LogCache {
	mem := cachemanager.NewMemory[[]git.LogEntry]("log", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	return cachemanager.NewReadThrough(mem, cachemanager.DefaultExpiration,
		func(ctx context.Context, limit int) ([]git.LogEntry, error) {
			return exec.Log(ctx, limit)
		})
}
