// Package tui provides the terminal user interface for the task tracker.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasktracker/internal/api"
	"github.com/hy4ri/tasktracker/internal/config"
	"github.com/hy4ri/tasktracker/internal/tui/logic"
	"github.com/hy4ri/tasktracker/internal/tui/state"
	"github.com/hy4ri/tasktracker/internal/tui/ui"
	"github.com/sirupsen/logrus"
)

// App is the main Bubble Tea model for the application.
// State transitions live in logic.Handler and rendering in ui.Renderer;
// both share the same state.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates a new application instance.
func NewApp(client *api.Client, cfg *config.Config, log logrus.FieldLogger) *App {
	return NewAppWithContext(context.Background(), client, cfg, log)
}

// NewAppWithContext creates an application whose requests use ctx.
func NewAppWithContext(ctx context.Context, client *api.Client, cfg *config.Config, log logrus.FieldLogger) *App {
	s := state.New(client, cfg, log)
	return &App{
		state:    s,
		handler:  logic.NewHandlerWithContext(ctx, s),
		renderer: ui.NewRenderer(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}

// State exposes the shared state.
func (a *App) State() *state.State {
	return a.state
}
