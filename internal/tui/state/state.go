package state

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/tasktracker/internal/api"
	"github.com/hy4ri/tasktracker/internal/config"
	"github.com/hy4ri/tasktracker/internal/tui/styles"
	"github.com/sirupsen/logrus"
)

// Pane represents which pane is currently focused.
type Pane int

// Panes in tab order.
const (
	PaneList Pane = iota
	PaneFilter
	PaneForm
)

const paneCount = 3

// Next returns the pane after p.
func (p Pane) Next() Pane {
	return (p + 1) % paneCount
}

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Client *api.Client
	Config *config.Config
	Log    logrus.FieldLogger

	// Tasks is exactly the result of the last accepted fetch.
	Tasks []api.Task

	// Request state
	Loading bool
	// FetchGen is the generation of the most recently issued fetch.
	// Responses from older generations are discarded.
	FetchGen uint64

	// ErrMsg is the single error slot; the most recent failure wins.
	ErrMsg    string
	StatusMsg string

	// Filter state
	Filter    Filter
	FilterBar FilterBar

	// Editing is a copy of the task being edited, or nil in create mode.
	Editing  *api.Task
	TaskForm *TaskForm

	// Delete confirmation
	ConfirmDelete   bool
	PendingDeleteID string

	// View state
	FocusedPane Pane
	TaskCursor  int
	Width       int
	Height      int
	ShowHelp    bool

	// Components
	Spinner       spinner.Model
	Keymap        Keymap
	Help          help.Model
	TaskViewport  viewport.Model
	ViewportReady bool

	// Overdue notifications already sent, by task ID.
	NotifiedTasks map[string]bool

	// Side effects, replaceable in tests.
	Now             func() time.Time
	Notify          func(title, message string) error
	CopyToClipboard func(text string) error
}

// New creates the initial application state.
func New(client *api.Client, cfg *config.Config, log logrus.FieldLogger) *State {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return &State{
		Client:        client,
		Config:        cfg,
		Log:           log,
		Tasks:         []api.Task{},
		Loading:       true,
		Filter:        DefaultFilter(),
		TaskForm:      NewTaskForm(),
		FocusedPane:   PaneList,
		Spinner:       sp,
		Keymap:        DefaultKeymap(),
		Help:          help.New(),
		NotifiedTasks: make(map[string]bool),
		Now:           time.Now,
		Notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
		CopyToClipboard: clipboard.WriteAll,
	}
}

// SelectedTask returns the task under the cursor, or nil.
func (s *State) SelectedTask() *api.Task {
	if s.TaskCursor < 0 || s.TaskCursor >= len(s.Tasks) {
		return nil
	}
	return &s.Tasks[s.TaskCursor]
}

// ClampCursor keeps the cursor inside the task collection.
func (s *State) ClampCursor() {
	if s.TaskCursor >= len(s.Tasks) {
		s.TaskCursor = len(s.Tasks) - 1
	}
	if s.TaskCursor < 0 {
		s.TaskCursor = 0
	}
}

// Layout splits the terminal into the form pane, the list pane and the
// body height shared by both.
func (s *State) Layout() (formWidth, listWidth, bodyHeight int) {
	formWidth = s.Width * 2 / 5
	if formWidth < 36 {
		formWidth = 36
	}
	listWidth = s.Width - formWidth
	if listWidth < 30 {
		listWidth = 30
	}

	// header (2) + status bar (1) + help line (1)
	bodyHeight = s.Height - 4
	if s.ErrMsg != "" {
		bodyHeight -= 3
	}
	if bodyHeight < 10 {
		bodyHeight = 10
	}
	return formWidth, listWidth, bodyHeight
}
