package state

import "github.com/charmbracelet/bubbles/key"

// Keymap defines the key bindings of the list and filter panes.
// Form input is handled by the form itself.
type Keymap struct {
	Up   key.Binding
	Down key.Binding

	NextPane key.Binding
	Left     key.Binding
	Right    key.Binding

	Add          key.Binding
	Edit         key.Binding
	Delete       key.Binding
	CycleStatus  key.Binding
	SetPending   key.Binding
	SetProgress  key.Binding
	SetCompleted key.Binding
	Yank         key.Binding

	ClearFilters key.Binding
	Refresh      key.Binding
	DismissError key.Binding

	Submit key.Binding
	Cancel key.Binding

	Confirm key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),

		NextPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Left:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/l", "change value")),
		Right:    key.NewBinding(key.WithKeys("l", "right")),

		Add:          key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "new task")),
		Edit:         key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		CycleStatus:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "next status")),
		SetPending:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "pending")),
		SetProgress:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "in progress")),
		SetCompleted: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		Yank:         key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy title")),

		ClearFilters: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
		Refresh:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		DismissError: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss error")),

		Submit: key.NewBinding(key.WithKeys("ctrl+s", "enter"), key.WithHelp("ctrl+s", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.CycleStatus, k.NextPane, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPane, k.Left},
		{k.Add, k.Edit, k.Delete, k.Yank},
		{k.CycleStatus, k.SetPending, k.SetProgress, k.SetCompleted},
		{k.ClearFilters, k.Refresh, k.DismissError},
		{k.Submit, k.Cancel, k.Help, k.Quit},
	}
}
