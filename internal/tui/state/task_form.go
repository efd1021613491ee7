package state

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasktracker/internal/api"
)

// FormField constants for focus management
const (
	FormFieldTitle = iota
	FormFieldDescription
	FormFieldStatus
	FormFieldPriority
	FormFieldDue
	FormFieldSubmit
)

const formFieldCount = 6

// Field limits enforced by the inputs.
const (
	TitleMaxLen       = 100
	DescriptionMaxLen = 500
)

// Form modes.
const (
	FormModeCreate = "create"
	FormModeEdit   = "edit"
)

// Default draft values.
const (
	DefaultStatus   = api.StatusPending
	DefaultPriority = api.PriorityMedium
)

// ErrTitleRequired is returned when the draft has a blank title.
var ErrTitleRequired = errors.New("title is required")

// TaskForm holds the draft of the create/edit form.
type TaskForm struct {
	Title       textinput.Model
	Description textarea.Model
	Due         textinput.Model
	Status      api.Status
	Priority    api.Priority

	FocusIndex int

	// Original is the task being edited; nil in create mode.
	Original *api.Task

	// Err is the last validation failure, shown inline.
	Err string
}

// NewTaskForm creates a blank form in create mode.
func NewTaskForm() *TaskForm {
	title := textinput.New()
	title.Placeholder = "Enter task title"
	title.CharLimit = TitleMaxLen
	title.Width = 40

	desc := textarea.New()
	desc.Placeholder = "Enter task description (optional)"
	desc.CharLimit = DescriptionMaxLen
	desc.ShowLineNumbers = false
	desc.SetWidth(40)
	desc.SetHeight(4)

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD"
	due.CharLimit = len(api.DueDateLayout)
	due.Width = 12

	f := &TaskForm{
		Title:       title,
		Description: desc,
		Due:         due,
		Status:      DefaultStatus,
		Priority:    DefaultPriority,
	}
	f.Focus(FormFieldTitle)
	return f
}

// Reset clears the draft back to blank defaults and create mode.
func (f *TaskForm) Reset() {
	f.Title.SetValue("")
	f.Description.Reset()
	f.Due.SetValue("")
	f.Status = DefaultStatus
	f.Priority = DefaultPriority
	f.Original = nil
	f.Err = ""
	f.Focus(FormFieldTitle)
}

// LoadTask fills the draft from t and switches to edit mode.
func (f *TaskForm) LoadTask(t *api.Task) {
	f.Reset()
	if t == nil {
		return
	}

	f.Original = t
	f.Title.SetValue(t.Title)
	f.Description.SetValue(t.Description)
	f.Due.SetValue(t.DueInput())
	if t.Status.Valid() {
		f.Status = t.Status
	}
	if t.Priority.Valid() {
		f.Priority = t.Priority
	}
}

// IsEditing reports whether the form edits an existing task.
func (f *TaskForm) IsEditing() bool {
	return f.Original != nil
}

// Mode returns FormModeEdit or FormModeCreate.
func (f *TaskForm) Mode() string {
	if f.IsEditing() {
		return FormModeEdit
	}
	return FormModeCreate
}

// Validate checks the input constraints of the draft.
func (f *TaskForm) Validate() error {
	title := strings.TrimSpace(f.Title.Value())
	if title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > TitleMaxLen {
		return fmt.Errorf("title must be at most %d characters", TitleMaxLen)
	}
	if utf8.RuneCountInString(f.Description.Value()) > DescriptionMaxLen {
		return fmt.Errorf("description must be at most %d characters", DescriptionMaxLen)
	}
	if due := strings.TrimSpace(f.Due.Value()); due != "" {
		if _, err := time.Parse(api.DueDateLayout, due); err != nil {
			return fmt.Errorf("due date must be YYYY-MM-DD")
		}
	}
	return nil
}

// ToInput packages the draft. A blank due date is left out.
func (f *TaskForm) ToInput() api.TaskInput {
	return api.TaskInput{
		Title:       strings.TrimSpace(f.Title.Value()),
		Description: strings.TrimSpace(f.Description.Value()),
		Status:      f.Status,
		Priority:    f.Priority,
		DueDate:     strings.TrimSpace(f.Due.Value()),
	}
}

// Update updates the form models.
func (f *TaskForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		// Up and down move the cursor between description lines.
		multiline := f.FocusIndex == FormFieldDescription
		switch msg.String() {
		case "tab":
			f.NextField()
			return nil
		case "shift+tab":
			f.PrevField()
			return nil
		case "down":
			if !multiline {
				f.NextField()
				return nil
			}
		case "up":
			if !multiline {
				f.PrevField()
				return nil
			}
		}

		switch f.FocusIndex {
		case FormFieldStatus:
			switch msg.String() {
			case "h", "left":
				f.Status = cycle(api.Statuses, f.Status, -1)
			case "l", "right", " ":
				f.Status = cycle(api.Statuses, f.Status, 1)
			}
			return nil
		case FormFieldPriority:
			switch msg.String() {
			case "h", "left":
				f.Priority = cycle(api.Priorities, f.Priority, -1)
			case "l", "right", " ":
				f.Priority = cycle(api.Priorities, f.Priority, 1)
			}
			return nil
		case FormFieldSubmit:
			return nil
		}
	}

	// Only update text inputs if focused
	switch f.FocusIndex {
	case FormFieldTitle:
		f.Title, cmd = f.Title.Update(msg)
		cmds = append(cmds, cmd)
	case FormFieldDescription:
		f.Description, cmd = f.Description.Update(msg)
		cmds = append(cmds, cmd)
	case FormFieldDue:
		f.Due, cmd = f.Due.Update(msg)
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

// NextField moves focus to the next field.
func (f *TaskForm) NextField() {
	f.Focus((f.FocusIndex + 1) % formFieldCount)
}

// PrevField moves focus to the previous field.
func (f *TaskForm) PrevField() {
	f.Focus((f.FocusIndex - 1 + formFieldCount) % formFieldCount)
}

// Focus moves focus to the field at index.
func (f *TaskForm) Focus(index int) {
	f.FocusIndex = index
	f.Title.Blur()
	f.Description.Blur()
	f.Due.Blur()

	switch index {
	case FormFieldTitle:
		f.Title.Focus()
	case FormFieldDescription:
		f.Description.Focus()
	case FormFieldDue:
		f.Due.Focus()
	}
}

// SetWidth sets width of inputs
func (f *TaskForm) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	f.Title.Width = width
	f.Description.SetWidth(width)
}
