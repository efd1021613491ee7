// Package styles provides Lip Gloss styles for the TUI.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Priority colors
var (
	PriorityHighColor   = lipgloss.Color("#D0473D")
	PriorityMediumColor = lipgloss.Color("#EA8811")
	PriorityLowColor    = lipgloss.Color("#296FDF")
)

// Status colors
var (
	StatusPendingColor    = lipgloss.Color("#B8860B")
	StatusInProgressColor = lipgloss.Color("#1E90FF")
	StatusCompletedColor  = lipgloss.Color("#2E8B57")
)

// Base styles
var (
	// Title is the style for section titles
	// NOTE: No margins - they break viewport scroll sync line counting
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Task styles
var (
	// TaskItem is the base style for a task item
	TaskItem = lipgloss.NewStyle().
			PaddingLeft(2)

	// TaskSelected is the style for a selected task
	TaskSelected = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(Highlight)

	// TaskOverdue marks the left edge of overdue tasks
	TaskOverdue = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeftForeground(ErrorColor)

	// TaskTitle is for the task title
	TaskTitle = lipgloss.NewStyle().Bold(true)

	// TaskDescription is for descriptions in task lists
	TaskDescription = lipgloss.NewStyle().
			Foreground(Subtle).
			Italic(true)

	// TaskDue is for due date display
	TaskDue = lipgloss.NewStyle().
		Foreground(Subtle)

	// OverdueLabel is the overdue marker
	OverdueLabel = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)

// Badge styles
var (
	badgeBase = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF"))

	// badges maps display classes to their style.
	badges = map[string]lipgloss.Style{
		"priority-high":      badgeBase.Background(PriorityHighColor),
		"priority-medium":    badgeBase.Background(PriorityMediumColor),
		"priority-low":       badgeBase.Background(PriorityLowColor),
		"status-pending":     badgeBase.Background(StatusPendingColor),
		"status-in-progress": badgeBase.Background(StatusInProgressColor),
		"status-completed":   badgeBase.Background(StatusCompletedColor),
	}
)

// Badge returns the style for a badge class such as "priority-badge priority-high".
// Unknown classes get an unstyled badge.
func Badge(class string) lipgloss.Style {
	fields := strings.Fields(class)
	if len(fields) > 0 {
		if s, ok := badges[fields[len(fields)-1]]; ok {
			return s
		}
	}
	return badgeBase.Foreground(Subtle)
}

// Item returns the container style for a task item class.
func Item(class string) lipgloss.Style {
	fields := strings.Fields(class)
	if len(fields) > 0 && fields[len(fields)-1] == "overdue" {
		return TaskOverdue
	}
	return TaskItem
}

// Pane styles
var (
	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	PaneFocused = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Padding(0, 1)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)
)

// ErrorBanner is the dismissable error box.
var ErrorBanner = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(ErrorColor).
	Foreground(ErrorColor).
	Padding(0, 1)

// Input styles
var (
	// InputLabel is for input labels
	InputLabel = lipgloss.NewStyle().
			Bold(true)

	// InputLabelFocused is for the label of the focused field
	InputLabelFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(Highlight)

	// InputError is for inline validation errors
	InputError = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// Button is an unfocused form button
	Button = lipgloss.NewStyle().
		Padding(0, 2).
		Background(lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#333333"})

	// ButtonFocused is the focused form button
	ButtonFocused = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Highlight)
)

// Dialog styles
var (
	// Dialog is the base style for dialog boxes
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(WarningColor).
		Padding(1, 2)

	// DialogTitle is for dialog titles
	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(WarningColor)
)

// Spinner style
var (
	Spinner = lipgloss.NewStyle().
		Foreground(Highlight)
)
