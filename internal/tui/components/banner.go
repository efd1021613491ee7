package components

import "github.com/hy4ri/tasktracker/internal/tui/styles"

// RenderErrorBanner renders the error slot, or "" when it is empty.
func RenderErrorBanner(msg string, width int) string {
	if msg == "" {
		return ""
	}
	text := "Error: " + msg + "   (x to dismiss)"
	if width > 4 {
		return styles.ErrorBanner.Width(width - 2).Render(text)
	}
	return styles.ErrorBanner.Render(text)
}
