package logic

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const checkDueInterval = time.Minute

func checkDueCmd() tea.Cmd {
	return tea.Tick(checkDueInterval, func(t time.Time) tea.Msg {
		return checkDueMsg(t)
	})
}

// handleCheckDue notifies about newly overdue tasks and schedules the next check.
func (h *Handler) handleCheckDue(msg checkDueMsg) tea.Cmd {
	return tea.Batch(checkDueCmd(), h.notifyOverdue(time.Time(msg)))
}

// notifyOverdue sends one desktop notification per task that is overdue at
// now and has not been announced yet.
func (h *Handler) notifyOverdue(now time.Time) tea.Cmd {
	if h.Config != nil && !h.Config.UI.Notifications {
		return nil
	}

	var cmds []tea.Cmd
	for i := range h.Tasks {
		task := h.Tasks[i]
		if h.NotifiedTasks[task.ID] || !task.IsOverdue(now) {
			continue
		}
		h.NotifiedTasks[task.ID] = true

		title := task.Title
		due := task.DueLabel()
		notify := h.Notify
		log := h.Log.WithField("task_id", task.ID)

		cmds = append(cmds, func() tea.Msg {
			if err := notify("Task overdue", title+" (due "+due+")"); err != nil {
				log.WithError(err).Warn("failed to send notification")
			}
			return nil
		})
	}

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
