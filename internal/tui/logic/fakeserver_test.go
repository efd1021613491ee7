package logic

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasktracker/internal/api"
	"github.com/hy4ri/tasktracker/internal/config"
	"github.com/hy4ri/tasktracker/internal/logging"
	"github.com/hy4ri/tasktracker/internal/tui/state"
)

// recordedRequest is one request seen by the fake server.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]interface{}
}

// fakeServer is an in-memory task API.
type fakeServer struct {
	*httptest.Server

	mu       sync.Mutex
	tasks    []api.Task
	nextID   int
	requests []recordedRequest

	// failNext makes the next request fail with this status and error text.
	failStatus  int
	failMessage string
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()

	fs := &fakeServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(fs.handle))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeServer) seed(tasks ...api.Task) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for _, t := range tasks {
		fs.nextID++
		if t.ID == "" {
			t.ID = fmt.Sprintf("t%d", fs.nextID)
		}
		if t.CreatedAt.IsZero() {
			t.CreatedAt = time.Date(2025, 1, 1, 0, 0, fs.nextID, 0, time.UTC)
		}
		fs.tasks = append(fs.tasks, t)
	}
}

func (fs *fakeServer) failNext(status int, message string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.failStatus = status
	fs.failMessage = message
}

func (fs *fakeServer) recorded() []recordedRequest {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]recordedRequest(nil), fs.requests...)
}

func (fs *fakeServer) countMethod(method string) int {
	n := 0
	for _, r := range fs.recorded() {
		if r.Method == method {
			n++
		}
	}
	return n
}

func (fs *fakeServer) lastRequest() recordedRequest {
	reqs := fs.recorded()
	if len(reqs) == 0 {
		return recordedRequest{}
	}
	return reqs[len(reqs)-1]
}

// last returns the most recent request with method.
func (fs *fakeServer) last(method string) recordedRequest {
	reqs := fs.recorded()
	for i := len(reqs) - 1; i >= 0; i-- {
		if reqs[i].Method == method {
			return reqs[i]
		}
	}
	return recordedRequest{}
}

// list returns what GET /api/tasks would return for filter.
func (fs *fakeServer) list(filter api.TaskFilter) []api.Task {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.listLocked(filter)
}

func (fs *fakeServer) listLocked(filter api.TaskFilter) []api.Task {
	out := []api.Task{}
	for _, t := range fs.tasks {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		out = append(out, t)
	}

	rank := map[api.Priority]int{api.PriorityHigh: 0, api.PriorityMedium: 1, api.PriorityLow: 2}
	sort.SliceStable(out, func(i, j int) bool {
		switch filter.SortBy {
		case api.SortByPriority:
			return rank[out[i].Priority] < rank[out[j].Priority]
		case api.SortByDueDate:
			if out[i].DueDate == nil || out[j].DueDate == nil {
				return out[j].DueDate == nil && out[i].DueDate != nil
			}
			return out[i].DueDate.Before(*out[j].DueDate)
		default:
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
	})
	return out
}

func (fs *fakeServer) handle(w http.ResponseWriter, r *http.Request) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	rec := recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query()}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&rec.Body)
	}
	fs.requests = append(fs.requests, rec)

	if fs.failStatus != 0 {
		status, message := fs.failStatus, fs.failMessage
		fs.failStatus, fs.failMessage = 0, ""
		writeJSON(w, status, map[string]string{"error": message})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/tasks/")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/tasks":
		q := r.URL.Query()
		filter := api.TaskFilter{
			Status:   api.Status(q.Get("status")),
			Priority: api.Priority(q.Get("priority")),
			SortBy:   api.SortBy(q.Get("sortBy")),
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"data": fs.listLocked(filter)})

	case r.Method == http.MethodPost && r.URL.Path == "/api/tasks":
		title, _ := rec.Body["title"].(string)
		if strings.TrimSpace(title) == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Title is required"})
			return
		}
		fs.nextID++
		t := api.Task{
			ID:        fmt.Sprintf("t%d", fs.nextID),
			CreatedAt: time.Date(2025, 1, 1, 0, 0, fs.nextID, 0, time.UTC),
		}
		applyBody(&t, rec.Body)
		fs.tasks = append(fs.tasks, t)
		writeJSON(w, http.StatusCreated, t)

	case r.Method == http.MethodPut:
		for i := range fs.tasks {
			if fs.tasks[i].ID == id {
				applyBody(&fs.tasks[i], rec.Body)
				writeJSON(w, http.StatusOK, fs.tasks[i])
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Task not found"})

	case r.Method == http.MethodDelete:
		for i := range fs.tasks {
			if fs.tasks[i].ID == id {
				fs.tasks = append(fs.tasks[:i], fs.tasks[i+1:]...)
				w.WriteHeader(http.StatusOK)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Task not found"})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func applyBody(t *api.Task, body map[string]interface{}) {
	if v, ok := body["title"].(string); ok {
		t.Title = v
	}
	if v, ok := body["description"].(string); ok {
		t.Description = v
	}
	if v, ok := body["status"].(string); ok {
		t.Status = api.Status(v)
	}
	if v, ok := body["priority"].(string); ok {
		t.Priority = api.Priority(v)
	}
	if v, ok := body["dueDate"].(string); ok {
		if due, err := time.Parse(api.DueDateLayout, v); err == nil {
			t.DueDate = &due
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// testNow is the fixed clock used by handler tests.
var testNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

// newTestHandler wires a handler to fs with side effects captured.
func newTestHandler(t *testing.T, fs *fakeServer) (*Handler, *[]string) {
	t.Helper()

	cfg := config.DefaultConfig()
	s := state.New(api.NewClient(fs.URL), cfg, logging.Discard())
	s.Now = func() time.Time { return testNow }

	var notified []string
	var mu sync.Mutex
	s.Notify = func(title, message string) error {
		mu.Lock()
		defer mu.Unlock()
		notified = append(notified, message)
		return nil
	}
	s.CopyToClipboard = func(string) error { return nil }

	h := NewHandler(s)
	h.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h, &notified
}

// drain runs cmd and feeds task-related results back into the handler
// until nothing is left. Timer-driven messages are never produced here.
func drain(h *Handler, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}

		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tasksLoadedMsg, fetchFailedMsg, taskCreatedMsg, taskUpdatedMsg, taskDeletedMsg, mutationFailedMsg:
			queue = append(queue, h.Update(msg))
		}
	}
}

// press sends a key and drains the resulting commands.
func press(h *Handler, keys ...string) {
	for _, k := range keys {
		drain(h, h.Update(keyMsg(k)))
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}
