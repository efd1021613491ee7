// Package main is the entry point for the task tracker TUI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasktracker/internal/api"
	"github.com/hy4ri/tasktracker/internal/config"
	"github.com/hy4ri/tasktracker/internal/logging"
	"github.com/hy4ri/tasktracker/internal/tui"
	"github.com/hy4ri/tasktracker/internal/tui/components"
	"github.com/sirupsen/logrus"
)

const version = "0.1.0"

const helpText = `tasktracker - Terminal client for the task tracker API

USAGE:
    tasktracker [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --api-url URL       Server base URL (overrides config and TASKTRACKER_API_URL)
    --list              Print tasks and exit
    --status STATUS     With --list: pending, in-progress or completed
    --priority LEVEL    With --list: low, medium or high
    --sort KEY          With --list: createdAt, dueDate or priority

CONFIGURATION:
    Config file: ~/.config/tasktracker/config.yaml
    Log file:    ~/.local/share/tasktracker/tasktracker.log

KEYBINDINGS:
    Tasks:
        j/k         Move down/up
        a           New task
        e, Enter    Edit selected task
        d           Delete selected task (asks first)
        s           Cycle status
        1/2/3       Set pending / in progress / completed
        y           Copy title to clipboard

    Form:
        Tab         Next field
        h/l         Change status or priority
        Ctrl+s      Save
        Esc         Cancel edit

    Other:
        Tab         Switch between list and filters
        c           Clear filters
        r           Refresh
        x           Dismiss error
        ?           Show help
        q           Quit
`

const configTemplate = `# Task Tracker Configuration
# Location: ~/.config/tasktracker/config.yaml

api:
  # Base URL of the task tracker server
  url: "http://localhost:5000"

  # Per-request timeout as a Go duration ("10s"). Empty means no timeout.
  # timeout: "10s"

log:
  # One of: trace, debug, info, warn, error
  level: info

  # Defaults to ~/.local/share/tasktracker/tasktracker.log
  # file: ""

ui:
  # Desktop notifications for overdue tasks
  notifications: true
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		apiURL      string
		listOnly    bool
		status      string
		priority    string
		sortBy      string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&apiURL, "api-url", "", "Server base URL")
	flag.BoolVar(&listOnly, "list", false, "Print tasks and exit")
	flag.StringVar(&status, "status", "", "Status filter for --list")
	flag.StringVar(&priority, "priority", "", "Priority filter for --list")
	flag.StringVar(&sortBy, "sort", string(api.SortByCreatedAt), "Sort key for --list")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("tasktracker version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if apiURL != "" {
		cfg.API.URL = apiURL
	}

	log, closer, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closer.Close()

	client, err := newClient(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if listOnly {
		filter, err := parseFilter(status, priority, sortBy)
		if err != nil {
			return err
		}
		return listTasks(ctx, os.Stdout, client, filter)
	}

	return runApp(ctx, client, cfg, log)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

func newClient(cfg *config.Config, log logrus.FieldLogger) (*api.Client, error) {
	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return nil, err
	}

	client := api.NewClient(cfg.API.URL)
	client.SetTimeout(timeout)
	client.SetLogger(log)
	return client, nil
}

// parseFilter validates the --list filter flags.
func parseFilter(status, priority, sortBy string) (api.TaskFilter, error) {
	f := api.TaskFilter{
		Status:   api.Status(status),
		Priority: api.Priority(priority),
		SortBy:   api.SortBy(sortBy),
	}
	if f.Status != "" && !f.Status.Valid() {
		return f, fmt.Errorf("invalid --status %q", status)
	}
	if f.Priority != "" && !f.Priority.Valid() {
		return f, fmt.Errorf("invalid --priority %q", priority)
	}
	if f.SortBy != "" && !f.SortBy.Valid() {
		return f, fmt.Errorf("invalid --sort %q", sortBy)
	}
	return f, nil
}

// listTasks prints the tasks matching filter in server order.
func listTasks(ctx context.Context, w io.Writer, client *api.Client, filter api.TaskFilter) error {
	tasks, err := client.ListTasks(ctx, filter)
	if err != nil {
		return errors.New(api.ErrorMessage(err, "Failed to fetch tasks"))
	}

	view := components.RenderTaskList(tasks, time.Now(), -1, 80)
	_, err = fmt.Fprintln(w, view.Content)
	return err
}

// runApp starts the main TUI application.
func runApp(ctx context.Context, client *api.Client, cfg *config.Config, log logrus.FieldLogger) error {
	log.WithField("api_url", client.BaseURL()).Info("starting tasktracker")

	app := tui.NewAppWithContext(ctx, client, cfg, log)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
