package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/floatkit/floatnav/internal/nav"
	"github.com/floatkit/floatnav/internal/source"
	"github.com/floatkit/floatnav/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	StatePath  string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config, opts nav.Options) error {
	var watcher *source.Watcher
	if cfg.StatePath != "" {
		watcher = source.NewWatcher(cfg.StatePath, 1500*time.Millisecond)
		defer watcher.Stop()
	}
	model := ui.NewModel(cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, opts, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
