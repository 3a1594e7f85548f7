package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/menu-launcher/internal/launch"
	"github.com/atomicstack/menu-launcher/internal/logging/events"
	"github.com/atomicstack/menu-launcher/internal/menu"
	"github.com/atomicstack/menu-launcher/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	MenuPath   string
	Title      string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Filter     bool
	Pause      bool
	AltScreen  bool
}

// Run loads the menu and executes the Bubble Tea program until the user
// exits. A broken menu file is returned as a *menu.ConfigError before the
// terminal is touched.
func Run(cfg Config, opts ...tea.ProgramOption) error {
	tree, err := menu.Load(cfg.MenuPath)
	if err != nil {
		events.Menu.Failed(cfg.MenuPath, err)
		return err
	}
	events.Menu.Loaded(tree.Source, tree.Count())

	launcher := launch.New(launch.Options{Pause: cfg.Pause})
	model := ui.NewModel(tree, ui.Options{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Filter:     cfg.Filter,
	}, launcher)

	programOpts := make([]tea.ProgramOption, 0, len(opts)+1)
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	programOpts = append(programOpts, opts...)
	program := tea.NewProgram(model, programOpts...)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run menu: %w", err)
	}
	return nil
}
