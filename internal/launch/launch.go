package launch

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atomicstack/menu-launcher/internal/logging/events"
	"github.com/atomicstack/menu-launcher/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

var errNotLeaf = errors.New("entry has no command")

// Finished is delivered to the UI once a launched command has returned, or
// failed to start.
type Finished struct {
	Entry menu.Entry
	Err   error
}

// LaunchError describes a command that could not be started or exited
// unsuccessfully. ExitCode is -1 when no exit status is available.
type LaunchError struct {
	Label    string
	Command  string
	ExitCode int
	Err      error
}

func (e *LaunchError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("%s: %q exited with status %d", e.Label, e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s: %v", e.Label, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// Options tunes how commands are run.
type Options struct {
	// Pause waits for enter after the command exits so its output stays
	// visible before the menu redraws.
	Pause bool
	// Env replaces the child environment; nil inherits the menu's environment.
	Env []string
}

// Launcher turns leaf entries into processes that run on the menu's terminal.
type Launcher struct {
	opts     Options
	lookPath func(string) (string, error)
}

// New returns a Launcher using opts.
func New(opts Options) *Launcher {
	return &Launcher{opts: opts, lookPath: exec.LookPath}
}

// Launch returns a command that suspends the program's terminal, runs the
// entry's process in the foreground, and reports a Finished message when it
// exits. Start failures are reported without touching the terminal.
func (l *Launcher) Launch(entry menu.Entry) tea.Cmd {
	events.Launch.Start(entry.Label, entry.Command.Argv, entry.Command.Dir)
	cmd, err := l.Prepare(entry)
	if err != nil {
		return func() tea.Msg {
			return Finished{Entry: entry, Err: err}
		}
	}
	proc := &process{cmd: cmd, pause: l.opts.Pause}
	return tea.Exec(proc, func(err error) tea.Msg {
		return Finished{Entry: entry, Err: classify(entry, err)}
	})
}

// Prepare resolves the entry's program and builds the process without
// starting it.
func (l *Launcher) Prepare(entry menu.Entry) (*exec.Cmd, error) {
	if !entry.IsLeaf() || len(entry.Command.Argv) == 0 {
		return nil, classify(entry, errNotLeaf)
	}
	program := entry.Command.Program()
	dir := entry.Command.Dir
	if dir != "" && !filepath.IsAbs(program) && strings.ContainsRune(program, filepath.Separator) {
		program = filepath.Join(dir, program)
	}
	path, err := l.lookPath(program)
	if err != nil {
		return nil, classify(entry, err)
	}
	cmd := exec.Command(path, entry.Command.Argv[1:]...)
	cmd.Dir = dir
	cmd.Env = l.opts.Env
	return cmd, nil
}

func classify(entry menu.Entry, err error) error {
	if err == nil {
		return nil
	}
	launchErr := &LaunchError{
		Label:    entry.Label,
		Command:  entry.Command.String(),
		ExitCode: -1,
		Err:      err,
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		launchErr.ExitCode = exitErr.ExitCode()
	}
	return launchErr
}
