package command

import (
	"fmt"

	"github.com/atomicstack/menu-launcher/internal/logging/events"
	"github.com/atomicstack/menu-launcher/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler turns a selected entry into a Bubble Tea command.
type Handler func(menu.Entry) tea.Cmd

// Request encapsulates a launch invocation.
type Request struct {
	ID      string
	Label   string
	Handler Handler
	Entry   menu.Entry
}

// Bus coordinates the execution of launch requests.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a launch handler into a Bubble Tea command while emitting
// trace logs. The message produced by the handler's command is passed through
// untouched, so commands such as tea.Exec keep working.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		cmd := req.Handler(req.Entry)
		if cmd == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
