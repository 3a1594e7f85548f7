package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/menu-launcher/internal/launch"
	"github.com/atomicstack/menu-launcher/internal/menu"
	"github.com/atomicstack/menu-launcher/internal/theme"
	"github.com/atomicstack/menu-launcher/internal/ui/command"
	uistate "github.com/atomicstack/menu-launcher/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "Main Menu"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Launcher starts the process behind a leaf entry. The returned command must
// eventually produce a launch.Finished message.
type Launcher interface {
	Launch(entry menu.Entry) tea.Cmd
}

// Options configures the model.
type Options struct {
	Title      string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Filter     bool
}

// Model implements the Bubble Tea model for the menu launcher.
type Model struct {
	nav               *uistate.Navigator
	keys              KeyMap
	help              help.Model
	launcher          Launcher
	bus               *command.Bus
	source            string
	launching         bool
	pendingLabel      string
	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	showFooter        bool
	verbose           bool
	filterEnabled     bool
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state at the root of tree.
func NewModel(tree menu.Tree, opts Options, launcher Launcher) *Model {
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = defaultRootTitle
	}
	m := &Model{
		nav:           uistate.NewNavigator(title, tree.Root),
		keys:          DefaultKeyMap(opts.Filter),
		help:          help.New(),
		launcher:      launcher,
		bus:           command.New(),
		source:        tree.Source,
		showFooter:    opts.ShowFooter,
		verbose:       opts.Verbose,
		filterEnabled: opts.Filter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.syncViewport(m.currentLevel())
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if !m.filterEnabled {
		return nil
	}
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if m.filterEnabled {
		if cmd := m.updateFilterCursorModel(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Navigator exposes the navigation state.
func (m *Model) Navigator() *uistate.Navigator {
	return m.nav
}

// Err returns the error currently shown on the status line.
func (m *Model) Err() string {
	return m.errMsg
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(launch.Finished{}):   m.handleLaunchFinishedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
