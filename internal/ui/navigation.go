package ui

import (
	"github.com/atomicstack/menu-launcher/internal/logging/events"
	uistate "github.com/atomicstack/menu-launcher/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.launching {
		if key.Matches(keyMsg, m.keys.Interrupt) {
			return m.apply(uistate.Exit)
		}
		return nil
	}
	if m.filterEnabled && m.handleTextInput(keyMsg) {
		return nil
	}
	if cmd, ok := m.keys.Translate(keyMsg, m.nav.AtRoot()); ok {
		events.UI.Key(keyMsg.String(), cmd.String())
		return m.apply(cmd)
	}
	switch {
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursorPageUp()
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursorPageDown()
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursorHome()
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursorEnd()
	}
	return nil
}

// apply runs cmd against the navigator and turns the outcome into the side
// effects the program needs: a redraw, a launch, or quitting.
func (m *Model) apply(cmd uistate.Command) tea.Cmd {
	current := m.currentLevel()
	if cmd == uistate.Select && current != nil {
		if entry, ok := current.Selected(); ok {
			events.UI.MenuEnter(current.ID, entry.ID, entry.Label, current.Filter)
		}
	}
	beforeCursor := 0
	if current != nil {
		beforeCursor = current.FilterCursorPos()
	}
	outcome := m.nav.Apply(cmd)
	switch outcome.Kind {
	case uistate.OutcomeMoved:
		events.UI.MenuCursor(current.ID, current.Cursor)
		m.syncViewport(current)
	case uistate.OutcomeDescend:
		m.noteFilterCursorChange(current, beforeCursor)
		m.errMsg = ""
		m.forceClearInfo()
		m.syncViewport(m.currentLevel())
	case uistate.OutcomeAscend:
		parent := m.currentLevel()
		events.UI.MenuBack(current.ID, parent.ID)
		m.errMsg = ""
		m.forceClearInfo()
		m.syncViewport(parent)
	case uistate.OutcomeLaunch:
		m.noteFilterCursorChange(current, beforeCursor)
		m.syncViewport(current)
		return m.launchEntry(outcome.Entry)
	case uistate.OutcomeExit:
		events.App.Exit(m.nav.Depth())
		return tea.Quit
	}
	return nil
}

func (m *Model) moveCursorPageUp() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageUp(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPageDown() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorPageDown(m.maxVisibleItems()); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorHome() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorHome(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorEnd() {
	if current := m.currentLevel(); current != nil {
		if moved := current.MoveCursorEnd(); moved {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) currentLevel() *level {
	return m.nav.Current()
}
