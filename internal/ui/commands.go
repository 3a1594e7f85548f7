package ui

import (
	"fmt"

	"github.com/atomicstack/menu-launcher/internal/launch"
	"github.com/atomicstack/menu-launcher/internal/logging"
	"github.com/atomicstack/menu-launcher/internal/logging/events"
	"github.com/atomicstack/menu-launcher/internal/menu"
	"github.com/atomicstack/menu-launcher/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) launchEntry(entry menu.Entry) tea.Cmd {
	if m.launcher == nil {
		m.setInfo(fmt.Sprintf("Selected %s (no launcher configured)", entry.Label))
		return nil
	}
	m.launching = true
	m.pendingLabel = entry.Label
	m.errMsg = ""
	m.forceClearInfo()
	return m.bus.Execute(command.Request{
		ID:      entry.ID,
		Label:   entry.Label,
		Entry:   entry,
		Handler: m.launcher.Launch,
	})
}

func (m *Model) handleLaunchFinishedMsg(msg tea.Msg) tea.Cmd {
	finished, ok := msg.(launch.Finished)
	if !ok {
		return nil
	}
	m.launching = false
	m.pendingLabel = ""
	if finished.Err != nil {
		m.errMsg = finished.Err.Error()
		m.forceClearInfo()
		logging.Error(finished.Err)
		events.Launch.Error(finished.Entry.Label, finished.Err)
		return nil
	}
	m.errMsg = ""
	events.Launch.Finish(finished.Entry.Label)
	if m.verbose {
		m.setInfo(fmt.Sprintf("%s finished", finished.Entry.Label))
	} else {
		m.forceClearInfo()
	}
	return nil
}
