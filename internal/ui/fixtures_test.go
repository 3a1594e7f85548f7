package ui

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/atomicstack/menu-launcher/internal/launch"
	"github.com/atomicstack/menu-launcher/internal/logging"
	"github.com/atomicstack/menu-launcher/internal/menu"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeLauncher struct {
	launched []menu.Entry
	err      error
}

func (f *fakeLauncher) Launch(entry menu.Entry) tea.Cmd {
	f.launched = append(f.launched, entry)
	return func() tea.Msg {
		return launch.Finished{Entry: entry, Err: f.err}
	}
}

func leafEntry(id, label, raw string) menu.Entry {
	return menu.NewLeaf(id, label, menu.Command{Raw: raw, Argv: []string{raw}})
}

func gamesTree() menu.Tree {
	return menu.Tree{
		Source: "menu.csv",
		Root: []menu.Entry{
			menu.NewSubMenu("0", "Games", []menu.Entry{
				leafEntry("0/0", "Chess", "chess.exe"),
				leafEntry("0/1", "Checkers", "checkers"),
			}),
			leafEntry("1", "Editor", "vim"),
			leafEntry("2", "Shell", "bash"),
		},
	}
}

func numberedTree(n int) menu.Tree {
	entries := make([]menu.Entry, n)
	for i := range entries {
		label := fmt.Sprintf("item-%02d", i+1)
		entries[i] = leafEntry(fmt.Sprint(i), label, label)
	}
	return menu.Tree{Root: entries}
}

func newTestModel(tree menu.Tree, opts Options, launcher Launcher) *Model {
	m := NewModel(tree, opts, launcher)
	m.filterCursor.SetMode(cursor.CursorStatic)
	return m
}

func useTempLog(t *testing.T) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	t.Cleanup(func() { logging.Configure("") })
}
