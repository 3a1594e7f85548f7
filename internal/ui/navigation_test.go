package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/menu-launcher/internal/launch"
	"github.com/atomicstack/menu-launcher/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func TestEscapeAtRootQuits(t *testing.T) {
	m := newTestModel(gamesTree(), Options{}, &fakeLauncher{})
	cmd := m.handleKeyMsg(keyMsg("esc"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestGamesChessEndToEnd(t *testing.T) {
	launcher := &fakeLauncher{}
	h := NewHarness(newTestModel(gamesTree(), Options{}, launcher))

	h.Press("enter")
	nav := h.Model().Navigator()
	if nav.Depth() != 1 || nav.Current().Title != "Games" {
		t.Fatalf("expected to be inside Games, depth %d", nav.Depth())
	}
	if !strings.Contains(h.View(), "Main Menu→Games") {
		t.Fatalf("expected breadcrumb in view, got:\n%s", h.View())
	}

	h.Press("enter")
	if len(launcher.launched) != 1 {
		t.Fatalf("expected one launch, got %d", len(launcher.launched))
	}
	if got := launcher.launched[0].Command.Program(); got != "chess.exe" {
		t.Fatalf("expected chess.exe, got %q", got)
	}
	if nav.Depth() != 1 || nav.Current().Cursor != 0 {
		t.Fatalf("expected navigation unchanged by launch")
	}
	if h.Model().launching {
		t.Fatalf("expected launching flag cleared after finish")
	}

	h.Press("esc")
	if !nav.AtRoot() || nav.Current().Cursor != 0 {
		t.Fatalf("expected root with Games selected, depth %d cursor %d", nav.Depth(), nav.Current().Cursor)
	}
	if h.Quit() {
		t.Fatalf("did not expect quit after first esc")
	}
	h.Press("esc")
	if !h.Quit() {
		t.Fatalf("expected quit after second esc")
	}
}

func TestMissingCommandShowsErrorAndKeepsState(t *testing.T) {
	useTempLog(t)
	tree := menu.Tree{Root: []menu.Entry{
		leafEntry("0", "Editor", "vim"),
		leafEntry("1", "Broken", "menu-launcher-missing-binary"),
	}}
	h := NewHarness(newTestModel(tree, Options{}, launch.New(launch.Options{})))

	h.Press("down", "enter")
	m := h.Model()
	if m.Err() == "" || !strings.Contains(m.Err(), "Broken") {
		t.Fatalf("expected launch error mentioning Broken, got %q", m.Err())
	}
	if !strings.Contains(h.View(), "Error: Broken") {
		t.Fatalf("expected inline error, got:\n%s", h.View())
	}
	nav := m.Navigator()
	if !nav.AtRoot() || nav.Current().Cursor != 1 {
		t.Fatalf("expected state unchanged, depth %d cursor %d", nav.Depth(), nav.Current().Cursor)
	}
	if h.Quit() {
		t.Fatalf("did not expect quit after a failed launch")
	}

	h.Press("up")
	if m.Err() == "" {
		t.Fatalf("expected error to persist while moving")
	}
	h.Press("down", "esc")
	if !h.Quit() {
		t.Fatalf("expected esc at root to quit")
	}
}

func TestFailedLaunchThenDescendClearsError(t *testing.T) {
	useTempLog(t)
	launcher := &fakeLauncher{err: &launch.LaunchError{Label: "Editor", Command: "vim", ExitCode: 2}}
	h := NewHarness(newTestModel(gamesTree(), Options{}, launcher))
	h.Press("down", "enter")
	if !strings.Contains(h.Model().Err(), "exited with status 2") {
		t.Fatalf("expected exit status in error, got %q", h.Model().Err())
	}
	h.Press("up", "enter")
	if h.Model().Err() != "" {
		t.Fatalf("expected error cleared on descend, got %q", h.Model().Err())
	}
}

func TestVerboseLaunchReportsInfo(t *testing.T) {
	h := NewHarness(newTestModel(gamesTree(), Options{Verbose: true}, &fakeLauncher{}))
	h.Press("end", "enter")
	if info := h.Model().currentInfo(); info != "Shell finished" {
		t.Fatalf("expected info message, got %q", info)
	}
}

func TestKeysIgnoredWhileLaunching(t *testing.T) {
	m := newTestModel(gamesTree(), Options{}, &fakeLauncher{})
	m.launching = true
	h := NewHarness(m)
	h.Press("down", "esc")
	if m.Navigator().Current().Cursor != 0 || h.Quit() {
		t.Fatalf("expected keys ignored while launching")
	}
	h.Press("ctrl+c")
	if !h.Quit() {
		t.Fatalf("expected ctrl+c to quit while launching")
	}
}

func TestUnrecognisedKeysLeaveStateUnchanged(t *testing.T) {
	h := NewHarness(newTestModel(gamesTree(), Options{}, &fakeLauncher{}))
	h.Press("down", "x", "z", "?")
	if got := h.Model().Navigator().Current().Cursor; got != 1 {
		t.Fatalf("expected cursor 1, got %d", got)
	}
	if h.Quit() {
		t.Fatalf("did not expect quit")
	}
}

func TestQQuitsWithoutFilter(t *testing.T) {
	h := NewHarness(newTestModel(gamesTree(), Options{}, &fakeLauncher{}))
	h.Press("enter", "q")
	if !h.Quit() {
		t.Fatalf("expected q to quit from a nested level")
	}
}

func TestCursorWrapsThroughKeys(t *testing.T) {
	h := NewHarness(newTestModel(gamesTree(), Options{}, &fakeLauncher{}))
	h.Press("up")
	if got := h.Model().Navigator().Current().Cursor; got != 2 {
		t.Fatalf("expected wrap to last entry, got %d", got)
	}
	h.Press("down")
	if got := h.Model().Navigator().Current().Cursor; got != 0 {
		t.Fatalf("expected wrap to first entry, got %d", got)
	}
}

func TestViewportFollowsCursor(t *testing.T) {
	h := NewHarness(newTestModel(numberedTree(10), Options{Height: 8}, &fakeLauncher{}))
	if max := h.Model().maxVisibleItems(); max != 4 {
		t.Fatalf("expected four visible rows, got %d", max)
	}
	view := h.View()
	if !strings.Contains(view, "item-04") || strings.Contains(view, "item-05") {
		t.Fatalf("expected first page only, view =\n%s", view)
	}

	for i := 0; i < 6; i++ {
		h.Press("down")
	}
	view = h.View()
	if !strings.Contains(view, "item-07") || strings.Contains(view, "item-03") {
		t.Fatalf("expected viewport scrolled to item-07, view =\n%s", view)
	}

	h.Press("home", "up")
	view = h.View()
	if !strings.Contains(view, "item-10") || strings.Contains(view, "item-01") {
		t.Fatalf("expected wrap to show the last page, view =\n%s", view)
	}
}

func TestPageKeysClamp(t *testing.T) {
	h := NewHarness(newTestModel(numberedTree(10), Options{Height: 8}, &fakeLauncher{}))
	h.Press("pgdown")
	if got := h.Model().Navigator().Current().Cursor; got != 4 {
		t.Fatalf("expected cursor 4 after page down, got %d", got)
	}
	h.Press("pgdown", "pgdown", "pgdown")
	if got := h.Model().Navigator().Current().Cursor; got != 9 {
		t.Fatalf("expected cursor clamped to 9, got %d", got)
	}
	h.Press("pgup")
	if got := h.Model().Navigator().Current().Cursor; got != 5 {
		t.Fatalf("expected cursor 5 after page up, got %d", got)
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	m := newTestModel(gamesTree(), Options{Width: 30}, &fakeLauncher{})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 12})
	if m.width != 30 || m.height != 12 {
		t.Fatalf("expected width 30 and height 12, got %d/%d", m.width, m.height)
	}
}
