package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/menu-launcher/internal/menu"
	"github.com/charmbracelet/lipgloss"
)

func TestViewShowsRootEntries(t *testing.T) {
	view := newTestModel(gamesTree(), Options{}, &fakeLauncher{}).View()
	for _, want := range []string{"Main Menu", "Games", "Editor", "Shell", subMenuMarker, itemIndicator} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Chess") {
		t.Fatalf("did not expect nested entries at root, got:\n%s", view)
	}
}

func TestViewUsesCustomTitle(t *testing.T) {
	h := NewHarness(newTestModel(gamesTree(), Options{Title: "Launcher"}, &fakeLauncher{}))
	h.Press("enter")
	if header := h.Model().menuHeader(); header != "Launcher→Games" {
		t.Fatalf("expected Launcher→Games, got %q", header)
	}
}

func TestViewShowsCommandsWhenVerbose(t *testing.T) {
	view := newTestModel(gamesTree(), Options{Verbose: true}, &fakeLauncher{}).View()
	if !strings.Contains(view, "vim") || !strings.Contains(view, "bash") {
		t.Fatalf("expected command hints in verbose view, got:\n%s", view)
	}
	quiet := newTestModel(gamesTree(), Options{}, &fakeLauncher{}).View()
	if strings.Contains(quiet, "vim") {
		t.Fatalf("did not expect command hints without verbose, got:\n%s", quiet)
	}
}

func TestViewFooterShowsHelp(t *testing.T) {
	view := newTestModel(gamesTree(), Options{ShowFooter: true}, &fakeLauncher{}).View()
	if !strings.Contains(view, "select") || !strings.Contains(view, "back") {
		t.Fatalf("expected key help in footer, got:\n%s", view)
	}
	if strings.Contains(view, "clear filter") {
		t.Fatalf("did not expect filter help without filter, got:\n%s", view)
	}
}

func TestViewRespectsWidth(t *testing.T) {
	tree := menu.Tree{Root: []menu.Entry{
		leafEntry("0", "An entry with a label much longer than the screen", "true"),
		leafEntry("1", "Short", "true"),
	}}
	m := newTestModel(tree, Options{Width: 24}, &fakeLauncher{})
	m.errMsg = "a long error message that will not fit on one line"
	for i, line := range strings.Split(m.View(), "\n") {
		if w := lipgloss.Width(line); w > 24 {
			t.Fatalf("line %d is %d cells wide: %q", i, w, line)
		}
	}
}

func TestViewFilterWithoutMatches(t *testing.T) {
	m := newTestModel(gamesTree(), Options{Filter: true}, &fakeLauncher{})
	m.currentLevel().SetFilter("zzz", 3)
	view := m.View()
	if !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no-match notice, got:\n%s", view)
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("hello", 10); got != "hello" {
		t.Fatalf("expected untouched text, got %q", got)
	}
	if got := truncateText("hello world", 6); got != "hello…" {
		t.Fatalf("expected truncated text, got %q", got)
	}
	if got := truncateText("hello", 0); got != "hello" {
		t.Fatalf("expected no truncation for unknown width, got %q", got)
	}
}
