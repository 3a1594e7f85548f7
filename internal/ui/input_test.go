package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleTextInputAppendsRunes(t *testing.T) {
	m := newTestModel(gamesTree(), Options{Filter: true}, &fakeLauncher{})
	current := m.currentLevel()
	handled := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	if !handled {
		t.Fatalf("expected key press to be handled")
	}
	if current.Filter != "abc" {
		t.Fatalf("expected filter 'abc', got %q", current.Filter)
	}
	if pos := current.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor at end, got %d", pos)
	}
}

func TestHandleTextInputCursorMovement(t *testing.T) {
	m := newTestModel(gamesTree(), Options{Filter: true}, &fakeLauncher{})
	current := m.currentLevel()
	current.SetFilter("abc", 3)

	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}) {
		t.Fatalf("expected left arrow to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 2 {
		t.Fatalf("expected cursor at 2 after left, got %d", pos)
	}

	if !m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}) {
		t.Fatalf("expected right arrow to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor back at 3, got %d", pos)
	}
}

func TestFilterPromptPlaceholder(t *testing.T) {
	m := newTestModel(gamesTree(), Options{Filter: true}, &fakeLauncher{})
	prompt := m.filterPrompt()
	if !strings.Contains(prompt, "type to search") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
	if !strings.Contains(m.View(), "type to search") {
		t.Fatalf("expected prompt in view")
	}
}

func TestFilterDisabledIgnoresTyping(t *testing.T) {
	h := NewHarness(newTestModel(gamesTree(), Options{}, &fakeLauncher{}))
	h.Press("s", "h")
	if got := h.Model().currentLevel().Filter; got != "" {
		t.Fatalf("expected no filter without --filter, got %q", got)
	}
	if strings.Contains(h.View(), "type to search") {
		t.Fatalf("did not expect filter prompt")
	}
}

func TestFilterThenSelectLaunchesMatch(t *testing.T) {
	launcher := &fakeLauncher{}
	h := NewHarness(newTestModel(gamesTree(), Options{Filter: true}, launcher))
	h.Press("shell")
	current := h.Model().currentLevel()
	if len(current.Items) != 1 || current.Items[0].Label != "Shell" {
		t.Fatalf("expected only Shell to match, got %#v", current.Items)
	}
	h.Press("enter")
	if len(launcher.launched) != 1 || launcher.launched[0].Label != "Shell" {
		t.Fatalf("expected Shell launched, got %#v", launcher.launched)
	}
	if current.Filter != "" || current.Cursor != 2 {
		t.Fatalf("expected filter cleared with Shell selected, filter %q cursor %d", current.Filter, current.Cursor)
	}
}

func TestFilterTypingKeepsLettersOutOfNavigation(t *testing.T) {
	h := NewHarness(newTestModel(gamesTree(), Options{Filter: true}, &fakeLauncher{}))
	h.Press("q", "j")
	if h.Quit() {
		t.Fatalf("expected q to be typed, not quit")
	}
	if got := h.Model().currentLevel().Filter; got != "qj" {
		t.Fatalf("expected filter 'qj', got %q", got)
	}
	h.Press("ctrl+u")
	if got := h.Model().currentLevel().Filter; got != "" {
		t.Fatalf("expected ctrl+u to clear filter, got %q", got)
	}
}
