package ui

import (
	"testing"

	"github.com/atomicstack/menu-launcher/internal/ui/state"
)

func TestKeyMapTranslate(t *testing.T) {
	cases := []struct {
		name   string
		key    string
		filter bool
		atRoot bool
		want   state.Command
		ok     bool
	}{
		{name: "up arrow", key: "up", want: state.MoveUp, ok: true},
		{name: "down arrow", key: "down", want: state.MoveDown, ok: true},
		{name: "enter", key: "enter", want: state.Select, ok: true},
		{name: "esc nested", key: "esc", want: state.Back, ok: true},
		{name: "esc at root", key: "esc", atRoot: true, want: state.Exit, ok: true},
		{name: "ctrl+c", key: "ctrl+c", want: state.Exit, ok: true},
		{name: "ctrl+c with filter", key: "ctrl+c", filter: true, want: state.Exit, ok: true},
		{name: "vi up", key: "k", want: state.MoveUp, ok: true},
		{name: "vi down", key: "j", want: state.MoveDown, ok: true},
		{name: "q quits", key: "q", want: state.Exit, ok: true},
		{name: "vi up with filter", key: "k", filter: true, want: state.CommandNone},
		{name: "q with filter", key: "q", filter: true, want: state.CommandNone},
		{name: "unknown rune", key: "x", want: state.CommandNone},
		{name: "paging is not navigation", key: "pgdown", want: state.CommandNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DefaultKeyMap(tc.filter).Translate(keyMsg(tc.key), tc.atRoot)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("expected (%v, %v), got (%v, %v)", tc.want, tc.ok, got, ok)
			}
		})
	}
}

func TestKeyMapHelpHidesDisabledBindings(t *testing.T) {
	km := DefaultKeyMap(false)
	if km.ClearFilter.Enabled() {
		t.Fatalf("expected clear-filter binding disabled without filter")
	}
	km = DefaultKeyMap(true)
	if km.Quit.Enabled() {
		t.Fatalf("expected q binding disabled with filter")
	}
	if !km.ClearFilter.Enabled() {
		t.Fatalf("expected clear-filter binding enabled with filter")
	}
}
