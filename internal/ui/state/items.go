package state

import "github.com/atomicstack/menu-launcher/internal/menu"

// CloneEntries produces a shallow copy of the provided menu entries.
func CloneEntries(entries []menu.Entry) []menu.Entry {
	dup := make([]menu.Entry, len(entries))
	copy(dup, entries)
	return dup
}
