package state

import "github.com/atomicstack/menu-launcher/internal/menu"

// Level encapsulates menu level state such as cursor position, filter, and viewport.
type Level struct {
	ID             string
	Title          string
	Items          []menu.Entry
	Full           []menu.Entry
	Filter         string
	FilterCursor   int // rune offset into Filter
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level showing entries with the cursor on the first one.
func NewLevel(id, title string, entries []menu.Entry) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
	}
	l.UpdateItems(entries)
	return l
}

// IndexOf returns the index for a given entry identifier.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Selected returns the entry under the cursor.
func (l *Level) Selected() (menu.Entry, bool) {
	if l == nil || l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Entry{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the level entries, keeping the viewport where possible.
func (l *Level) UpdateItems(entries []menu.Entry) {
	prevOffset := l.ViewportOffset
	l.Full = CloneEntries(entries)
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}
