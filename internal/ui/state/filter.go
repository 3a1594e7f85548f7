package state

import (
	"strings"
	"unicode"

	"github.com/atomicstack/menu-launcher/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter replaces the query and re-filters the level. The unfiltered
// cursor is remembered when a query starts and restored when it is emptied;
// while a query is active the cursor lands on the best match.
func (l *Level) SetFilter(query string, cursor int) {
	was := strings.TrimSpace(l.Filter) != ""
	now := strings.TrimSpace(query) != ""
	if now && !was {
		l.LastCursor = l.Cursor
	}
	l.Filter = query
	l.FilterCursor = clamp(cursor, 0, len([]rune(query)))
	if now {
		l.Cursor = 0
	}
	l.applyFilter()

	switch {
	case now:
		if idx := BestMatchIndex(l.Items, query); idx >= 0 {
			l.Cursor = idx
		}
	case was:
		l.Cursor = 0
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		}
		l.LastCursor = -1
	}
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor, l.ViewportOffset = 0, 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, len(l.Items)-1)
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// ClearFilter drops the filter and moves the cursor onto the entry with the
// given ID in the unfiltered list.
func (l *Level) ClearFilter(id string) {
	if l.Filter == "" {
		return
	}
	l.Filter = ""
	l.FilterCursor = 0
	l.LastCursor = -1
	l.applyFilter()
	if idx := l.IndexOf(id); idx >= 0 {
		l.Cursor = idx
	}
}

func (l *Level) FilterCursorPos() int {
	return clamp(l.FilterCursor, 0, len([]rune(l.Filter)))
}

// editFilter rewrites the query through fn, which receives the query runes
// and the cursor and returns both updated. It reports whether the query
// changed.
func (l *Level) editFilter(fn func(query []rune, pos int) ([]rune, int)) bool {
	updated, pos := fn([]rune(l.Filter), l.FilterCursorPos())
	if string(updated) == l.Filter {
		return false
	}
	l.SetFilter(string(updated), pos)
	return true
}

func (l *Level) moveFilterCursor(to int) bool {
	if to == l.FilterCursorPos() {
		return false
	}
	l.FilterCursor = to
	return true
}

func (l *Level) InsertFilterText(text string) bool {
	insert := []rune(text)
	return l.editFilter(func(query []rune, pos int) ([]rune, int) {
		out := make([]rune, 0, len(query)+len(insert))
		out = append(out, query[:pos]...)
		out = append(out, insert...)
		return append(out, query[pos:]...), pos + len(insert)
	})
}

func (l *Level) DeleteFilterRuneBackward() bool {
	return l.editFilter(func(query []rune, pos int) ([]rune, int) {
		if pos == 0 {
			return query, pos
		}
		return append(query[:pos-1], query[pos:]...), pos - 1
	})
}

// DeleteFilterWordBackward removes the word before the cursor along with any
// spaces between it and the cursor.
func (l *Level) DeleteFilterWordBackward() bool {
	return l.editFilter(func(query []rune, pos int) ([]rune, int) {
		start := wordStart(query, pos)
		return append(query[:start], query[pos:]...), start
	})
}

func (l *Level) MoveFilterCursorStart() bool {
	return l.moveFilterCursor(0)
}

func (l *Level) MoveFilterCursorEnd() bool {
	return l.moveFilterCursor(len([]rune(l.Filter)))
}

func (l *Level) MoveFilterCursorWordBackward() bool {
	return l.moveFilterCursor(wordStart([]rune(l.Filter), l.FilterCursorPos()))
}

func (l *Level) MoveFilterCursorWordForward() bool {
	return l.moveFilterCursor(wordEnd([]rune(l.Filter), l.FilterCursorPos()))
}

func (l *Level) MoveFilterCursorRuneBackward() bool {
	return l.moveFilterCursor(clamp(l.FilterCursorPos()-1, 0, len([]rune(l.Filter))))
}

func (l *Level) MoveFilterCursorRuneForward() bool {
	return l.moveFilterCursor(clamp(l.FilterCursorPos()+1, 0, len([]rune(l.Filter))))
}

func wordStart(query []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(query[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(query[i-1]) {
		i--
	}
	return i
}

func wordEnd(query []rune, pos int) int {
	i := pos
	for i < len(query) && !unicode.IsSpace(query[i]) {
		i++
	}
	for i < len(query) && unicode.IsSpace(query[i]) {
		i++
	}
	return i
}

// FilterItems returns the entries whose labels fuzzy-match query, in menu
// order. A blank query keeps every entry.
func FilterItems(items []menu.Entry, query string) []menu.Entry {
	query = strings.TrimSpace(query)
	if query == "" {
		return CloneEntries(items)
	}
	matched := make([]bool, len(items))
	for _, rank := range rankLabels(items, query) {
		matched[rank.OriginalIndex] = true
	}
	filtered := make([]menu.Entry, 0, len(items))
	for i, item := range items {
		if matched[i] {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex picks where the cursor lands for query: an exact label,
// then a prefix, then a substring, then the closest fuzzy match. It returns
// -1 for no items and 0 when nothing matches.
func BestMatchIndex(items []menu.Entry, query string) int {
	if len(items) == 0 {
		return -1
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return 0
	}
	lower := strings.ToLower(query)
	passes := []func(label string) bool{
		func(label string) bool { return strings.EqualFold(label, query) },
		func(label string) bool { return strings.HasPrefix(strings.ToLower(label), lower) },
		func(label string) bool { return strings.Contains(strings.ToLower(label), lower) },
	}
	for _, match := range passes {
		for i, item := range items {
			if match(item.Label) {
				return i
			}
		}
	}

	best, bestDistance := -1, 0
	for _, rank := range rankLabels(items, query) {
		if best < 0 || rank.Distance < bestDistance ||
			(rank.Distance == bestDistance && rank.OriginalIndex < best) {
			best, bestDistance = rank.OriginalIndex, rank.Distance
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

func rankLabels(items []menu.Entry, query string) fuzzy.Ranks {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	return fuzzy.RankFindNormalizedFold(query, labels)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
