package menu

import (
	"strings"

	"github.com/atomicstack/menu-launcher/internal/format/table"
)

const outlineIndent = "  "

// Outline renders the tree one entry per line: the label indented by depth,
// then the command for leaves or a marker for sub-menus.
func (t Tree) Outline() string {
	rows := make([][]string, 0, t.Count())
	var walk func(entries []Entry, depth int)
	walk = func(entries []Entry, depth int) {
		for _, e := range entries {
			label := strings.Repeat(outlineIndent, depth) + e.Label
			if e.IsSubMenu() {
				rows = append(rows, []string{label, "›"})
				walk(e.Children, depth+1)
				continue
			}
			rows = append(rows, []string{label, e.Command.String()})
		}
	}
	walk(t.Root, 0)

	var b strings.Builder
	for _, line := range table.Format(rows, nil) {
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	return b.String()
}
