package menu

import "strings"

// Kind tags an Entry as either a launchable leaf or a sub-menu.
type Kind int

const (
	KindLeaf Kind = iota + 1
	KindSubMenu
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindSubMenu:
		return "submenu"
	default:
		return "invalid"
	}
}

// Command describes the process a leaf entry launches.
type Command struct {
	Raw  string
	Argv []string
	Dir  string
}

// Program returns the executable name, or "" for an empty command.
func (c Command) Program() string {
	if len(c.Argv) == 0 {
		return ""
	}
	return c.Argv[0]
}

func (c Command) String() string {
	if raw := strings.TrimSpace(c.Raw); raw != "" {
		return raw
	}
	return strings.Join(c.Argv, " ")
}

// Entry is a single menu row. Leaf entries carry a Command; sub-menu entries
// carry at least one child.
type Entry struct {
	ID       string
	Label    string
	Kind     Kind
	Command  Command
	Children []Entry
}

// NewLeaf builds a leaf entry.
func NewLeaf(id, label string, cmd Command) Entry {
	return Entry{ID: id, Label: label, Kind: KindLeaf, Command: cmd}
}

// NewSubMenu builds a sub-menu entry owning children.
func NewSubMenu(id, label string, children []Entry) Entry {
	return Entry{ID: id, Label: label, Kind: KindSubMenu, Children: children}
}

func (e Entry) IsLeaf() bool    { return e.Kind == KindLeaf }
func (e Entry) IsSubMenu() bool { return e.Kind == KindSubMenu }

// Tree is the immutable result of loading a menu file.
type Tree struct {
	Source string
	Root   []Entry
}

// Count returns the number of entries in the tree, including nested ones.
func (t Tree) Count() int {
	return countEntries(t.Root)
}

func countEntries(entries []Entry) int {
	total := len(entries)
	for _, e := range entries {
		total += countEntries(e.Children)
	}
	return total
}
