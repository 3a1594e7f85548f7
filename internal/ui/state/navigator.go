package state

import "github.com/atomicstack/menu-launcher/internal/menu"

// RootID identifies the level built from the top of the menu tree.
const RootID = "root"

// Command is a navigation request produced by the key map.
type Command int

const (
	CommandNone Command = iota
	MoveUp
	MoveDown
	Select
	Back
	Exit
)

func (c Command) String() string {
	switch c {
	case MoveUp:
		return "move-up"
	case MoveDown:
		return "move-down"
	case Select:
		return "select"
	case Back:
		return "back"
	case Exit:
		return "exit"
	default:
		return "none"
	}
}

// OutcomeKind tells the caller what applying a Command did.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeMoved
	OutcomeDescend
	OutcomeAscend
	OutcomeLaunch
	OutcomeExit
)

// Outcome is the result of Navigator.Apply. Entry is set for OutcomeLaunch
// and OutcomeDescend.
type Outcome struct {
	Kind  OutcomeKind
	Entry menu.Entry
}

// Navigator owns the stack of visited levels. The top of the stack is the
// level on screen; everything beneath it is the path back to the root. Each
// level keeps its own cursor, so popping a level restores the parent's
// selection exactly.
type Navigator struct {
	stack []*Level
}

// NewNavigator starts at the root of the tree with the first entry selected.
func NewNavigator(title string, root []menu.Entry) *Navigator {
	return &Navigator{stack: []*Level{NewLevel(RootID, title, root)}}
}

// Current returns the level on screen.
func (n *Navigator) Current() *Level {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// Depth is the number of sub-menus entered below the root.
func (n *Navigator) Depth() int {
	return len(n.stack) - 1
}

func (n *Navigator) AtRoot() bool {
	return len(n.stack) <= 1
}

// Breadcrumbs returns the level titles from the root to the current level.
func (n *Navigator) Breadcrumbs() []string {
	out := make([]string, 0, len(n.stack))
	for _, l := range n.stack {
		out = append(out, l.Title)
	}
	return out
}

// Apply mutates the navigation state for cmd and reports what happened.
// Launch requests leave the state untouched.
func (n *Navigator) Apply(cmd Command) Outcome {
	current := n.Current()
	if current == nil {
		return Outcome{Kind: OutcomeExit}
	}
	switch cmd {
	case MoveUp:
		if current.MoveCursorUp() {
			return Outcome{Kind: OutcomeMoved}
		}
	case MoveDown:
		if current.MoveCursorDown() {
			return Outcome{Kind: OutcomeMoved}
		}
	case Select:
		return n.selectCurrent(current)
	case Back:
		if n.AtRoot() {
			return Outcome{Kind: OutcomeExit}
		}
		n.stack = n.stack[:len(n.stack)-1]
		if parent := n.Current(); parent != nil {
			parent.LastCursor = -1
		}
		return Outcome{Kind: OutcomeAscend}
	case Exit:
		return Outcome{Kind: OutcomeExit}
	}
	return Outcome{Kind: OutcomeNone}
}

func (n *Navigator) selectCurrent(current *Level) Outcome {
	entry, ok := current.Selected()
	if !ok {
		return Outcome{Kind: OutcomeNone}
	}
	current.ClearFilter(entry.ID)
	if entry.IsLeaf() {
		return Outcome{Kind: OutcomeLaunch, Entry: entry}
	}
	n.stack = append(n.stack, NewLevel(entry.ID, entry.Label, entry.Children))
	return Outcome{Kind: OutcomeDescend, Entry: entry}
}
