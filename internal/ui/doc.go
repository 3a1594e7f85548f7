// Package ui contains the Bubble Tea program that drives the menu launcher.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own navigation, input, rendering, and launching.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes, finished launches).
//   - Key presses are translated by KeyMap into exactly one navigation command
//     and applied to the state.Navigator. The returned Outcome decides whether
//     the model redraws, launches an entry, or quits.
//   - Filter/input helpers (internal/ui/input.go) keep text entry concerns
//     isolated from navigation. They are only consulted when the filter is
//     enabled.
//
// State ownership:
//   - The navigator in internal/ui/state owns the stack of levels; each level
//     tracks its own entries, cursor, filter, and viewport offset.
//   - Launches run through the internal/ui/command bus. The launcher hands the
//     terminal to the child process via tea.Exec and reports back with a
//     launch.Finished message; navigation state is never touched by a launch.
package ui
