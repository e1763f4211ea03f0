// Package ui contains the Bubble Tea program that powers the workspace
// launcher. The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own navigation, input, rendering,
// and state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each tea.Msg through a typed handler registry so every
//     message kind is handled by a focused function (key presses, mouse
//     events, frame ticks, loader completions, source updates).
//   - Key presses feed the per-level navigation engine (internal/nav), which
//     owns the active index, wrapping, grid movement, and focus scheduling.
//     Filter/input helpers (internal/ui/input.go) keep text entry concerns
//     isolated from the Bubble Tea event loop.
//
// State ownership:
//   - Menu level state lives in internal/ui/state.Level, which tracks items,
//     filtering, and viewport calculations, and doubles as the item list the
//     navigation engine reads.
//   - Each open popup level pairs a Level with its own nav.Engine and a
//     manual focus scheduler; Model flushes all schedulers when a frame tick
//     arrives, so focus lands exactly one frame after it was requested.
//   - Command execution is handled through the internal/ui/command package,
//     letting actions run asynchronously via the central command bus.
//
// Source interactions:
//   - A source.Watcher polls the workspace state file; Update waits for its
//     events and hands them to applySourceEvent, which refreshes the menu
//     context and any on-screen levels that depend on it.
//   - Asynchronous menu loaders run via tea.Cmd values returned by helper
//     functions (e.g., loadMenuCmd). When a loader completes, the typed
//     handler for categoryLoadedMsg pushes the new level onto the stack.
//
// This separation keeps Model.Update compact and makes it easier to test
// independent concerns (navigation, filtering, source sync) without needing
// to reason about the entire TUI at once.
package ui
