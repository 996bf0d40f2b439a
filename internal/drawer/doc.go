// Package drawer implements the interaction state machine of a responsive
// overlay drawer: a bottom sheet on narrow viewports and a side panel on wide
// ones.
//
// The package does not render anything. A host (see internal/ui/components)
// feeds it the caller's open flag, pointer input, timer callbacks and
// animation-completion signals, and renders from State, Mode and Offset.
//
// # Lifecycle
//
//	Closed --SetOpen(true)--> Opening --AnimationComplete--> Open
//	Open/Opening --SetOpen(false) | RequestClose--> Closing
//	Closing --AnimationComplete | fallback timer--> Closed
//	any --Teardown--> Closed
//
// The scroll lock is engaged exactly while the state is Opening or Open.
//
// # Timers
//
// All timers go through a Scheduler. Every open or close bumps the
// generation; callbacks and completion signals from an older generation are
// ignored, and pending timers are cancelled when a transition supersedes
// them.
//
// # Gestures
//
// In Sheet mode a press that starts on the drag handle is tracked. The raw
// delta is passed through ElasticOffset, and on release ShouldDismiss decides
// between closing and a spring snap-back to the resting offset.
package drawer
