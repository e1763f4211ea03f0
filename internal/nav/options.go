package nav

import "fmt"

// FocusOnOpen controls whether the initial item receives focus when the
// popup opens.
type FocusOnOpen int

const (
	// FocusOnOpenAuto focuses the initial item only when the open was
	// triggered by a key press.
	FocusOnOpenAuto FocusOnOpen = iota
	FocusOnOpenAlways
	FocusOnOpenNever
)

// Options is the engine configuration surface.
type Options struct {
	// Enabled turns the whole engine on or off.
	Enabled bool
	// SelectedIndex is synced as the active index when the popup opens.
	// Negative means no pre-selection.
	SelectedIndex int
	FocusItemOnOpen  FocusOnOpen
	FocusItemOnHover bool
	// OpenOnArrowKeyDown asks the open/close owner to open the popup when a
	// main-axis arrow lands on the reference while closed.
	OpenOnArrowKeyDown bool
	// DisabledIndices overrides the per-item disabled markers when non-nil.
	DisabledIndices DisabledIndices
	// AllowEscape lets the active selection pass through "nothing focused"
	// once per wraparound lap. Only meaningful with Loop and Virtual.
	AllowEscape bool
	Loop        bool
	// Nested marks this popup as a submenu opened by cross-axis keys.
	Nested  bool
	RTL     bool
	Virtual bool
	Orientation Orientation
	// Cols splits the index space into rows of Cols cells. 1 means a linear
	// list.
	Cols int
}

// DefaultOptions returns the baseline configuration: an enabled vertical
// list with hover highlighting and arrow-key opening.
func DefaultOptions() Options {
	return Options{
		Enabled:            true,
		SelectedIndex:      -1,
		FocusItemOnHover:   true,
		OpenOnArrowKeyDown: true,
		Orientation:        OrientationVertical,
		Cols:               1,
	}
}

func (o Options) normalized() Options {
	if o.Orientation == "" {
		o.Orientation = OrientationVertical
	}
	if o.Cols < 1 {
		o.Cols = 1
	}
	return o
}

// escapeActive reports whether the escape policy is in force.
func (o Options) escapeActive() bool {
	return o.AllowEscape && o.Loop && o.Virtual
}

// Validate reports non-fatal configuration warnings. The engine degrades
// gracefully in every flagged case.
func (o Options) Validate() []string {
	o = o.normalized()
	var warnings []string
	if o.AllowEscape && !(o.Loop && o.Virtual) {
		warnings = append(warnings, "allowEscape requires loop and virtual; escape behaviour is disabled")
	}
	if o.Cols > 1 && o.Orientation != OrientationBoth {
		warnings = append(warnings, fmt.Sprintf("cols=%d with orientation %q; only the configured axis responds", o.Cols, o.Orientation))
	}
	return warnings
}
