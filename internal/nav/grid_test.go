package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func gridOpts(loop bool) Options {
	o := DefaultOptions()
	o.Orientation = OrientationBoth
	o.Cols = 3
	o.Loop = loop
	return o
}

func TestGridBasicMoves(t *testing.T) {
	l := newTestList(9)
	o := gridOpts(false)

	require.Equal(t, 1, nextGridIndex(l, o, 0, KeyRight))
	require.Equal(t, 3, nextGridIndex(l, o, 0, KeyDown))
	require.Equal(t, 4, nextGridIndex(l, o, 5, KeyLeft))
	require.Equal(t, 2, nextGridIndex(l, o, 5, KeyUp))
}

func TestGridVerticalWrapSameColumn(t *testing.T) {
	l := newTestList(9)
	o := gridOpts(true)

	require.Equal(t, 2, nextGridIndex(l, o, 8, KeyDown))
	require.Equal(t, 6, nextGridIndex(l, o, 0, KeyUp))
}

func TestGridVerticalNoLoopIsNoOp(t *testing.T) {
	l := newTestList(9)
	o := gridOpts(false)

	require.Equal(t, 8, nextGridIndex(l, o, 8, KeyDown))
	require.Equal(t, 0, nextGridIndex(l, o, 0, KeyUp))
}

func TestGridVerticalStepSkipsDisabledRow(t *testing.T) {
	l := newTestList(9).disable(4)
	o := gridOpts(false)

	// The resolver keeps stepping by whole rows over the disabled cell.
	require.Equal(t, 7, nextGridIndex(l, o, 1, KeyDown))
}

func TestGridWrapFallsBackOffDisabledColumnTarget(t *testing.T) {
	l := newTestList(9).disable(2)
	o := gridOpts(true)

	// Ideal wrap target (top of column 2) is disabled; the next cell in the
	// same column wins, then the nearest earlier index.
	require.Equal(t, 5, nextGridIndex(l, o, 8, KeyDown))

	l2 := newTestList(9).disable(2, 5)
	require.Equal(t, 1, nextGridIndex(l2, o, 8, KeyDown))
}

func TestGridHorizontalRowConstrained(t *testing.T) {
	l := newTestList(9)

	// Without loop the row edge clamps.
	o := gridOpts(false)
	require.Equal(t, 2, nextGridIndex(l, o, 2, KeyRight))
	require.Equal(t, 3, nextGridIndex(l, o, 3, KeyLeft))

	// With loop the move wraps to the opposite end of the same row.
	o = gridOpts(true)
	require.Equal(t, 0, nextGridIndex(l, o, 2, KeyRight))
	require.Equal(t, 5, nextGridIndex(l, o, 3, KeyLeft))
}

func TestGridHorizontalRejectsRowCrossing(t *testing.T) {
	// Row 1 is 3..5; 4 and 5 disabled, so a step right from 3 resolves past
	// the row. The move must keep the previous index rather than change rows.
	l := newTestList(9).disable(4, 5)
	o := gridOpts(false)
	require.Equal(t, 3, nextGridIndex(l, o, 3, KeyRight))

	// With loop there is still no other usable cell in the row.
	o = gridOpts(true)
	require.Equal(t, 3, nextGridIndex(l, o, 3, KeyRight))
}

func TestGridShortLastRow(t *testing.T) {
	// 7 items, 3 cols: the last row holds only index 6, so column 1 ends at
	// index 4 and wraps between 1 and 4.
	l := newTestList(7)
	o := gridOpts(true)

	require.Equal(t, 1, nextGridIndex(l, o, 4, KeyDown))
	require.Equal(t, 4, nextGridIndex(l, o, 1, KeyUp))
}

func TestGridRTLSwapsHorizontalDirection(t *testing.T) {
	l := newTestList(9)
	o := gridOpts(false)
	o.RTL = true

	require.Equal(t, 0, nextGridIndex(l, o, 1, KeyRight))
	require.Equal(t, 2, nextGridIndex(l, o, 1, KeyLeft))
}

func TestGridSingleAxisOrientationOnlyConfiguredAxisResponds(t *testing.T) {
	l := newTestList(9)
	o := gridOpts(false)
	o.Orientation = OrientationVertical

	require.Equal(t, 3, nextGridIndex(l, o, 0, KeyDown), "vertical axis still does row arithmetic")
	require.Equal(t, 0, nextGridIndex(l, o, 0, KeyRight), "horizontal axis must not respond")

	o.Orientation = OrientationHorizontal
	require.Equal(t, 1, nextGridIndex(l, o, 0, KeyRight))
	require.Equal(t, 0, nextGridIndex(l, o, 0, KeyDown))
}
