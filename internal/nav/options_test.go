package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAllowEscapeRequiresLoopAndVirtual(t *testing.T) {
	o := DefaultOptions()
	o.AllowEscape = true
	require.Len(t, o.Validate(), 1)

	o.Loop = true
	require.Len(t, o.Validate(), 1, "loop alone is not enough")

	o.Virtual = true
	require.Empty(t, o.Validate())
}

func TestValidateGridWantsOrientationBoth(t *testing.T) {
	o := DefaultOptions()
	o.Cols = 3
	warnings := o.Validate()
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0], "cols=3")

	o.Orientation = OrientationBoth
	require.Empty(t, o.Validate())
}

func TestNormalizedDefaults(t *testing.T) {
	o := Options{}
	n := o.normalized()
	require.Equal(t, OrientationVertical, n.Orientation)
	require.Equal(t, 1, n.Cols)
}
