package nav

// Key identifies a navigation-relevant key press. Values follow the string
// form produced by Bubble Tea key messages so callers can pass them through
// unchanged.
type Key string

const (
	KeyNone     Key = ""
	KeyUp       Key = "up"
	KeyDown     Key = "down"
	KeyLeft     Key = "left"
	KeyRight    Key = "right"
	KeyHome     Key = "home"
	KeyEnd      Key = "end"
	KeyPageUp   Key = "pgup"
	KeyPageDown Key = "pgdown"
	KeyEnter    Key = "enter"
	KeySpace    Key = " "
)

// Orientation selects which arrow axis traverses the list.
type Orientation string

const (
	OrientationVertical   Orientation = "vertical"
	OrientationHorizontal Orientation = "horizontal"
	OrientationBoth       Orientation = "both"
)

func isActivationKey(k Key) bool {
	return k == KeyEnter || k == KeySpace || k == KeyNone
}

// IsMainAxisKey reports whether k traverses the list for the given
// orientation. Orientation "both" makes every arrow main-axis-eligible.
func IsMainAxisKey(k Key, o Orientation) bool {
	switch k {
	case KeyUp, KeyDown:
		return o == OrientationVertical || o == OrientationBoth
	case KeyLeft, KeyRight:
		return o == OrientationHorizontal || o == OrientationBoth
	}
	return false
}

// IsMoveToEndKey reports whether k moves the active index toward the end of
// the main axis. Activation keys count as end-type so that activation and
// "end" share the boundary-reset behaviour on open.
func IsMoveToEndKey(k Key, o Orientation, rtl bool) bool {
	if isActivationKey(k) {
		return true
	}
	if k == KeyDown && (o == OrientationVertical || o == OrientationBoth) {
		return true
	}
	if o == OrientationHorizontal || o == OrientationBoth {
		if rtl {
			return k == KeyLeft
		}
		return k == KeyRight
	}
	return false
}

// IsMoveToStartKey reports whether k moves the active index toward the start
// of the main axis.
func IsMoveToStartKey(k Key, o Orientation, rtl bool) bool {
	if k == KeyUp && (o == OrientationVertical || o == OrientationBoth) {
		return true
	}
	if o == OrientationHorizontal || o == OrientationBoth {
		if rtl {
			return k == KeyRight
		}
		return k == KeyLeft
	}
	return false
}

// IsCrossAxisOpenKey reports whether k opens a nested submenu from its parent
// list. The open arrow points away from the main axis and mirrors under RTL.
func IsCrossAxisOpenKey(k Key, o Orientation, rtl bool) bool {
	switch o {
	case OrientationVertical:
		if rtl {
			return k == KeyLeft
		}
		return k == KeyRight
	case OrientationHorizontal:
		return k == KeyDown
	}
	return false
}

// IsCrossAxisCloseKey reports whether k closes a nested submenu, returning
// focus to the parent list.
func IsCrossAxisCloseKey(k Key, o Orientation, rtl bool) bool {
	switch o {
	case OrientationVertical:
		if rtl {
			return k == KeyRight
		}
		return k == KeyLeft
	case OrientationHorizontal:
		return k == KeyUp
	}
	return false
}
