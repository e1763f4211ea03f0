package nav

// Resolve walks from start in steps of step until it rests on a usable index
// or exits the list bounds. The returned value may be < 0 or >= l.Len() when
// no usable index exists in that direction; callers must bounds-check before
// using it as a list index.
func Resolve(l List, disabled DisabledIndices, start, step int) int {
	if l == nil || step == 0 {
		return start
	}
	i := start + step
	for i >= 0 && i < l.Len() && !usable(l, disabled, i) {
		i += step
	}
	return i
}

// MinIndex returns the first usable index, or a value < 0 when every slot is
// disabled or absent.
func MinIndex(l List, disabled DisabledIndices) int {
	if i := Resolve(l, disabled, -1, 1); i < l.Len() {
		return i
	}
	return -1
}

// MaxIndex returns the last usable index, or a value >= l.Len() when every
// slot is disabled or absent.
func MaxIndex(l List, disabled DisabledIndices) int {
	if i := Resolve(l, disabled, l.Len(), -1); i >= 0 {
		return i
	}
	return l.Len()
}
