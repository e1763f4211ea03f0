package nav

// List is the navigable collection of popup item slots. Slots are addressed
// by a dense zero-based index; Len counts slots, not enabled items. A slot
// that is not yet mounted reports Present false and is treated exactly like a
// disabled item.
type List interface {
	Len() int
	Present(i int) bool
	ItemDisabled(i int) bool
	ItemID(i int) string
}

// DisabledIndices is an explicit disabled-index override. A nil value means
// "consult each item's innate disabled marker" instead.
type DisabledIndices []int

// Contains reports whether i is in the set.
func (d DisabledIndices) Contains(i int) bool {
	for _, v := range d {
		if v == i {
			return true
		}
	}
	return false
}

// usable is the single check deciding whether index i is a legal resting
// point for navigation. Out-of-bounds and absent slots are never usable.
func usable(l List, disabled DisabledIndices, i int) bool {
	if l == nil || i < 0 || i >= l.Len() {
		return false
	}
	if !l.Present(i) {
		return false
	}
	if disabled != nil {
		return !disabled.Contains(i)
	}
	return !l.ItemDisabled(i)
}
