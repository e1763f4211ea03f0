package nav

// nextLinearIndex computes the 1-D transition for a main-axis or boundary
// key. current may be -1 (nothing active) or the escape sentinel (list
// length); the return value uses the same encoding and may be out of bounds,
// which callers treat as "nothing active". page is the viewport size used by
// the page keys.
func nextLinearIndex(l List, o Options, current int, k Key, page int) int {
	d := o.DisabledIndices
	min := MinIndex(l, d)
	max := MaxIndex(l, d)
	n := l.Len()

	switch k {
	case KeyHome:
		return min
	case KeyEnd:
		return max
	case KeyPageDown:
		return pageMove(l, d, current, page)
	case KeyPageUp:
		return pageMove(l, d, current, -page)
	}

	forward := IsMoveToEndKey(k, o.Orientation, o.RTL)
	if current == -1 {
		if forward {
			return min
		}
		return max
	}

	escape := o.escapeActive()
	if forward {
		if !o.Loop {
			if t := Resolve(l, d, current, 1); t <= max {
				return t
			}
			return max
		}
		if current >= max {
			if escape && current != n {
				return n
			}
			return min
		}
		return Resolve(l, d, current, 1)
	}

	if !o.Loop {
		if t := Resolve(l, d, current, -1); t >= min {
			return t
		}
		return min
	}
	if current <= min {
		if escape {
			return -1
		}
		return max
	}
	return Resolve(l, d, current, -1)
}

// pageMove advances by up to |delta| usable indices in delta's direction,
// clamping at the list boundary. Page keys never wrap.
func pageMove(l List, d DisabledIndices, current, delta int) int {
	step := 1
	count := delta
	if delta < 0 {
		step = -1
		count = -delta
	}
	t := current
	for ; count > 0; count-- {
		nt := Resolve(l, d, t, step)
		if nt < 0 || nt >= l.Len() {
			break
		}
		t = nt
	}
	return t
}
