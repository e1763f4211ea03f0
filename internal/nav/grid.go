package nav

// nextGridIndex computes the 2-D transition for an arrow key when Cols > 1.
// Up/Down step by whole rows through the resolver; Left/Right stay within the
// starting row. When the orientation restricts the grid to a single axis,
// only that axis responds.
func nextGridIndex(l List, o Options, current int, k Key) int {
	d := o.DisabledIndices
	cols := o.Cols
	n := l.Len()

	if current < 0 || current >= n {
		if IsMoveToEndKey(k, o.Orientation, o.RTL) {
			return MinIndex(l, d)
		}
		return MaxIndex(l, d)
	}

	vertical := o.Orientation == OrientationBoth || o.Orientation == OrientationVertical
	horizontal := o.Orientation == OrientationBoth || o.Orientation == OrientationHorizontal

	switch k {
	case KeyUp, KeyDown:
		if !vertical {
			return current
		}
		step := cols
		if k == KeyUp {
			step = -cols
		}
		if t := Resolve(l, d, current, step); t >= 0 && t < n {
			return t
		}
		if !o.Loop {
			return current
		}
		return wrapColumn(l, d, current, cols, k == KeyDown)
	case KeyLeft, KeyRight:
		if !horizontal {
			return current
		}
		forward := k == KeyRight
		if o.RTL {
			forward = !forward
		}
		return rowMove(l, d, current, cols, forward, o.Loop)
	}
	return current
}

// wrapColumn picks the landing cell for a vertical wraparound: the nearest
// usable cell in the same column at the opposite row-end, else the nearest
// earlier usable index, else the current cell. The exact fallback order is a
// policy choice, not a provable rule.
func wrapColumn(l List, d DisabledIndices, current, cols int, down bool) int {
	n := l.Len()
	col := current % cols
	if down {
		for cand := col; cand < current; cand += cols {
			if usable(l, d, cand) {
				return cand
			}
		}
		for cand := col - 1; cand >= 0; cand-- {
			if usable(l, d, cand) {
				return cand
			}
		}
		return current
	}
	last := col + ((n-1-col)/cols)*cols
	for cand := last; cand > current; cand -= cols {
		if usable(l, d, cand) {
			return cand
		}
	}
	for cand := last - 1; cand > current; cand-- {
		if usable(l, d, cand) {
			return cand
		}
	}
	return current
}

// rowMove steps one cell along the row, clamping or wrapping at the row
// boundary. A result landing on a different row than the start is rejected
// and the previous index kept.
func rowMove(l List, d DisabledIndices, current, cols int, forward, loop bool) int {
	n := l.Len()
	row := current / cols
	step := 1
	if !forward {
		step = -1
	}
	if t := Resolve(l, d, current, step); t >= 0 && t < n && t/cols == row {
		return t
	}
	if !loop {
		return current
	}
	rowStart := row * cols
	rowEnd := rowStart + cols - 1
	if rowEnd > n-1 {
		rowEnd = n - 1
	}
	if forward {
		for cand := rowStart; cand < current; cand++ {
			if usable(l, d, cand) {
				return cand
			}
		}
	} else {
		for cand := rowEnd; cand > current; cand-- {
			if usable(l, d, cand) {
				return cand
			}
		}
	}
	return current
}
