package chronia

// Compare orders a and b on the millisecond timeline, returning -1, 0
// or +1. Invalid values compare equal to each other and before every
// valid value, keeping the ordering total for sorting.
func Compare(a, b DateTime) int {
	switch {
	case !a.valid && !b.valid:
		return 0
	case !a.valid:
		return -1
	case !b.valid:
		return 1
	}
	am, bm := a.UnixMilli(), b.UnixMilli()
	switch {
	case am < bm:
		return -1
	case am > bm:
		return 1
	}
	return 0
}

// Min returns the earlier of a and b, or the invalid DateTime when
// either is invalid.
func Min(a, b DateTime) DateTime {
	if !a.valid || !b.valid {
		return DateTime{}
	}
	if b.UnixMilli() < a.UnixMilli() {
		return b
	}
	return a
}

// Max returns the later of a and b, or the invalid DateTime when either
// is invalid.
func Max(a, b DateTime) DateTime {
	if !a.valid || !b.valid {
		return DateTime{}
	}
	if b.UnixMilli() > a.UnixMilli() {
		return b
	}
	return a
}

// Clamp confines d to the interval [lo, hi].
func Clamp(d, lo, hi DateTime) DateTime {
	return Min(Max(d, lo), hi)
}
