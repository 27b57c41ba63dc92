package chronia

// Predicates answer false whenever any argument is invalid; invalidity
// never satisfies a comparison.

// IsBefore reports whether a is strictly earlier than b.
func IsBefore(a, b DateTime) bool {
	return a.valid && b.valid && a.UnixMilli() < b.UnixMilli()
}

// IsAfter reports whether a is strictly later than b.
func IsAfter(a, b DateTime) bool {
	return a.valid && b.valid && a.UnixMilli() > b.UnixMilli()
}

// IsEqual reports whether a and b name the same millisecond instant.
func IsEqual(a, b DateTime) bool {
	return a.valid && b.valid && a.UnixMilli() == b.UnixMilli()
}

// IsPast reports whether d lies before the moment of the call.
func IsPast(d DateTime) bool {
	return IsBefore(d, Now())
}

// IsFuture reports whether d lies after the moment of the call.
func IsFuture(d DateTime) bool {
	return IsAfter(d, Now())
}

// IsSameYear reports whether a and b fall in the same local calendar
// year.
func IsSameYear(a, b DateTime) bool {
	return sameTruncated(a, b, UnitYear)
}

// IsSameMonth reports whether a and b fall in the same month of the
// same year.
func IsSameMonth(a, b DateTime) bool {
	return sameTruncated(a, b, UnitMonth)
}

// IsSameDay reports whether a and b fall on the same local calendar
// day.
func IsSameDay(a, b DateTime) bool {
	return sameTruncated(a, b, UnitDay)
}

// IsSameHour reports whether a and b fall within the same clock hour of
// the same day.
func IsSameHour(a, b DateTime) bool {
	return sameTruncated(a, b, UnitHour)
}

// IsSameMinute reports whether a and b fall within the same clock
// minute.
func IsSameMinute(a, b DateTime) bool {
	return sameTruncated(a, b, UnitMinute)
}

// IsSameSecond reports whether a and b fall within the same clock
// second.
func IsSameSecond(a, b DateTime) bool {
	return sameTruncated(a, b, UnitSecond)
}

func sameTruncated(a, b DateTime, u Unit) bool {
	if !a.valid || !b.valid {
		return false
	}
	return Truncate(a, u).UnixMilli() == Truncate(b, u).UnixMilli()
}
