package chronia

// Diff functions report a minus b. The year, month and day variants
// count calendar boundaries crossed; the hour and smaller variants
// divide elapsed milliseconds, truncating toward zero. Either value
// being invalid makes every difference 0.

// DiffYears counts calendar-year boundaries between a and b: Dec 31
// 2024 and Jan 1 2025 are one year apart.
func DiffYears(a, b DateTime) int {
	if !a.valid || !b.valid {
		return 0
	}
	return a.Year() - b.Year()
}

// DiffMonths counts calendar-month boundaries between a and b.
func DiffMonths(a, b DateTime) int {
	if !a.valid || !b.valid {
		return 0
	}
	return (a.Year()-b.Year())*12 + a.Month() - b.Month()
}

// DiffDays counts calendar-day boundaries between a and b. It compares
// day numbers rather than elapsed time, so a daylight-saving transition
// between the two never skews the count.
func DiffDays(a, b DateTime) int {
	if !a.valid || !b.valid {
		return 0
	}
	return civilDay(a) - civilDay(b)
}

// DiffHours reports whole elapsed hours between a and b.
func DiffHours(a, b DateTime) int {
	return int(diffMillis(a, b) / millisPerHour)
}

// DiffMinutes reports whole elapsed minutes between a and b.
func DiffMinutes(a, b DateTime) int {
	return int(diffMillis(a, b) / millisPerMinute)
}

// DiffSeconds reports whole elapsed seconds between a and b.
func DiffSeconds(a, b DateTime) int {
	return int(diffMillis(a, b) / millisPerSecond)
}

// DiffMilliseconds reports elapsed milliseconds between a and b.
func DiffMilliseconds(a, b DateTime) int {
	return int(diffMillis(a, b))
}

func diffMillis(a, b DateTime) int64 {
	if !a.valid || !b.valid {
		return 0
	}
	return a.UnixMilli() - b.UnixMilli()
}

// daysBeforeMonth[m] counts the days in a non-leap year before 0-based
// month m begins.
var daysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// civilDay numbers d's calendar day on a continuous scale where
// 0001-01-01 is day zero. The year shift keeps the leap-count divisions
// exact for dates before year 1; it is a multiple of 400, so the leap
// pattern is unchanged.
func civilDay(d DateTime) int {
	y := d.Year() - 1 + 400000
	days := 365*y + y/4 - y/100 + y/400 - 146097000
	days += daysBeforeMonth[d.Month()]
	if d.Month() >= 2 && isLeapYear(d.Year()) {
		days++
	}
	return days + d.Day() - 1
}
