package chronia

// AddYears shifts d by n calendar years, clamping the day to the end of
// the target month when it would overflow: Feb 29 plus one year lands
// on Feb 28.
func AddYears(d DateTime, n int) DateTime {
	return AddMonths(d, 12*n)
}

// AddMonths shifts d by n calendar months with the same end-of-month
// clamp: Jan 31 plus one month lands on Feb 28 or 29.
func AddMonths(d DateTime, n int) DateTime {
	if !d.valid {
		return DateTime{}
	}
	months := d.Year()*12 + d.Month() + n
	year, month := months/12, months%12
	if month < 0 {
		year--
		month += 12
	}
	day := d.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return New(year, month, day, d.Hour(), d.Minute(), d.Second(), d.Millisecond())
}

// AddDays shifts d by whole days on the millisecond timeline. Around a
// daylight-saving transition the local clock reading moves with the
// offset change.
func AddDays(d DateTime, n int) DateTime {
	return addMillis(d, int64(n)*millisPerDay)
}

// AddHours shifts d by whole hours.
func AddHours(d DateTime, n int) DateTime {
	return addMillis(d, int64(n)*millisPerHour)
}

// AddMinutes shifts d by whole minutes.
func AddMinutes(d DateTime, n int) DateTime {
	return addMillis(d, int64(n)*millisPerMinute)
}

// AddSeconds shifts d by whole seconds.
func AddSeconds(d DateTime, n int) DateTime {
	return addMillis(d, int64(n)*millisPerSecond)
}

// AddMilliseconds shifts d by n milliseconds.
func AddMilliseconds(d DateTime, n int) DateTime {
	return addMillis(d, int64(n))
}

func addMillis(d DateTime, ms int64) DateTime {
	if !d.valid {
		return DateTime{}
	}
	return FromUnixMilli(d.UnixMilli() + ms)
}

// SubYears is AddYears with the sign flipped.
func SubYears(d DateTime, n int) DateTime { return AddYears(d, -n) }

// SubMonths is AddMonths with the sign flipped.
func SubMonths(d DateTime, n int) DateTime { return AddMonths(d, -n) }

// SubDays is AddDays with the sign flipped.
func SubDays(d DateTime, n int) DateTime { return AddDays(d, -n) }

// SubHours is AddHours with the sign flipped.
func SubHours(d DateTime, n int) DateTime { return AddHours(d, -n) }

// SubMinutes is AddMinutes with the sign flipped.
func SubMinutes(d DateTime, n int) DateTime { return AddMinutes(d, -n) }

// SubSeconds is AddSeconds with the sign flipped.
func SubSeconds(d DateTime, n int) DateTime { return AddSeconds(d, -n) }

// SubMilliseconds is AddMilliseconds with the sign flipped.
func SubMilliseconds(d DateTime, n int) DateTime { return AddMilliseconds(d, -n) }
