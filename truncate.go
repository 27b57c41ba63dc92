package chronia

// Unit selects the calendar field Truncate keeps.
type Unit int

const (
	UnitYear Unit = iota
	UnitMonth
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
	UnitMillisecond
)

// Truncate zeroes every field of d smaller than u, so UnitMonth yields
// the first instant of d's month and UnitDay its local midnight. An
// unrecognized unit yields the invalid DateTime.
func Truncate(d DateTime, u Unit) DateTime {
	if !d.valid {
		return DateTime{}
	}
	year, month, day := d.Year(), d.Month(), d.Day()
	hour, min, sec, msec := d.Hour(), d.Minute(), d.Second(), d.Millisecond()
	switch u {
	case UnitYear:
		month, day, hour, min, sec, msec = 0, 1, 0, 0, 0, 0
	case UnitMonth:
		day, hour, min, sec, msec = 1, 0, 0, 0, 0
	case UnitDay:
		hour, min, sec, msec = 0, 0, 0, 0
	case UnitHour:
		min, sec, msec = 0, 0, 0
	case UnitMinute:
		sec, msec = 0, 0
	case UnitSecond:
		msec = 0
	case UnitMillisecond:
	default:
		return DateTime{}
	}
	return New(year, month, day, hour, min, sec, msec)
}
