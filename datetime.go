package chronia

import "time"

// maxUnixMilli bounds the representable range at one hundred million days
// on either side of the Unix epoch (roughly ±273,790 years). Instants
// outside it collapse to the invalid sentinel.
const maxUnixMilli = 100_000_000 * millisPerDay

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
)

// DateTime is an instant on the proleptic Gregorian calendar with
// millisecond precision. Field accessors observe the instant in the host's
// local time zone, which is also the calendar the arithmetic, predicate and
// format/parse helpers use.
//
// The zero value is the invalid sentinel: IsValid reports false, every
// field accessor returns -1, and every operation deriving a DateTime from
// it yields the sentinel again. Malformed input never panics; it surfaces
// as this sentinel.
type DateTime struct {
	t     time.Time
	valid bool
}

// New assembles a DateTime from calendar components in the local time zone.
// month is 0-based (January is 0), matching the field model used
// throughout the package. msec is the millisecond within the second.
//
// Out-of-range components normalize the way time.Date normalizes them:
// month 12 rolls into January of the following year, day 0 is the last day
// of the previous month, and so on.
func New(year, month, day, hour, min, sec, msec int) DateTime {
	t := time.Date(year, time.Month(month+1), day, hour, min, sec, msec*int(time.Millisecond), time.Local)
	return clampRange(t)
}

// FromTime converts a time.Time, truncating to millisecond precision.
func FromTime(t time.Time) DateTime {
	return FromUnixMilli(t.UnixMilli())
}

// FromUnixMilli converts a count of milliseconds since the Unix epoch.
func FromUnixMilli(msec int64) DateTime {
	if msec < -maxUnixMilli || msec > maxUnixMilli {
		return DateTime{}
	}
	return DateTime{t: time.UnixMilli(msec), valid: true}
}

// Now returns the current instant at millisecond precision.
func Now() DateTime {
	return FromTime(time.Now())
}

func clampRange(t time.Time) DateTime {
	return FromUnixMilli(t.UnixMilli())
}

// IsValid reports whether d holds a real instant. The invalid sentinel is
// produced by failed parses, out-of-range arithmetic and the zero value.
func (d DateTime) IsValid() bool {
	return d.valid
}

// Time returns the underlying time.Time in the local zone, or the zero
// time.Time when d is invalid.
func (d DateTime) Time() time.Time {
	if !d.valid {
		return time.Time{}
	}
	return d.t
}

// UnixMilli returns the instant as milliseconds since the Unix epoch.
// For the invalid sentinel it returns InvalidUnixMilli.
func (d DateTime) UnixMilli() int64 {
	if !d.valid {
		return InvalidUnixMilli
	}
	return d.t.UnixMilli()
}

// InvalidUnixMilli is the numeric stand-in UnixMilli reports for the
// invalid sentinel. It lies far outside the representable range.
const InvalidUnixMilli int64 = -1 << 63

// Year returns the astronomical year: year 1 is 1 AD, year 0 is 1 BC,
// year -1 is 2 BC.
func (d DateTime) Year() int {
	if !d.valid {
		return -1
	}
	return d.t.Year()
}

// Month returns the 0-based month: January is 0, December is 11.
func (d DateTime) Month() int {
	if !d.valid {
		return -1
	}
	return int(d.t.Month()) - 1
}

// Day returns the day of the month, 1 to 31.
func (d DateTime) Day() int {
	if !d.valid {
		return -1
	}
	return d.t.Day()
}

// Hour returns the hour of the day, 0 to 23.
func (d DateTime) Hour() int {
	if !d.valid {
		return -1
	}
	return d.t.Hour()
}

// Minute returns the minute within the hour, 0 to 59.
func (d DateTime) Minute() int {
	if !d.valid {
		return -1
	}
	return d.t.Minute()
}

// Second returns the second within the minute, 0 to 59.
func (d DateTime) Second() int {
	if !d.valid {
		return -1
	}
	return d.t.Second()
}

// Millisecond returns the millisecond within the second, 0 to 999.
func (d DateTime) Millisecond() int {
	if !d.valid {
		return -1
	}
	return d.t.Nanosecond() / int(time.Millisecond)
}

// Weekday returns the day of the week, 0 (Sunday) to 6 (Saturday).
func (d DateTime) Weekday() int {
	if !d.valid {
		return -1
	}
	return int(d.t.Weekday())
}

// DayOfYear returns the 1-based ordinal day within the year, 1 to 366.
func (d DateTime) DayOfYear() int {
	if !d.valid {
		return -1
	}
	return d.t.YearDay()
}

// String renders the instant as an unambiguous sortable timestamp, or
// "invalid date" for the sentinel. Use Format for anything user-facing.
func (d DateTime) String() string {
	if !d.valid {
		return "invalid date"
	}
	return Format(d, "yyyy-MM-dd HH:mm:ss.SSS")
}

// isLeapYear is the single leap-year predicate every component of the
// package shares, including day-of-year parse validation.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInYear(year int) int {
	if isLeapYear(year) {
		return 366
	}
	return 365
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysInMonth returns the length of the 0-based month in the given year.
func daysInMonth(year, month int) int {
	if month == 1 && isLeapYear(year) {
		return 29
	}
	return monthDays[month]
}
