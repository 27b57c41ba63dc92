package chronia

import (
	"strconv"
	"strings"
)

// invalidNumeric is the canonical rendering of any numeric field of the
// invalid sentinel. Formatting is total; invalidity stays detectable in
// the output instead of surfacing as a panic or error.
const invalidNumeric = "NaN"

// formatFunc renders one token. width is the letter repeat count of the
// token run; loc has already been defaulted by the engine.
type formatFunc func(d DateTime, width int, loc *Locale) string

// formatters dispatches token symbols to renderers. Together with the
// parsers table it fixes the closed token vocabulary:
//
//	G era        y year        M month     d day of month
//	D day of year               E weekday
//	H hour (24)  h hour (12)   m minute    s second
//	S millisecond               a day period
var formatters = map[byte]formatFunc{
	'G': formatEra,
	'y': formatYear,
	'M': formatMonth,
	'd': formatDay,
	'D': formatDayOfYear,
	'E': formatWeekday,
	'H': formatHour24,
	'h': formatHour12,
	'm': formatMinute,
	's': formatSecond,
	'S': formatMillisecond,
	'a': formatDayPeriod,
}

// Format renders d according to pattern. Token letters select fields and
// their repeat count selects width; single quotes delimit literal text
// ('' emits one quote); all other characters pass through verbatim.
//
// Formatting never fails: an invalid d renders numeric fields as the
// invalid-numeric marker, and text fields degrade to the out-of-range
// name lookups they resolve to.
func Format(d DateTime, pattern string, opts ...Option) string {
	o := buildOptions(opts)
	loc := resolveLocale(o.locale)

	var sb strings.Builder
	sb.Grow(len(pattern) + 8)
	for _, seg := range compiledPattern(pattern) {
		if seg.symbol == 0 {
			sb.WriteString(seg.literal)
			continue
		}
		sb.WriteString(formatters[seg.symbol](d, seg.width, loc))
	}
	return sb.String()
}

// padZero renders v in decimal, zero-padded to at least width digits.
func padZero(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func formatEra(d DateTime, width int, loc *Locale) string {
	idx := 0
	if d.Year() > 0 {
		idx = 1
	}
	return loc.Eras.name(widthForToken(width), idx)
}

// formatYear displays astronomical years the calendar-era way: year 0 is
// 1 BC and year -1 is 2 BC, so the rendered magnitude for year <= 0 is
// 1-year and a G token carries the sign instead.
func formatYear(d DateTime, width int, _ *Locale) string {
	if !d.valid {
		return invalidNumeric
	}
	display := d.Year()
	if display <= 0 {
		display = 1 - display
	}
	switch width {
	case 1:
		return strconv.Itoa(display)
	case 2:
		return padZero(display%100, 2)
	default:
		return padZero(display, width)
	}
}

func formatMonth(d DateTime, width int, loc *Locale) string {
	if width >= 3 {
		return loc.Months.name(widthForToken(width), d.Month())
	}
	if !d.valid {
		return invalidNumeric
	}
	return padZero(d.Month()+1, width)
}

func formatDay(d DateTime, width int, _ *Locale) string {
	if !d.valid {
		return invalidNumeric
	}
	return padZero(d.Day(), width)
}

func formatDayOfYear(d DateTime, width int, _ *Locale) string {
	if !d.valid {
		return invalidNumeric
	}
	return padZero(d.DayOfYear(), width)
}

func formatWeekday(d DateTime, width int, loc *Locale) string {
	return loc.Weekdays.name(widthForToken(width), d.Weekday())
}

func formatHour24(d DateTime, width int, _ *Locale) string {
	if !d.valid {
		return invalidNumeric
	}
	return padZero(d.Hour(), width)
}

func formatHour12(d DateTime, width int, _ *Locale) string {
	if !d.valid {
		return invalidNumeric
	}
	h := d.Hour() % 12
	if h == 0 {
		h = 12
	}
	return padZero(h, width)
}

func formatMinute(d DateTime, width int, _ *Locale) string {
	if !d.valid {
		return invalidNumeric
	}
	return padZero(d.Minute(), width)
}

func formatSecond(d DateTime, width int, _ *Locale) string {
	if !d.valid {
		return invalidNumeric
	}
	return padZero(d.Second(), width)
}

// formatMillisecond truncates to the fractional place the width names:
// one digit is the hundreds place, two the tens, three the exact count.
// Wider runs extend with zeros.
func formatMillisecond(d DateTime, width int, _ *Locale) string {
	if !d.valid {
		return invalidNumeric
	}
	ms := d.Millisecond()
	switch width {
	case 1:
		return strconv.Itoa(ms / 100)
	case 2:
		return padZero(ms/10, 2)
	default:
		s := padZero(ms, 3)
		if width > 3 {
			s += strings.Repeat("0", width-3)
		}
		return s
	}
}

func formatDayPeriod(d DateTime, width int, loc *Locale) string {
	idx := 0
	if d.Hour() >= 12 {
		idx = 1
	}
	return loc.DayPeriods.name(widthForToken(width), idx)
}
