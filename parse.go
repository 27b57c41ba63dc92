package chronia

import "strings"

// accumulator collects the fragments token parsers produce before
// resolution assembles them into a DateTime. Each Parse call owns one,
// so a Parser stays safe for concurrent use.
type accumulator struct {
	year      int
	month     int
	day       int
	dayOfYear int
	hour24    int
	hour12    int
	minute    int
	second    int
	millis    int

	hasYear      bool
	hasMonth     bool
	hasDay       bool
	hasDayOfYear bool
	hasHour24    bool
	hasHour12    bool
	hasMinute    bool
	hasSecond    bool
	hasMillis    bool

	pm    bool
	eraBC bool

	// dayExplicit records that a day token ran, so a later month or era
	// token must not pin the day back to 1.
	dayExplicit bool
}

// setMonth records a parsed month and, unless a day token already ran,
// pins the day to 1 so resolution cannot roll a reference day past the
// end of the shorter month.
func (acc *accumulator) setMonth(m int) {
	acc.month, acc.hasMonth = m, true
	if !acc.dayExplicit {
		acc.day, acc.hasDay = 1, true
	}
}

// setEra records era polarity. The flip applies to the resolved year at
// the end, so "G y" and "y G" behave the same. Era pins the day like a
// month token does, keeping the year change from rolling a reference
// Feb 29 into March.
func (acc *accumulator) setEra(negative bool) {
	acc.eraBC = negative
	if !acc.dayExplicit {
		acc.day, acc.hasDay = 1, true
	}
}

func (acc *accumulator) complete() bool {
	return acc.hasYear &&
		(acc.hasMonth && acc.hasDay || acc.hasDayOfYear) &&
		(acc.hasHour24 || acc.hasHour12) &&
		acc.hasMinute && acc.hasSecond && acc.hasMillis
}

// resolve assembles the accumulated components, filling unset fields
// from ref. The 12-hour field plus day-period flag takes precedence
// over the 24-hour field. Assembly goes through the same constructive
// path New uses, so combinations the per-token range checks cannot see
// (Apr 31) normalize forward instead of failing.
func (acc *accumulator) resolve(ref DateTime) DateTime {
	if !acc.complete() && !ref.IsValid() {
		return DateTime{}
	}

	year := acc.year
	if !acc.hasYear {
		year = ref.Year()
	}
	if acc.eraBC && year > 0 {
		year = 1 - year
	}

	month := acc.month
	if !acc.hasMonth {
		month = ref.Month()
	}
	day := acc.day
	if !acc.hasDay {
		day = ref.Day()
	}
	if acc.hasDayOfYear {
		if acc.dayOfYear > daysInYear(year) {
			return DateTime{}
		}
		month, day = 0, acc.dayOfYear
	}

	var hour int
	switch {
	case acc.hasHour12:
		hour = acc.hour12 % 12
		if acc.pm {
			hour += 12
		}
	case acc.hasHour24:
		hour = acc.hour24
	default:
		hour = ref.Hour()
	}

	minute := acc.minute
	if !acc.hasMinute {
		minute = ref.Minute()
	}
	second := acc.second
	if !acc.hasSecond {
		second = ref.Second()
	}
	millis := acc.millis
	if !acc.hasMillis {
		millis = ref.Millisecond()
	}

	return New(year, month, day, hour, minute, second, millis)
}

// parseFunc consumes one token's worth of input starting at pos and
// records what it finds in acc. It reports the next position, or false
// when the input does not satisfy the token.
type parseFunc func(input string, pos, width int, loc *Locale, acc *accumulator) (int, bool)

// parsers mirrors the formatters table symbol for symbol.
var parsers = map[byte]parseFunc{
	'G': parseEra,
	'y': parseYear,
	'M': parseMonth,
	'd': parseDay,
	'D': parseDayOfYear,
	'E': parseWeekday,
	'H': parseHour24,
	'h': parseHour12,
	'm': parseMinute,
	's': parseSecond,
	'S': parseMillisecond,
	'a': parseDayPeriod,
}

// scanDigits consumes between min and max ASCII digits starting at pos,
// reporting the value, the next position and whether at least min
// digits were present.
func scanDigits(input string, pos, min, max int) (val, next int, ok bool) {
	next = pos
	for next < len(input) && next-pos < max {
		c := input[next]
		if c < '0' || c > '9' {
			break
		}
		val = val*10 + int(c-'0')
		next++
	}
	if next-pos < min {
		return 0, pos, false
	}
	return val, next, true
}

// numericRun gives the digit bounds for a numeric token: single-letter
// tokens scan greedily up to the field maximum, wider runs are fixed at
// their own length.
func numericRun(width, greedyMax int) (min, max int) {
	if width == 1 {
		return 1, greedyMax
	}
	return width, width
}

func parseEra(input string, pos, width int, loc *Locale, acc *accumulator) (int, bool) {
	// Candidates come back longest first, so the first hit wins ties
	// like "BCE" over "BC".
	for _, cand := range eraParseCandidates(loc, widthForToken(width)) {
		end := pos + len(cand.name)
		if end > len(input) {
			continue
		}
		if strings.EqualFold(input[pos:end], cand.name) {
			acc.setEra(cand.negative)
			return end, true
		}
	}
	return 0, false
}

// maxYearDigits is the digit count of display years at the range bound;
// ±100,000,000 days from the epoch lands in six-digit years.
const maxYearDigits = 6

// parseYear scans wider than the token where formatting can emit more
// digits than the width names: formatYear pads to at least the width, so
// every width accepts the extra digits its own output can carry.
func parseYear(input string, pos, width int, _ *Locale, acc *accumulator) (int, bool) {
	if width == 2 {
		v, next, ok := scanDigits(input, pos, 2, 2)
		if !ok {
			return 0, false
		}
		if v < 50 {
			v += 2000
		} else {
			v += 1900
		}
		acc.year, acc.hasYear = v, true
		return next, true
	}

	min, max := width, width
	switch {
	case width == 1, width == 4:
		min, max = 1, 4
	case width == 3:
		max = 4
	case width < maxYearDigits:
		max = maxYearDigits
	}
	v, next, ok := scanDigits(input, pos, min, max)
	if !ok {
		return 0, false
	}
	acc.year, acc.hasYear = v, true
	return next, true
}

func parseMonth(input string, pos, width int, loc *Locale, acc *accumulator) (int, bool) {
	if width >= 3 {
		idx, size := matchName(input, pos, loc.Months.names(widthForToken(width)))
		if idx < 0 {
			return 0, false
		}
		acc.setMonth(idx)
		return pos + size, true
	}
	min, max := numericRun(width, 2)
	v, next, ok := scanDigits(input, pos, min, max)
	if !ok || v < 1 || v > 12 {
		return 0, false
	}
	acc.setMonth(v - 1)
	return next, true
}

func parseDay(input string, pos, width int, _ *Locale, acc *accumulator) (int, bool) {
	min, max := numericRun(width, 2)
	v, next, ok := scanDigits(input, pos, min, max)
	if !ok || v < 1 || v > 31 {
		return 0, false
	}
	acc.day, acc.hasDay = v, true
	acc.dayExplicit = true
	return next, true
}

func parseDayOfYear(input string, pos, width int, _ *Locale, acc *accumulator) (int, bool) {
	min, max := numericRun(width, 3)
	v, next, ok := scanDigits(input, pos, min, max)
	if !ok || v < 1 || v > 366 {
		return 0, false
	}
	acc.dayOfYear, acc.hasDayOfYear = v, true
	acc.dayExplicit = true
	return next, true
}

func parseWeekday(input string, pos, width int, loc *Locale, _ *accumulator) (int, bool) {
	// Weekday names validate and consume input but resolve to nothing:
	// the date fields alone determine the weekday.
	idx, size := matchName(input, pos, loc.Weekdays.names(widthForToken(width)))
	if idx < 0 {
		return 0, false
	}
	return pos + size, true
}

func parseHour24(input string, pos, width int, _ *Locale, acc *accumulator) (int, bool) {
	min, max := numericRun(width, 2)
	v, next, ok := scanDigits(input, pos, min, max)
	if !ok || v > 23 {
		return 0, false
	}
	acc.hour24, acc.hasHour24 = v, true
	return next, true
}

func parseHour12(input string, pos, width int, _ *Locale, acc *accumulator) (int, bool) {
	min, max := numericRun(width, 2)
	v, next, ok := scanDigits(input, pos, min, max)
	if !ok || v < 1 || v > 12 {
		return 0, false
	}
	acc.hour12, acc.hasHour12 = v, true
	return next, true
}

func parseMinute(input string, pos, width int, _ *Locale, acc *accumulator) (int, bool) {
	min, max := numericRun(width, 2)
	v, next, ok := scanDigits(input, pos, min, max)
	if !ok || v > 59 {
		return 0, false
	}
	acc.minute, acc.hasMinute = v, true
	return next, true
}

func parseSecond(input string, pos, width int, _ *Locale, acc *accumulator) (int, bool) {
	min, max := numericRun(width, 2)
	v, next, ok := scanDigits(input, pos, min, max)
	if !ok || v > 59 {
		return 0, false
	}
	acc.second, acc.hasSecond = v, true
	return next, true
}

func parseMillisecond(input string, pos, width int, _ *Locale, acc *accumulator) (int, bool) {
	v, next, ok := scanDigits(input, pos, width, width)
	if !ok {
		return 0, false
	}
	switch width {
	case 1:
		v *= 100
	case 2:
		v *= 10
	case 3:
	default:
		// Digits past millisecond precision are parsed and discarded.
		for i := 3; i < width; i++ {
			v /= 10
		}
	}
	acc.millis, acc.hasMillis = v, true
	return next, true
}

func parseDayPeriod(input string, pos, width int, loc *Locale, acc *accumulator) (int, bool) {
	idx, size := matchName(input, pos, loc.DayPeriods.names(widthForToken(width)))
	if idx < 0 {
		return 0, false
	}
	acc.pm = idx == 1
	return pos + size, true
}

// Parser is a compiled pattern plus default options. Compilation
// happens once in NewParser; the Parser may then be shared freely
// across goroutines.
type Parser struct {
	segments []segment
	defaults options
}

// NewParser compiles pattern and carries opts as defaults for every
// Parse call. Compilation is total, so there is nothing to fail.
func NewParser(pattern string, opts ...Option) *Parser {
	return &Parser{
		segments: compiledPattern(pattern),
		defaults: buildOptions(opts),
	}
}

// Parse runs the compiled pattern against input. opts overlay the
// factory defaults for this call only. Any mismatch, a failed token, a
// literal absent at the cursor or input left over after the final
// segment, yields the invalid DateTime.
func (p *Parser) Parse(input string, opts ...Option) DateTime {
	o := p.defaults.overlay(opts)
	loc := resolveLocale(o.locale)

	var acc accumulator
	pos := 0
	for _, seg := range p.segments {
		if seg.symbol == 0 {
			end := pos + len(seg.literal)
			if end > len(input) || input[pos:end] != seg.literal {
				return DateTime{}
			}
			pos = end
			continue
		}
		parse, ok := parsers[seg.symbol]
		if !ok {
			return DateTime{}
		}
		next, ok := parse(input, pos, seg.width, loc, &acc)
		if !ok {
			return DateTime{}
		}
		pos = next
	}
	if pos != len(input) {
		return DateTime{}
	}
	return acc.resolve(o.referenceDate())
}

// Parse interprets input according to pattern in a single shot. Reuse a
// Parser instead when the same pattern runs against many inputs.
func Parse(input, pattern string, opts ...Option) DateTime {
	return NewParser(pattern).Parse(input, opts...)
}
