package chronia

import "testing"

func TestFormatTokens(t *testing.T) {
	// Friday, January 5 2024, 14:30:05.007 local time.
	d := New(2024, 0, 5, 14, 30, 5, 7)

	tests := []struct {
		pattern string
		want    string
	}{
		{"y", "2024"},
		{"yy", "24"},
		{"yyy", "2024"},
		{"yyyy", "2024"},
		{"yyyyy", "02024"},
		{"M", "1"},
		{"MM", "01"},
		{"MMM", "Jan"},
		{"MMMM", "January"},
		{"MMMMM", "J"},
		{"d", "5"},
		{"dd", "05"},
		{"D", "5"},
		{"DD", "05"},
		{"DDD", "005"},
		{"E", "Fri"},
		{"EEE", "Fri"},
		{"EEEE", "Friday"},
		{"EEEEE", "F"},
		{"H", "14"},
		{"HH", "14"},
		{"h", "2"},
		{"hh", "02"},
		{"m", "30"},
		{"mm", "30"},
		{"s", "5"},
		{"ss", "05"},
		{"S", "0"},
		{"SS", "00"},
		{"SSS", "007"},
		{"SSSS", "0070"},
		{"a", "PM"},
		{"aaaa", "PM"},
		{"aaaaa", "p"},
		{"G", "AD"},
		{"GGGG", "Anno Domini"},
		{"GGGGG", "A"},
		{"yyyy-MM-dd HH:mm:ss.SSS", "2024-01-05 14:30:05.007"},
		{"EEEE, MMMM d, yyyy", "Friday, January 5, 2024"},
		{"h:mm a", "2:30 PM"},
	}

	for _, tc := range tests {
		if got := Format(d, tc.pattern); got != tc.want {
			t.Fatalf("Format(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestFormatLiterals(t *testing.T) {
	d := New(2024, 0, 5, 14, 30, 5, 7)

	tests := []struct {
		pattern string
		want    string
	}{
		{"'year' yyyy", "year 2024"},
		{"HH 'o''clock'", "14 o'clock"},
		{"''", "'"},
		{"'unterminated yyyy", "unterminated yyyy"},
		{"yyyy QQ", "2024 QQ"},
		{"yyyy年M月d日", "2024年1月5日"},
	}

	for _, tc := range tests {
		if got := Format(d, tc.pattern); got != tc.want {
			t.Fatalf("Format(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestFormatMorning(t *testing.T) {
	d := New(2024, 0, 5, 0, 5, 0, 0)

	tests := []struct {
		pattern string
		want    string
	}{
		{"H", "0"},
		{"h", "12"},
		{"hh:mm a", "12:05 AM"},
		{"aaaaa", "a"},
	}
	for _, tc := range tests {
		if got := Format(d, tc.pattern); got != tc.want {
			t.Fatalf("Format(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}

	noon := New(2024, 0, 5, 12, 0, 0, 0)
	if got := Format(noon, "h a"); got != "12 PM" {
		t.Fatalf("Format(noon, \"h a\") = %q, want \"12 PM\"", got)
	}
}

func TestFormatEraYears(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{2024, "2024 AD"},
		{1, "1 AD"},
		{0, "1 BC"},
		{-1, "2 BC"},
		{-43, "44 BC"},
	}
	for _, tc := range tests {
		d := New(tc.year, 0, 1, 0, 0, 0, 0)
		if got := Format(d, "y G"); got != tc.want {
			t.Fatalf("Format(year %d, \"y G\") = %q, want %q", tc.year, got, tc.want)
		}
	}

	// Two-digit years keep only the low digits of the display year.
	if got := Format(New(5, 0, 1, 0, 0, 0, 0), "yy"); got != "05" {
		t.Fatalf("Format(year 5, \"yy\") = %q, want \"05\"", got)
	}
	if got := Format(New(1999, 0, 1, 0, 0, 0, 0), "yy"); got != "99" {
		t.Fatalf("Format(year 1999, \"yy\") = %q, want \"99\"", got)
	}
}

func TestFormatLocales(t *testing.T) {
	// Friday, January 5 2024, afternoon.
	d := New(2024, 0, 5, 14, 30, 5, 7)

	tests := []struct {
		locale  string
		pattern string
		want    string
	}{
		{"es", "MMMM", "enero"},
		{"es", "MMM", "ene"},
		{"es", "EEEE", "viernes"},
		{"fr", "MMMM", "janvier"},
		{"fr", "EEE", "ven."},
		{"de", "MMMM", "Januar"},
		{"de", "EEEE", "Freitag"},
		{"ja", "MMMM", "1月"},
		{"ja", "EEEE", "金曜日"},
		{"ja", "a", "午後"},
	}

	for _, tc := range tests {
		loc, ok := LookupLocale(tc.locale)
		if !ok {
			t.Fatalf("LookupLocale(%q) missing", tc.locale)
		}
		if got := Format(d, tc.pattern, WithLocale(loc)); got != tc.want {
			t.Fatalf("Format(%q, locale %s) = %q, want %q", tc.pattern, tc.locale, got, tc.want)
		}
	}

	// A nil locale option leaves the default in effect.
	if got := Format(d, "MMMM", WithLocale(nil)); got != "January" {
		t.Fatalf("Format with nil locale = %q, want \"January\"", got)
	}
}

func TestFormatInvalid(t *testing.T) {
	var d DateTime

	tests := []struct {
		pattern string
		want    string
	}{
		{"s", "NaN"},
		{"yyyy-MM-dd", "NaN-NaN-NaN"},
		{"HH:mm:ss.SSS", "NaN:NaN:NaN.NaN"},
		{"MMMM", ""},
		{"EEEE", ""},
		{"'fixed text'", "fixed text"},
	}
	for _, tc := range tests {
		if got := Format(d, tc.pattern); got != tc.want {
			t.Fatalf("Format(invalid, %q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}
