package chronia

import "testing"

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		d    DateTime
		n    int
		want DateTime
	}{
		{
			name: "plain shift",
			d:    New(2024, 0, 15, 10, 20, 30, 400),
			n:    1,
			want: New(2024, 1, 15, 10, 20, 30, 400),
		},
		{
			name: "clamps to leap february",
			d:    New(2024, 0, 31, 10, 20, 30, 400),
			n:    1,
			want: New(2024, 1, 29, 10, 20, 30, 400),
		},
		{
			name: "clamps to short february",
			d:    New(2023, 0, 31, 0, 0, 0, 0),
			n:    1,
			want: New(2023, 1, 28, 0, 0, 0, 0),
		},
		{
			name: "clamps to thirty-day month",
			d:    New(2024, 2, 31, 0, 0, 0, 0),
			n:    1,
			want: New(2024, 3, 30, 0, 0, 0, 0),
		},
		{
			name: "skips past clamped month unharmed",
			d:    New(2024, 0, 31, 0, 0, 0, 0),
			n:    2,
			want: New(2024, 2, 31, 0, 0, 0, 0),
		},
		{
			name: "across year boundary forward",
			d:    New(2024, 11, 15, 0, 0, 0, 0),
			n:    1,
			want: New(2025, 0, 15, 0, 0, 0, 0),
		},
		{
			name: "across year boundary backward",
			d:    New(2024, 0, 15, 0, 0, 0, 0),
			n:    -1,
			want: New(2023, 11, 15, 0, 0, 0, 0),
		},
		{
			name: "negative with clamp",
			d:    New(2024, 2, 31, 0, 0, 0, 0),
			n:    -1,
			want: New(2024, 1, 29, 0, 0, 0, 0),
		},
		{
			name: "many months",
			d:    New(2020, 4, 10, 0, 0, 0, 0),
			n:    25,
			want: New(2022, 5, 10, 0, 0, 0, 0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AddMonths(tc.d, tc.n)
			if got.UnixMilli() != tc.want.UnixMilli() {
				t.Fatalf("AddMonths(%v, %d) = %v, want %v", tc.d, tc.n, got, tc.want)
			}
		})
	}
}

func TestAddYears(t *testing.T) {
	tests := []struct {
		d    DateTime
		n    int
		want DateTime
	}{
		{New(2024, 1, 29, 12, 0, 0, 0), 1, New(2025, 1, 28, 12, 0, 0, 0)},
		{New(2024, 1, 29, 12, 0, 0, 0), 4, New(2028, 1, 29, 12, 0, 0, 0)},
		{New(2024, 1, 29, 12, 0, 0, 0), -1, New(2023, 1, 28, 12, 0, 0, 0)},
		{New(2024, 6, 4, 0, 0, 0, 0), 10, New(2034, 6, 4, 0, 0, 0, 0)},
	}
	for _, tc := range tests {
		got := AddYears(tc.d, tc.n)
		if got.UnixMilli() != tc.want.UnixMilli() {
			t.Fatalf("AddYears(%v, %d) = %v, want %v", tc.d, tc.n, got, tc.want)
		}
	}
}

func TestAddSmallUnits(t *testing.T) {
	d := New(2024, 0, 15, 12, 0, 0, 0)

	tests := []struct {
		name string
		got  DateTime
		want DateTime
	}{
		{"days forward", AddDays(d, 17), New(2024, 1, 1, 12, 0, 0, 0)},
		{"days backward", AddDays(d, -15), New(2023, 11, 31, 12, 0, 0, 0)},
		{"hours", AddHours(d, 25), New(2024, 0, 16, 13, 0, 0, 0)},
		{"minutes", AddMinutes(d, 90), New(2024, 0, 15, 13, 30, 0, 0)},
		{"seconds", AddSeconds(d, 3661), New(2024, 0, 15, 13, 1, 1, 0)},
		{"milliseconds", AddMilliseconds(d, 1500), New(2024, 0, 15, 12, 0, 1, 500)},
	}
	for _, tc := range tests {
		if tc.got.UnixMilli() != tc.want.UnixMilli() {
			t.Fatalf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestSubInverts(t *testing.T) {
	d := New(2024, 4, 15, 8, 30, 15, 250)

	pairs := []struct {
		name string
		got  DateTime
	}{
		{"years", SubYears(AddYears(d, 3), 3)},
		{"months", SubMonths(AddMonths(d, 7), 7)},
		{"days", SubDays(AddDays(d, 40), 40)},
		{"hours", SubHours(AddHours(d, 13), 13)},
		{"minutes", SubMinutes(AddMinutes(d, 100), 100)},
		{"seconds", SubSeconds(AddSeconds(d, 100), 100)},
		{"milliseconds", SubMilliseconds(AddMilliseconds(d, 123456), 123456)},
	}
	for _, tc := range pairs {
		if tc.got.UnixMilli() != d.UnixMilli() {
			t.Fatalf("%s round trip = %v, want %v", tc.name, tc.got, d)
		}
	}
}

func TestArithmeticInvalid(t *testing.T) {
	var d DateTime

	results := []DateTime{
		AddYears(d, 1), AddMonths(d, 1), AddDays(d, 1), AddHours(d, 1),
		AddMinutes(d, 1), AddSeconds(d, 1), AddMilliseconds(d, 1),
		SubYears(d, 1), SubMonths(d, 1), SubDays(d, 1),
	}
	for i, got := range results {
		if got.IsValid() {
			t.Fatalf("result %d of invalid input is valid: %v", i, got)
		}
	}
}

func TestArithmeticRangeOverflow(t *testing.T) {
	edge := FromUnixMilli(maxUnixMilli)
	if got := AddDays(edge, 1); got.IsValid() {
		t.Fatalf("AddDays past the range = %v, want invalid", got)
	}
	if got := AddMilliseconds(edge, -1); !got.IsValid() {
		t.Fatal("AddMilliseconds within the range went invalid")
	}
}
