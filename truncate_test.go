package chronia

import "testing"

func TestTruncate(t *testing.T) {
	d := New(2024, 6, 15, 14, 30, 45, 789)

	tests := []struct {
		unit Unit
		want DateTime
	}{
		{UnitYear, New(2024, 0, 1, 0, 0, 0, 0)},
		{UnitMonth, New(2024, 6, 1, 0, 0, 0, 0)},
		{UnitDay, New(2024, 6, 15, 0, 0, 0, 0)},
		{UnitHour, New(2024, 6, 15, 14, 0, 0, 0)},
		{UnitMinute, New(2024, 6, 15, 14, 30, 0, 0)},
		{UnitSecond, New(2024, 6, 15, 14, 30, 45, 0)},
		{UnitMillisecond, New(2024, 6, 15, 14, 30, 45, 789)},
	}

	for _, tc := range tests {
		got := Truncate(d, tc.unit)
		if got.UnixMilli() != tc.want.UnixMilli() {
			t.Fatalf("Truncate(%v, %v) = %v, want %v", d, tc.unit, got, tc.want)
		}

		// Truncation is idempotent per unit.
		if again := Truncate(got, tc.unit); again.UnixMilli() != got.UnixMilli() {
			t.Fatalf("Truncate(Truncate(d, %v)) = %v, want %v", tc.unit, again, got)
		}
	}
}

func TestTruncateInvalid(t *testing.T) {
	if got := Truncate(DateTime{}, UnitDay); got.IsValid() {
		t.Fatalf("Truncate(invalid) = %v, want invalid", got)
	}
	if got := Truncate(New(2024, 0, 1, 0, 0, 0, 0), Unit(99)); got.IsValid() {
		t.Fatalf("Truncate with unknown unit = %v, want invalid", got)
	}
}
