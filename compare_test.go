package chronia

import "testing"

func TestCompare(t *testing.T) {
	earlier := New(2024, 0, 1, 0, 0, 0, 0)
	later := New(2024, 0, 1, 0, 0, 0, 1)
	var invalid DateTime

	tests := []struct {
		name string
		a, b DateTime
		want int
	}{
		{name: "earlier first", a: earlier, b: later, want: -1},
		{name: "later first", a: later, b: earlier, want: 1},
		{name: "equal instants", a: earlier, b: New(2024, 0, 1, 0, 0, 0, 0), want: 0},
		{name: "invalid sorts before valid", a: invalid, b: earlier, want: -1},
		{name: "valid after invalid", a: earlier, b: invalid, want: 1},
		{name: "two invalids equal", a: invalid, b: invalid, want: 0},
	}
	for _, tc := range tests {
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Fatalf("%s: Compare = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	a := New(2024, 0, 1, 0, 0, 0, 0)
	b := New(2024, 5, 1, 0, 0, 0, 0)

	if got := Min(a, b); got.UnixMilli() != a.UnixMilli() {
		t.Fatalf("Min = %v, want %v", got, a)
	}
	if got := Max(a, b); got.UnixMilli() != b.UnixMilli() {
		t.Fatalf("Max = %v, want %v", got, b)
	}
	if got := Min(b, a); got.UnixMilli() != a.UnixMilli() {
		t.Fatalf("Min reversed = %v, want %v", got, a)
	}

	var invalid DateTime
	if Min(a, invalid).IsValid() || Max(invalid, b).IsValid() {
		t.Fatal("Min/Max with invalid input must be invalid")
	}
}

func TestClamp(t *testing.T) {
	lo := New(2024, 0, 10, 0, 0, 0, 0)
	hi := New(2024, 0, 20, 0, 0, 0, 0)

	tests := []struct {
		name string
		d    DateTime
		want DateTime
	}{
		{name: "below range", d: New(2024, 0, 1, 0, 0, 0, 0), want: lo},
		{name: "inside range", d: New(2024, 0, 15, 0, 0, 0, 0), want: New(2024, 0, 15, 0, 0, 0, 0)},
		{name: "above range", d: New(2024, 1, 1, 0, 0, 0, 0), want: hi},
		{name: "at lower bound", d: lo, want: lo},
		{name: "at upper bound", d: hi, want: hi},
	}
	for _, tc := range tests {
		got := Clamp(tc.d, lo, hi)
		if got.UnixMilli() != tc.want.UnixMilli() {
			t.Fatalf("%s: Clamp = %v, want %v", tc.name, got, tc.want)
		}
	}

	if Clamp(DateTime{}, lo, hi).IsValid() {
		t.Fatal("Clamp of invalid input must be invalid")
	}
	if Clamp(lo, DateTime{}, hi).IsValid() {
		t.Fatal("Clamp with invalid bound must be invalid")
	}
}
