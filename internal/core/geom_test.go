package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := Rect{X: 5, Y: 10, W: 20, H: 15}

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(30, 10, 31, 4)
	expected := Rect{X: 15, Y: 8, W: 31, H: 4}
	if r != expected {
		t.Errorf("CenteredRect = %+v, expected %+v", r, expected)
	}
}

func TestRectInside(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected bool
	}{
		{"fits", Rect{X: 0, Y: 0, W: 10, H: 5}, true},
		{"touches right edge", Rect{X: 5, Y: 0, W: 5, H: 5}, true},
		{"past right edge", Rect{X: 6, Y: 0, W: 5, H: 5}, false},
		{"past bottom", Rect{X: 0, Y: 1, W: 10, H: 5}, false},
		{"negative origin", Rect{X: -1, Y: 0, W: 3, H: 3}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inside(10, 5); got != tc.expected {
				t.Errorf("Inside(10, 5) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}
