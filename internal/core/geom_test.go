package core

import "testing"

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name     string
		area     Rect
		w, h     int
		expected Rect
	}{
		{"even fit", Rect{W: 80, H: 24}, 20, 10, Rect{X: 30, Y: 7, W: 20, H: 10}},
		{"odd slack", Rect{W: 11, H: 5}, 4, 2, Rect{X: 3, Y: 1, W: 4, H: 2}},
		{"exact", Rect{W: 10, H: 10}, 10, 10, Rect{W: 10, H: 10}},
		{"offset area", Rect{X: 5, Y: 3, W: 10, H: 4}, 4, 2, Rect{X: 8, Y: 4, W: 4, H: 2}},
		{"overhang", Rect{X: 2, Y: 1, W: 8, H: 4}, 20, 10, Rect{X: -4, Y: -2, W: 20, H: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CenteredRect(tt.area, tt.w, tt.h)
			if got != tt.expected {
				t.Errorf("CenteredRect = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestRectFits(t *testing.T) {
	if !(Rect{W: 10, H: 5}).Fits(10, 5) {
		t.Error("rect should fit an area of its own size")
	}
	if (Rect{X: 1, W: 10, H: 5}).Fits(10, 5) {
		t.Error("shifted rect should not fit")
	}
	if (Rect{W: 20, H: 10}).Fits(8, 4) {
		t.Error("oversized rect should not fit")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},
		{10, 10, true},
		{29, 29, true},
		{30, 30, false},
		{9, 15, false},
		{15, 9, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestRectInset(t *testing.T) {
	got := Rect{X: 2, Y: 3, W: 10, H: 6}.Inset(1)
	if got != (Rect{X: 3, Y: 4, W: 8, H: 4}) {
		t.Errorf("Inset(1) = %+v", got)
	}
	if got := (Rect{W: 1, H: 1}).Inset(2); got.W != 0 || got.H != 0 {
		t.Errorf("Inset past zero should clamp size, got %+v", got)
	}
}
