package rich

import "testing"

func TestTabWidth(t *testing.T) {
	tests := []struct {
		name       string
		x, tabStop float64
		want       float64
	}{
		{"line start", 0, 80, 80},
		{"before first stop", 30, 80, 50},
		{"on a stop", 80, 80, 80},
		{"past first stop", 100, 80, 60},
		{"fractional", 12.5, 80, 67.5},
		{"default stop", 30, 0, 50},
		{"narrow stops", 7, 4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tabWidth(tt.x, tt.tabStop); got != tt.want {
				t.Errorf("tabWidth(%v, %v) = %v, want %v", tt.x, tt.tabStop, got, tt.want)
			}
		})
	}
}

func TestFillCount(t *testing.T) {
	tests := []struct {
		distance, unit float64
		want           int
	}{
		{100, 10, 10},
		{105, 10, 10},
		{9, 10, 0},
		{100, 0, 0},
		{-5, 10, 0},
	}
	for _, tt := range tests {
		if got := fillCount(tt.distance, tt.unit); got != tt.want {
			t.Errorf("fillCount(%v, %v) = %d, want %d", tt.distance, tt.unit, got, tt.want)
		}
	}
}
