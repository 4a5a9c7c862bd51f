package game

import "testing"

func TestPointInRect(t *testing.T) {
	tests := []struct {
		name       string
		px, py     int
		x, y, w, h int
		want       bool
	}{
		{"Inside", 50, 30, 20, 20, 120, 40, true},
		{"On left edge", 20, 30, 20, 20, 120, 40, true},
		{"On bottom-right corner", 140, 60, 20, 20, 120, 40, true},
		{"Left of rect", 19, 30, 20, 20, 120, 40, false},
		{"Above rect", 50, 19, 20, 20, 120, 40, false},
		{"Below rect", 50, 61, 20, 20, 120, 40, false},
		{"Right of rect", 141, 30, 20, 20, 120, 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pointInRect(tt.px, tt.py, tt.x, tt.y, tt.w, tt.h); got != tt.want {
				t.Errorf("pointInRect(%d, %d, %d, %d, %d, %d) = %v, want %v",
					tt.px, tt.py, tt.x, tt.y, tt.w, tt.h, got, tt.want)
			}
		})
	}
}
