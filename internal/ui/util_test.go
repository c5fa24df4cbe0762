package ui

import "testing"

func TestRenderSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		width  int
		want   string
	}{
		{"empty", nil, 10, ""},
		{"zero width", []float64{50}, 0, ""},
		{"floor and ceiling clamp", []float64{-5, 0, 100, 250}, 10, "▁▁██"},
		{"truncates to newest", []float64{0, 0, 100, 100}, 2, "██"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderSparkline(tt.values, tt.width)
			if got != tt.want {
				t.Errorf("renderSparkline(%v, %d) = %q, want %q", tt.values, tt.width, got, tt.want)
			}
		})
	}
}

func TestRenderSparklineLength(t *testing.T) {
	values := make([]float64, 300)
	got := renderSparkline(values, 40)
	if n := len([]rune(got)); n != 40 {
		t.Errorf("sparkline length = %d, want 40", n)
	}
}
