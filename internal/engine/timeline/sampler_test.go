package timeline

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		raw, duration, want float64
	}{
		{-5, 100, 0},
		{0, 100, 0},
		{42, 100, 42},
		{100, 100, 100},
		{250, 100, 100},
	}
	for _, tt := range tests {
		if got := Clamp(tt.raw, tt.duration); got != tt.want {
			t.Errorf("Clamp(%v, %v) = %v, want %v", tt.raw, tt.duration, got, tt.want)
		}
	}
}

func TestAdvanceWrapsOnce(t *testing.T) {
	tests := []struct {
		name                     string
		current, delta, duration float64
		want                     float64
	}{
		{"inside", 100, 50, 3000, 150},
		{"exactly at end", 2900, 100, 3000, 3000},
		{"past end", 2900, 200, 3000, 100},
		{"one and a half durations", 0, 4500, 3000, 1500},
		{"three durations is not reduced", 0, 9000, 3000, 6000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Advance(tt.current, tt.delta, tt.duration); got != tt.want {
				t.Errorf("Advance(%v, %v, %v) = %v, want %v", tt.current, tt.delta, tt.duration, got, tt.want)
			}
		})
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name       string
		current    float64
		duration   float64
		frameCount int
		want       Selection
	}{
		{"single frame", 1500, 3000, 1, Selection{}},
		{"no frames", 1500, 3000, 0, Selection{}},
		{"start", 0, 3000, 10, Selection{Bottom: 0, Top: 1, Proportion: 1}},
		{"end shifts window back", 3000, 3000, 10, Selection{Bottom: 8, Top: 9, Proportion: 0}},
		{"interior exact frame", 1500, 3000, 5, Selection{Bottom: 2, Top: 3, Proportion: 1}},
		{"between frames", 500, 1000, 3, Selection{Bottom: 1, Top: 2, Proportion: 1}},
		{"quarter", 250, 1000, 2, Selection{Bottom: 0, Top: 1, Proportion: 0.75}},
		{"two frames at end", 1000, 1000, 2, Selection{Bottom: 0, Top: 1, Proportion: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.current, tt.duration, tt.frameCount)
			if got != tt.want {
				t.Errorf("Select(%v, %v, %d) = %+v, want %+v", tt.current, tt.duration, tt.frameCount, got, tt.want)
			}
		})
	}
}

func TestSelectNeverOutOfRange(t *testing.T) {
	const duration = 3000
	for frames := 2; frames <= 12; frames++ {
		for ms := 0; ms <= duration; ms += 7 {
			sel := Select(float64(ms), duration, frames)
			if sel.Bottom < 0 || sel.Top > frames-1 || sel.Top != sel.Bottom+1 {
				t.Fatalf("Select(%d, %d, %d) = %+v out of range", ms, duration, frames, sel)
			}
			if sel.Proportion < 0 || sel.Proportion > 1 {
				t.Fatalf("Select(%d, %d, %d) proportion %v", ms, duration, frames, sel.Proportion)
			}
		}
	}
}
