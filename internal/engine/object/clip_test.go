package object

import "testing"

func TestLinearMorphClipInfluences(t *testing.T) {
	tests := []struct {
		name string
		time float64
		want []float64
	}{
		{"start", 0, []float64{1, 0, 0}},
		{"quarter", 0.25, []float64{0.5, 0.5, 0}},
		{"middle", 0.5, []float64{0, 1, 0}},
		{"end", 1, []float64{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLinearMorphClip(3, 1)
			c.SetTime(tt.time)
			got := c.Influences()
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Influences() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestLinearMorphClipAdvanceLoops(t *testing.T) {
	c := NewLinearMorphClip(2, 2)
	c.Advance(1.5)
	c.Advance(1)
	if got := c.Time(); got != 0.5 {
		t.Errorf("Time() = %v, want 0.5", got)
	}
}

func TestLinearMorphClipSetTimeClamps(t *testing.T) {
	c := NewLinearMorphClip(2, 2)
	c.SetTime(5)
	if c.Time() != 2 {
		t.Errorf("Time() = %v, want 2", c.Time())
	}
	c.SetTime(-1)
	if c.Time() != 0 {
		t.Errorf("Time() = %v, want 0", c.Time())
	}
}

func TestLinearMorphClipSingleTarget(t *testing.T) {
	c := NewLinearMorphClip(1, 1)
	c.SetTime(0.3)
	if got := c.Influences(); len(got) != 1 || got[0] != 1 {
		t.Errorf("Influences() = %v, want [1]", got)
	}
}
