package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{3, 4, 0}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec3.Length() = %v, want 5", got)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, 5, -2}
	b := Vec3{3, 0, -1}
	if got, want := a.Min(b), (Vec3{1, 0, -2}); got != want {
		t.Errorf("Min() = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{3, 5, -1}); got != want {
		t.Errorf("Max() = %v, want %v", got, want)
	}
}

func TestBoxFromPositions(t *testing.T) {
	b := BoxFromPositions([]float32{0, 0, 0, 1, 2, 3, -1, 1, 1})
	if b.IsEmpty() {
		t.Fatal("box should not be empty")
	}
	if b.Min != (Vec3{-1, 0, 0}) || b.Max != (Vec3{1, 2, 3}) {
		t.Errorf("box = %v..%v", b.Min, b.Max)
	}
	if c := b.Center(); c != (Vec3{0, 1, 1.5}) {
		t.Errorf("Center() = %v", c)
	}
}

func TestBoxUnionWithEmpty(t *testing.T) {
	var empty Box3
	b := NewBox3(Vec3{0, 0, 0}, Vec3{1, 1, 1})

	if got := empty.Union(b); got != b {
		t.Errorf("empty.Union(b) = %v, want %v", got, b)
	}
	if got := b.Union(empty); got != b {
		t.Errorf("b.Union(empty) = %v, want %v", got, b)
	}
}

func TestBoxTransform(t *testing.T) {
	b := NewBox3(Vec3{0, 0, 0}, Vec3{1, 1, 1})
	got := b.Transform(FromAxes(Vec3{5, 0, 0}, Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}).Mul(FromAxes(Vec3{}, Vec3{2, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1})))
	if got.Min != (Vec3{5, 0, 0}) || got.Max != (Vec3{7, 1, 1}) {
		t.Errorf("Transform() = %v..%v", got.Min, got.Max)
	}
}

func TestBoxSize(t *testing.T) {
	b := NewBox3(Vec3{-1, 0, 2}, Vec3{1, 3, 2})
	if got := b.Size(); got != (Vec3{2, 3, 0}) {
		t.Errorf("Size() = %v, want (2, 3, 0)", got)
	}
}
