package vmath

import "testing"

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Expected identical sequences for identical seeds, diverged at %d", i)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("Expected zero seed to be replaced with a non-zero state")
	}
}

func TestBetweenInclusive(t *testing.T) {
	r := NewFastRand(7)
	seenLo, seenHi := false, false
	for i := 0; i < 10000; i++ {
		v := r.Between(-3, 3)
		if v < -3 || v > 3 {
			t.Fatalf("Between(-3, 3) returned %d", v)
		}
		if v == -3 {
			seenLo = true
		}
		if v == 3 {
			seenHi = true
		}
	}
	if !seenLo || !seenHi {
		t.Errorf("Expected both bounds to be reachable, lo=%v hi=%v", seenLo, seenHi)
	}
}

func TestBetweenDegenerate(t *testing.T) {
	r := NewFastRand(1)
	if got := r.Between(5, 5); got != 5 {
		t.Errorf("Expected 5, got %d", got)
	}
	if got := r.Between(9, 2); got != 9 {
		t.Errorf("Expected lo for inverted range, got %d", got)
	}
}

func TestFloat64Range(t *testing.T) {
	r := NewFastRand(3)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
	}
}

func TestVec2F(t *testing.T) {
	a := Vec2F{3, 4}
	if V2FMag(a) != 5 {
		t.Errorf("Expected magnitude 5, got %f", V2FMag(a))
	}
	d := V2FSub(Vec2F{10, 10}, Vec2F{4, 2})
	if d != (Vec2F{6, 8}) {
		t.Errorf("Expected {6 8}, got %v", d)
	}
	s := V2FScale(V2FAdd(a, Vec2F{1, 1}), 2)
	if s != (Vec2F{8, 10}) {
		t.Errorf("Expected {8 10}, got %v", s)
	}
	if Clamp(12, 0, 10) != 10 || Clamp(-1, 0, 10) != 0 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp returned unexpected value")
	}
}
