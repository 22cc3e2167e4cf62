package testutil

import "testing"

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] >= 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestRepresentationsShape(t *testing.T) {
	x := Representations(7, 5, 3)
	if len(x) != 5 {
		t.Fatalf("rows = %d, want 5", len(x))
	}
	for i, row := range x {
		if len(row) != 3 {
			t.Fatalf("row %d has %d features, want 3", i, len(row))
		}
	}
	y := Representations(7, 5, 3)
	if x[4][2] != y[4][2] {
		t.Fatal("representations not deterministic")
	}
}

func TestRingDegrees(t *testing.T) {
	r := Ring(6)
	for i, row := range r {
		var deg float64
		for _, v := range row {
			deg += v
		}
		if deg != 2 {
			t.Fatalf("vertex %d degree = %v, want 2", i, deg)
		}
	}
}

func TestImpulse(t *testing.T) {
	imp := Impulse(8, 3)
	for i, v := range imp {
		want := 0.0
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("imp[%d] = %v, want %v", i, v, want)
		}
	}
	if Norm(Impulse(4, 9)) != 0 {
		t.Fatal("out-of-range impulse should be all zeros")
	}
}

func TestConstant(t *testing.T) {
	c := Constant(0.5, 4)
	if Norm(c) != 1 {
		t.Fatalf("norm = %v, want 1", Norm(c))
	}
}
