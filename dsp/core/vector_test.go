package core

import (
	"math"
	"testing"
)

func TestSumCompensated(t *testing.T) {
	x := make([]float64, 0, 1001)
	x = append(x, 1e16)
	for range 1000 {
		x = append(x, 1)
	}

	got := Sum(x)
	if got != 1e16+1000 {
		t.Fatalf("Sum = %v, want %v", got, 1e16+1000)
	}
}

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{name: "empty", want: 0},
		{name: "orthogonal", a: []float64{1, 0}, b: []float64{0, 1}, want: 0},
		{name: "general", a: []float64{1, 2, 3}, b: []float64{4, -5, 6}, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dot(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("Dot() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDotPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Dot([]float64{1}, []float64{1, 2})
}

func TestNormAndDistances(t *testing.T) {
	if got := Norm([]float64{3, 4}); math.Abs(got-5) > 1e-12 {
		t.Fatalf("Norm = %v, want 5", got)
	}
	if got := SquaredDistance([]float64{1, 1}, []float64{4, 5}); got != 25 {
		t.Fatalf("SquaredDistance = %v, want 25", got)
	}
	if got := ManhattanDistance([]float64{1, 1}, []float64{4, 5}); got != 7 {
		t.Fatalf("ManhattanDistance = %v, want 7", got)
	}
}

func TestAddScaled(t *testing.T) {
	dst := []float64{1, 1, 1}
	scratch := make([]float64, 3)
	AddScaled(dst, []float64{1, 2, 3}, scratch, 2)

	want := []float64{3, 5, 7}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func BenchmarkDot(b *testing.B) {
	x := make([]float64, 1024)
	y := make([]float64, 1024)
	for i := range x {
		x[i] = float64(i)
		y[i] = float64(len(x) - i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		_ = Dot(x, y)
	}
}
