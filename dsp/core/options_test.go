package core

import "testing"

func TestApplyComputeOptions(t *testing.T) {
	cfg := ApplyComputeOptions(WithWorkers(3), WithTolerance(1e-6))
	if cfg.Workers != 3 {
		t.Fatalf("workers = %d, want 3", cfg.Workers)
	}
	if cfg.Tolerance != 1e-6 {
		t.Fatalf("tolerance = %v, want 1e-6", cfg.Tolerance)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyComputeOptions(WithWorkers(0), WithTolerance(-1), nil)
	def := DefaultComputeConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}
