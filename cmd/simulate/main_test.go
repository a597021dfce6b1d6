package main

import "testing"

func TestRunCountsSelections(t *testing.T) {
	res, err := run("", 7, 10, 60)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Frames != 600 {
		t.Fatalf("expected 600 frames, got %d", res.Frames)
	}
	// 2s interval over 10s
	if res.Selections != 5 {
		t.Fatalf("expected 5 selections, got %d", res.Selections)
	}
	if len(res.Z) != 60 {
		t.Fatalf("expected 60 cubes, got %d", len(res.Z))
	}
	if res.MinZ > res.MaxZ {
		t.Fatalf("min %v > max %v", res.MinZ, res.MaxZ)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a, err := run("", 3, 4, 30)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := run("", 3, 4, 30)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for i := range a.Z {
		if a.Z[i] != b.Z[i] {
			t.Fatalf("cube %d differs between runs: %v vs %v", i, a.Z[i], b.Z[i])
		}
	}
}

func TestRunRejectsBadTPS(t *testing.T) {
	if _, err := run("", 1, 1, 0); err == nil {
		t.Fatalf("expected error for zero tps")
	}
}
