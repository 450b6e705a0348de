package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	fs := NewFixedStep(10)
	if fs.Rate() != 10 {
		t.Fatalf("rate = %d, want 10", fs.Rate())
	}
	start := time.Unix(0, 0)
	if !fs.ShouldStep(start) {
		t.Fatal("first call should step")
	}
	if fs.ShouldStep(start.Add(50 * time.Millisecond)) {
		t.Fatal("stepped before interval elapsed")
	}
	if !fs.ShouldStep(start.Add(100 * time.Millisecond)) {
		t.Fatal("expected step once interval elapsed")
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(0, 0)
	fs.ShouldStep(start)
	if !fs.ShouldStep(start.Add(10 * time.Second)) {
		t.Fatal("expected step after stall")
	}
	if fs.ShouldStep(start.Add(10*time.Second + time.Millisecond)) {
		t.Fatal("backlog should have been dropped after stall")
	}
}
