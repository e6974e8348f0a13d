package service

import (
	"testing"
	"time"
)

func TestNextPeriodEndFromNil(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	got := NextPeriodEnd(now, nil)
	want := now.Add(30 * 24 * time.Hour)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNextPeriodEndFromExpired(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	expired := now.Add(-48 * time.Hour)

	got := NextPeriodEnd(now, &expired)
	want := now.Add(30 * 24 * time.Hour)
	if !got.Equal(want) {
		t.Fatalf("expected fresh term from now %v, got %v", want, got)
	}
}

func TestNextPeriodEndBoundaryCountsAsExpired(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	boundary := now

	got := NextPeriodEnd(now, &boundary)
	want := now.Add(30 * 24 * time.Hour)
	if !got.Equal(want) {
		t.Fatalf("period ending exactly now must stack from now, got %v", got)
	}
}

func TestNextPeriodEndStacksOnActivePeriod(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	current := now.Add(15 * 24 * time.Hour)

	got := NextPeriodEnd(now, &current)
	want := current.Add(30 * 24 * time.Hour)
	if !got.Equal(want) {
		t.Fatalf("expected stacking to %v, got %v", want, got)
	}
}

func TestNextPeriodEndIsPure(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	current := now.Add(time.Hour)

	first := NextPeriodEnd(now, &current)
	second := NextPeriodEnd(now, &current)
	if !first.Equal(second) {
		t.Fatalf("same inputs produced %v and %v", first, second)
	}
	if !current.Equal(now.Add(time.Hour)) {
		t.Fatalf("input timestamp was mutated: %v", current)
	}
}
