package progress

import (
	"context"
	"testing"
)

func TestHighestRoundScore(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if got := s.HighestRoundScore("s", "unit-1", "unit-1-round-1"); got != 0 {
		t.Errorf("no attempts: expected 0, got %d", got)
	}

	s.RecordAttempt(ctx, "s", "unit-1", "unit-1-round-1", 60, nil)
	s.RecordAttempt(ctx, "s", "unit-1", "unit-1-round-1", 90, nil)
	s.RecordAttempt(ctx, "s", "unit-1", "unit-1-round-1", 75, nil)

	if got := s.HighestRoundScore("s", "unit-1", "unit-1-round-1"); got != 90 {
		t.Errorf("expected max 90, got %d", got)
	}

	// A later, lower attempt never lowers the highest score.
	s.RecordAttempt(ctx, "s", "unit-1", "unit-1-round-1", 10, nil)
	if got := s.HighestRoundScore("s", "unit-1", "unit-1-round-1"); got != 90 {
		t.Errorf("lower attempt changed max: got %d", got)
	}
}

func TestOverallUnitScore(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// Best scores 80 and 50 across the two rounds average to 65.
	s.RecordAttempt(ctx, "s", "unit-1", "unit-1-round-1", 80, nil)
	s.RecordAttempt(ctx, "s", "unit-1", "unit-1-round-1", 40, nil)
	s.RecordAttempt(ctx, "s", "unit-1", "unit-1-round-2", 50, nil)

	if got := s.OverallUnitScore("s", "unit-1"); got != 65 {
		t.Errorf("expected 65, got %d", got)
	}
}

func TestOverallUnitScoreRounding(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// 80 and 55 average to 67.5, which rounds to 68.
	s.RecordAttempt(ctx, "s", "unit-3", "unit-3-round-1", 80, nil)
	s.RecordAttempt(ctx, "s", "unit-3", "unit-3-round-2", 55, nil)

	if got := s.OverallUnitScore("s", "unit-3"); got != 68 {
		t.Errorf("expected 68, got %d", got)
	}
}

func TestOverallUnitScoreNoAttempts(t *testing.T) {
	s, _ := newTestStore(t)

	if got := s.OverallUnitScore("s", "unit-1"); got != 0 {
		t.Errorf("no attempts: expected 0, got %d", got)
	}
	if got := s.OverallUnitScore("s", "no-such-unit"); got != 0 {
		t.Errorf("unknown unit: expected 0, got %d", got)
	}
}

func TestOverallUnitScoreCountsUnattemptedRounds(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// Only round 1 attempted. The untouched round counts as 0, so the
	// unit average is 100/2 = 50, not 100.
	s.RecordAttempt(ctx, "s", "unit-1", "unit-1-round-1", 100, nil)

	if got := s.OverallUnitScore("s", "unit-1"); got != 50 {
		t.Errorf("expected 50, got %d", got)
	}
}
