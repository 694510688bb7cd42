package progress

import "math"

// Scoring is recomputed from the current attempt log on every call. Nothing
// here caches: a stale score would silently misreport a student's standing
// on the dashboards.

// HighestRoundScore returns the maximum score among all attempts for the
// (student, unit, round) triple. A round with no attempts scores 0; callers
// that need to tell "never attempted" from "attempted, scored 0" should
// check AttemptsForRound.
func (s *Store) HighestRoundScore(studentID, unitID, roundID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	best := 0
	for _, a := range s.attempts {
		if a.StudentID == studentID && a.UnitID == unitID && a.RoundID == roundID && a.Score > best {
			best = a.Score
		}
	}
	return best
}

// OverallUnitScore returns the rounded mean of the highest round scores over
// every round in the unit. Rounds without attempts contribute 0 to the mean;
// unknown units and units without rounds score 0.
func (s *Store) OverallUnitScore(studentID, unitID string) int {
	unit, ok := s.cat.Unit(unitID)
	if !ok || len(unit.Rounds) == 0 {
		return 0
	}

	sum := 0
	for _, r := range unit.Rounds {
		sum += s.HighestRoundScore(studentID, unitID, r.ID)
	}
	return int(math.Round(float64(sum) / float64(len(unit.Rounds))))
}
