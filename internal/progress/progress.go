package progress

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Vladislav15-maker/FamilyCourse/internal/catalog"
	"github.com/Vladislav15-maker/FamilyCourse/internal/store"
)

// Attempt is one completed quiz submission for a round. The log is
// append-only: a student retaking a round adds a new record, nothing is
// ever overwritten or deleted.
type Attempt struct {
	ID             string    `json:"id"`
	StudentID      string    `json:"studentId"`
	UnitID         string    `json:"unitId"`
	RoundID        string    `json:"roundId"`
	Score          int       `json:"score"`
	IncorrectWords []string  `json:"incorrectWords,omitempty"`
	CompletedAt    time.Time `json:"completedAt"`
}

type gradeKey struct {
	studentID string
	unitID    string
}

// Store holds the attempt log and the offline grade set. In-memory state is
// the source of truth for the session; every mutation writes the full state
// back to the document repo, and a write failure is logged and swallowed so
// the caller's operation still takes effect.
type Store struct {
	cat  *catalog.Catalog
	docs store.DocumentRepo

	mu       sync.RWMutex
	attempts []Attempt
	grades   map[gradeKey]Grade
}

// NewStore creates a Store and hydrates it from the document repo. A read
// failure leaves the store empty rather than failing startup.
func NewStore(ctx context.Context, cat *catalog.Catalog, docs store.DocumentRepo) *Store {
	s := &Store{
		cat:    cat,
		docs:   docs,
		grades: make(map[gradeKey]Grade),
	}

	var attempts []Attempt
	if _, err := docs.Load(ctx, store.KeyStudentProgress, &attempts); err != nil {
		fmt.Fprintf(os.Stderr, "warning: load progress log: %v\n", err)
	} else {
		s.attempts = attempts
	}

	var grades []Grade
	if _, err := docs.Load(ctx, store.KeyOfflineGrades, &grades); err != nil {
		fmt.Fprintf(os.Stderr, "warning: load offline grades: %v\n", err)
	} else {
		for _, g := range grades {
			s.grades[gradeKey{g.StudentID, g.UnitID}] = g
		}
	}

	return s
}

// RecordAttempt appends a new attempt with CompletedAt set to now and
// persists the full log. It never fails the caller; scores outside 0-100
// are clamped.
func (s *Store) RecordAttempt(ctx context.Context, studentID, unitID, roundID string, score int, incorrectWords []string) Attempt {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	a := Attempt{
		ID:             uuid.New().String(),
		StudentID:      studentID,
		UnitID:         unitID,
		RoundID:        roundID,
		Score:          score,
		IncorrectWords: incorrectWords,
		CompletedAt:    time.Now().Truncate(time.Millisecond),
	}

	s.mu.Lock()
	s.attempts = append(s.attempts, a)
	log := make([]Attempt, len(s.attempts))
	copy(log, s.attempts)
	s.mu.Unlock()

	if err := s.docs.Save(ctx, store.KeyStudentProgress, log); err != nil {
		fmt.Fprintf(os.Stderr, "warning: persist progress log: %v\n", err)
	}
	return a
}

// AttemptsFor returns all attempts a student made in a unit, any round.
func (s *Store) AttemptsFor(studentID, unitID string) []Attempt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Attempt
	for _, a := range s.attempts {
		if a.StudentID == studentID && a.UnitID == unitID {
			out = append(out, a)
		}
	}
	return out
}

// AttemptsForRound returns all attempts a student made on a single round.
func (s *Store) AttemptsForRound(studentID, unitID, roundID string) []Attempt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Attempt
	for _, a := range s.attempts {
		if a.StudentID == studentID && a.UnitID == unitID && a.RoundID == roundID {
			out = append(out, a)
		}
	}
	return out
}

// AttemptsForStudent returns every attempt a student made across all units.
func (s *Store) AttemptsForStudent(studentID string) []Attempt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Attempt
	for _, a := range s.attempts {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	return out
}
