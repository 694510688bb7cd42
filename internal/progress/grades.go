package progress

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/Vladislav15-maker/FamilyCourse/internal/store"
)

// Grade is a teacher-entered offline grade on the Russian 2-5 scale.
// At most one grade exists per (student, unit) pair; re-grading replaces
// the prior entry.
type Grade struct {
	StudentID string    `json:"studentId"`
	UnitID    string    `json:"unitId"`
	Grade     int       `json:"grade"`
	GradedBy  string    `json:"gradedBy"`
	GradedAt  time.Time `json:"gradedAt"`
}

// UpsertGrade stores a grade, replacing any existing record for the
// (student, unit) pair, and persists the full grade set. Grades outside
// 2-5 are rejected before anything is written.
func (s *Store) UpsertGrade(ctx context.Context, studentID, unitID string, grade int, gradedBy string) (Grade, error) {
	if grade < 2 || grade > 5 {
		return Grade{}, fmt.Errorf("grade %d out of range: must be 2-5", grade)
	}

	g := Grade{
		StudentID: studentID,
		UnitID:    unitID,
		Grade:     grade,
		GradedBy:  gradedBy,
		GradedAt:  time.Now().Truncate(time.Millisecond),
	}

	s.mu.Lock()
	s.grades[gradeKey{studentID, unitID}] = g
	snapshot := s.gradeListLocked()
	s.mu.Unlock()

	if err := s.docs.Save(ctx, store.KeyOfflineGrades, snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "warning: persist offline grades: %v\n", err)
	}
	return g, nil
}

// GradeFor returns the current grade for a (student, unit) pair, if any.
func (s *Store) GradeFor(studentID, unitID string) (Grade, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.grades[gradeKey{studentID, unitID}]
	return g, ok
}

// GradesForStudent returns all grades a student has received, ordered by
// unit id for stable display.
func (s *Store) GradesForStudent(studentID string) []Grade {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Grade
	for k, g := range s.grades {
		if k.studentID == studentID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnitID < out[j].UnitID })
	return out
}

// gradeListLocked snapshots the grade map as a sorted slice for
// serialization. Caller holds s.mu.
func (s *Store) gradeListLocked() []Grade {
	out := make([]Grade, 0, len(s.grades))
	for _, g := range s.grades {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StudentID != out[j].StudentID {
			return out[i].StudentID < out[j].StudentID
		}
		return out[i].UnitID < out[j].UnitID
	})
	return out
}
