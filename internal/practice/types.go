package practice

import "time"

// TestQuestion is one multiple-choice item: the tested English word, its
// correct Russian translation, and four options containing the translation
// exactly once.
type TestQuestion struct {
	Word        string   `json:"word"`
	Translation string   `json:"translation"`
	Options     []string `json:"options"`
}

// Test is a generated personalized practice test. At most one exists per
// (student, unit) pair; regeneration replaces the whole test.
type Test struct {
	StudentID string         `json:"studentId"`
	UnitID    string         `json:"unitId"`
	Questions []TestQuestion `json:"questions"`
	CreatedAt time.Time      `json:"createdAt"`
}

// State describes where a (student, unit) pair is in the generation
// lifecycle.
type State int

const (
	// StateNoTest means no test is stored and none is being generated.
	StateNoTest State = iota

	// StateGenerating means a generation request is in flight. Advisory
	// only: it lets a UI disable duplicate submission, it is not a lock.
	StateGenerating

	// StateReady means a stored test exists. A failed regeneration never
	// rolls a pair back from Ready; the prior test stays.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateGenerating:
		return "generating"
	case StateReady:
		return "ready"
	default:
		return "none"
	}
}
