package practice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/Vladislav15-maker/FamilyCourse/internal/catalog"
	"github.com/Vladislav15-maker/FamilyCourse/internal/llm"
	"github.com/Vladislav15-maker/FamilyCourse/internal/progress"
	"github.com/Vladislav15-maker/FamilyCourse/internal/store"
)

// Validation and state errors. All expected failure modes of Generate are
// returned as values; the stored test set is only ever touched on success.
var (
	// ErrNoWeakWords is returned when Generate is called with an empty
	// weak-word list. No external call is made.
	ErrNoWeakWords = errors.New("no weak words to generate a test from")

	// ErrGenerating is returned when a generation request for the same
	// (student, unit) pair is already in flight.
	ErrGenerating = errors.New("test generation already in progress")
)

type testKey struct {
	studentID string
	unitID    string
}

// Service derives weak words from the progress history, generates
// personalized tests through the model provider, and stores the results
// keyed by (student, unit).
type Service struct {
	provider llm.Provider
	prog     *progress.Store
	cat      *catalog.Catalog
	docs     store.DocumentRepo

	cfg Config

	mu         sync.Mutex
	tests      map[testKey]Test
	generating map[testKey]bool
}

// Config bounds a single generation request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the generation limits used in production.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// NewService creates the personalized test service and hydrates the stored
// test set from the document repo. A read failure leaves the set empty.
func NewService(ctx context.Context, provider llm.Provider, prog *progress.Store, cat *catalog.Catalog, docs store.DocumentRepo, cfg Config) *Service {
	s := &Service{
		provider:   provider,
		prog:       prog,
		cat:        cat,
		docs:       docs,
		cfg:        cfg,
		tests:      make(map[testKey]Test),
		generating: make(map[testKey]bool),
	}

	var tests []Test
	if _, err := docs.Load(ctx, store.KeyPersonalizedTests, &tests); err != nil {
		fmt.Fprintf(os.Stderr, "warning: load personalized tests: %v\n", err)
	} else {
		for _, t := range tests {
			s.tests[testKey{t.StudentID, t.UnitID}] = t
		}
	}

	return s
}

// DeriveWeakWords collects the English spellings of every word the student
// answered incorrectly in the unit, across all rounds and attempts,
// de-duplicated in first-seen order. Word ids that no longer resolve in the
// catalog are dropped.
func (s *Service) DeriveWeakWords(studentID, unitID string) []string {
	seen := make(map[string]bool)
	var words []string

	for _, a := range s.prog.AttemptsFor(studentID, unitID) {
		for _, wordID := range a.IncorrectWords {
			w, ok := s.cat.Word(unitID, wordID)
			if !ok || seen[w.English] {
				continue
			}
			seen[w.English] = true
			words = append(words, w.English)
		}
	}
	return words
}

// State reports where the (student, unit) pair is in the generation
// lifecycle.
func (s *Service) State(studentID, unitID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := testKey{studentID, unitID}
	switch {
	case s.generating[key]:
		return StateGenerating
	case s.hasTestLocked(key):
		return StateReady
	default:
		return StateNoTest
	}
}

// TestFor returns the stored test for a (student, unit) pair, if any.
// Pure lookup: it never triggers generation.
func (s *Service) TestFor(studentID, unitID string) (*Test, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tests[testKey{studentID, unitID}]
	if !ok {
		return nil, false
	}
	return &t, true
}

// testOutput is the raw model response before conversion.
type testOutput struct {
	TestQuestions []TestQuestion `json:"testQuestions"`
}

// Generate builds a personalized test for the weak words and upserts it into
// the test store, replacing any prior test for the pair. All expected
// failures (empty word list, malformed unit id, provider error, malformed
// response) return an error and leave the stored state untouched.
func (s *Service) Generate(ctx context.Context, studentID, unitID string, weakWords []string) (*Test, error) {
	if len(weakWords) == 0 {
		return nil, ErrNoWeakWords
	}

	// Resolve the unit's numeric code before touching the provider.
	unitNumber, err := catalog.UnitNumber(unitID)
	if err != nil {
		return nil, err
	}

	key := testKey{studentID, unitID}
	s.mu.Lock()
	if s.generating[key] {
		s.mu.Unlock()
		return nil, ErrGenerating
	}
	s.generating[key] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.generating, key)
		s.mu.Unlock()
	}()

	test, err := s.generate(ctx, studentID, unitID, unitNumber, weakWords)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.tests[key] = *test
	snapshot := s.testListLocked()
	s.mu.Unlock()

	if err := s.docs.Save(ctx, store.KeyPersonalizedTests, snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "warning: persist personalized tests: %v\n", err)
	}
	return test, nil
}

func (s *Service) generate(ctx context.Context, studentID, unitID string, unitNumber int, weakWords []string) (*Test, error) {
	ctx = llm.WithPurpose(ctx, "practice-test")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(studentID, unitNumber, weakWords)},
		},
		Schema:      TestSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("test generation: %w", err)
	}

	var out testOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse test response: %w", err)
	}

	if err := validateQuestions(out.TestQuestions); err != nil {
		return nil, err
	}

	return &Test{
		StudentID: studentID,
		UnitID:    unitID,
		Questions: out.TestQuestions,
		CreatedAt: time.Now().Truncate(time.Millisecond),
	}, nil
}

// hasTestLocked reports whether a test is stored for key. Caller holds s.mu.
func (s *Service) hasTestLocked(key testKey) bool {
	_, ok := s.tests[key]
	return ok
}

// testListLocked snapshots the test map as a slice for serialization.
// Caller holds s.mu.
func (s *Service) testListLocked() []Test {
	out := make([]Test, 0, len(s.tests))
	for _, t := range s.tests {
		out = append(out, t)
	}
	return out
}
