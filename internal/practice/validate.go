package practice

import "fmt"

// optionsPerQuestion is the fixed option count: one correct translation and
// three distractors.
const optionsPerQuestion = 4

// validateQuestions checks the semantic contract the JSON schema cannot
// express: a non-empty test where every question carries exactly four
// options of which exactly one equals the correct translation.
func validateQuestions(questions []TestQuestion) error {
	if len(questions) == 0 {
		return fmt.Errorf("generated test has no questions")
	}

	for i, q := range questions {
		if q.Word == "" || q.Translation == "" {
			return fmt.Errorf("question %d: empty word or translation", i+1)
		}
		if len(q.Options) != optionsPerQuestion {
			return fmt.Errorf("question %d (%s): got %d options, want %d",
				i+1, q.Word, len(q.Options), optionsPerQuestion)
		}

		matches := 0
		for _, opt := range q.Options {
			if opt == q.Translation {
				matches++
			}
		}
		if matches != 1 {
			return fmt.Errorf("question %d (%s): correct translation appears %d times in options, want exactly once",
				i+1, q.Word, matches)
		}
	}
	return nil
}
