package practice

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert vocabulary test generator for a school English course taught to Russian-speaking students.

Rules:
- Generate exactly one multiple-choice question for every weak word, in the order given.
- Each question tests the Russian translation of the English word.
- Each question has exactly 4 options: the one correct translation and 3 incorrect distractors.
- Distractors should be plausible Russian translations related to the unit's theme, never the correct answer restated.
- Make sure exactly one option is correct.
- Return the result as JSON only.`

// buildUserMessage constructs the generation request for one student/unit.
func buildUserMessage(studentID string, unitNumber int, weakWords []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Student ID: %s\n", studentID)
	fmt.Fprintf(&b, "Unit: %d\n", unitNumber)
	fmt.Fprintf(&b, "Weak words: %s\n", strings.Join(weakWords, ", "))

	return b.String()
}
