package practice

import "github.com/Vladislav15-maker/FamilyCourse/internal/llm"

// TestSchema defines the JSON schema for practice-test generation responses.
var TestSchema = &llm.Schema{
	Name:        "practice-test",
	Description: "A personalized multiple-choice vocabulary practice test",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"testQuestions": map[string]any{
				"type":        "array",
				"description": "One question per weak word, in the order the words were given",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{
							"type":        "string",
							"description": "The English word being tested",
						},
						"translation": map[string]any{
							"type":        "string",
							"description": "The correct Russian translation of the word",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 Russian options: the correct translation and 3 distractors related to the unit",
						},
					},
					"required":             []any{"word", "translation", "options"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"testQuestions"},
		"additionalProperties": false,
	},
}
