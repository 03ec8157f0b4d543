// Package generator builds completion prompts and turns raw completion
// replies into validated quizzes.
package generator

import (
	"fmt"

	"quizme/internal/domain"
)

// MaxDocumentChars caps how much document text is embedded in a prompt,
// to bound request size.
const MaxDocumentChars = 8000

// SystemPrompt is sent as the system message on every completion request.
const SystemPrompt = "You are an expert educator who creates engaging and accurate quizzes based on study materials. Always respond with valid JSON format."

var difficultyInstructions = map[domain.Difficulty]string{
	domain.DifficultyEasy:   "Create simple, straightforward questions that test basic understanding and recall of key facts.",
	domain.DifficultyMedium: "Create moderate difficulty questions that require some analysis and understanding of concepts.",
	domain.DifficultyHard:   "Create challenging questions that require critical thinking, analysis, and deep understanding of the material.",
}

const promptTemplate = `Based on the following study material, create a %s difficulty quiz with exactly %d multiple-choice questions.

Study Material:
"""
%s
"""

Requirements:
- %s
- Each question should have exactly 4 options (A, B, C, D)
- Only one option should be correct
- Questions should be diverse and cover different parts of the material
- Avoid questions that are too obvious or too obscure
- Make sure all questions are answerable based on the provided material

Return the response in this exact JSON format:
{
  "title": "Quiz from Study Material",
  "difficulty": "%s",
  "totalQuestions": %d,
  "questions": [
    {
      "id": 1,
      "question": "Your question here?",
      "options": {
        "A": "First option",
        "B": "Second option",
        "C": "Third option",
        "D": "Fourth option"
      },
      "correctAnswer": "A",
      "explanation": "Brief explanation of why this is correct"
    }
  ]
}

Make sure to return valid JSON only, no additional text or markdown formatting.`

// PromptBuilder deterministically constructs completion payloads.
// It is stateless and safe for concurrent use.
type PromptBuilder struct{}

// NewPromptBuilder creates a new PromptBuilder instance
func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Build assembles the completion payload for a generation request.
// Callers must have validated the difficulty already; the instruction
// table only covers the three recognized levels.
func (b *PromptBuilder) Build(req domain.GenerationRequest) domain.PromptPayload {
	text := req.DocumentText
	if len(text) > MaxDocumentChars {
		text = text[:MaxDocumentChars]
	}

	user := fmt.Sprintf(promptTemplate,
		req.Difficulty,
		req.QuestionCount,
		text,
		difficultyInstructions[req.Difficulty],
		req.Difficulty,
		req.QuestionCount,
	)

	return domain.PromptPayload{
		System: SystemPrompt,
		User:   user,
	}
}
