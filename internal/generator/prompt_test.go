package generator

import (
	"strings"
	"testing"

	"quizme/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildIsDeterministic(t *testing.T) {
	b := NewPromptBuilder()
	req := domain.GenerationRequest{
		DocumentText:  "Mitochondria are the powerhouse of the cell.",
		Difficulty:    domain.DifficultyMedium,
		QuestionCount: 5,
	}

	first := b.Build(req)
	second := b.Build(req)

	assert.Equal(t, first, second)
}

func TestBuildEmbedsRequestFields(t *testing.T) {
	b := NewPromptBuilder()
	payload := b.Build(domain.GenerationRequest{
		DocumentText:  "The French Revolution began in 1789.",
		Difficulty:    domain.DifficultyHard,
		QuestionCount: 7,
	})

	assert.Equal(t, SystemPrompt, payload.System)
	assert.Contains(t, payload.User, "create a hard difficulty quiz with exactly 7 multiple-choice questions")
	assert.Contains(t, payload.User, "The French Revolution began in 1789.")
	assert.Contains(t, payload.User, difficultyInstructions[domain.DifficultyHard])
	assert.Contains(t, payload.User, `"totalQuestions": 7`)
	assert.Contains(t, payload.User, `"difficulty": "hard"`)
}

func TestBuildSelectsInstructionPerDifficulty(t *testing.T) {
	b := NewPromptBuilder()
	for _, level := range []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard} {
		payload := b.Build(domain.GenerationRequest{
			DocumentText:  "Some material.",
			Difficulty:    level,
			QuestionCount: 1,
		})
		assert.Contains(t, payload.User, difficultyInstructions[level], "difficulty %s", level)
	}
}

func TestBuildTruncatesDocumentText(t *testing.T) {
	b := NewPromptBuilder()

	// '9' does not occur anywhere in the prompt template, so every
	// occurrence in the payload came from the document text.
	long := strings.Repeat("9", MaxDocumentChars+2500)
	payload := b.Build(domain.GenerationRequest{
		DocumentText:  long,
		Difficulty:    domain.DifficultyEasy,
		QuestionCount: 3,
	})

	assert.Equal(t, MaxDocumentChars, strings.Count(payload.User, "9"))
}

func TestBuildKeepsShortDocumentIntact(t *testing.T) {
	b := NewPromptBuilder()
	text := strings.Repeat("9", 120)
	payload := b.Build(domain.GenerationRequest{
		DocumentText:  text,
		Difficulty:    domain.DifficultyEasy,
		QuestionCount: 1,
	})

	assert.Contains(t, payload.User, text)
	assert.Equal(t, 120, strings.Count(payload.User, "9"))
}
