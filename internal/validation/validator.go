package validation

import (
	"fmt"
	"strconv"
	"strings"

	"quizme/internal/domain"
)

// MaxQuestionCount bounds how many questions one request may ask for.
const MaxQuestionCount = 50

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerationParams validates the difficulty and question count
// form fields of an upload request. Unknown difficulty values are
// rejected here rather than passed through to the prompt builder.
func (v *Validator) ValidateGenerationParams(difficulty, questionCount string) (domain.Difficulty, int, error) {
	if strings.TrimSpace(difficulty) == "" || strings.TrimSpace(questionCount) == "" {
		return "", 0, domain.NewError(domain.CodeValidation,
			"Missing required parameters: difficulty and questionCount", nil)
	}

	level, ok := domain.ParseDifficulty(strings.ToLower(strings.TrimSpace(difficulty)))
	if !ok {
		return "", 0, domain.NewError(domain.CodeValidation,
			fmt.Sprintf("Invalid difficulty: %s. Must be one of easy, medium, hard.", difficulty), nil)
	}

	count, err := strconv.Atoi(strings.TrimSpace(questionCount))
	if err != nil {
		return "", 0, domain.NewError(domain.CodeValidation,
			fmt.Sprintf("Invalid questionCount: %s. Must be a positive integer.", questionCount), nil)
	}
	if count <= 0 || count > MaxQuestionCount {
		return "", 0, domain.NewError(domain.CodeValidation,
			fmt.Sprintf("questionCount must be between 1 and %d", MaxQuestionCount), nil)
	}

	return level, count, nil
}
