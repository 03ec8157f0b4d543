package generator

import (
	"fmt"

	"quizme/internal/domain"
)

// QuizValidator enforces the structural contract of a quiz candidate
// before it is handed to a client. It is stateless and safe for
// concurrent use.
type QuizValidator struct{}

// NewQuizValidator creates a new QuizValidator instance
func NewQuizValidator() *QuizValidator {
	return &QuizValidator{}
}

// Validate checks the candidate in order, failing fast at the first
// violated constraint, and returns it re-typed as a Quiz. No coercion
// or repair is performed.
func (v *QuizValidator) Validate(candidate map[string]interface{}) (*domain.Quiz, error) {
	if candidate == nil {
		return nil, domain.NewInvalidQuizStructureError("Quiz must be a valid object")
	}

	rawQuestions, ok := candidate["questions"].([]interface{})
	if !ok {
		return nil, domain.NewInvalidQuizStructureError("Quiz must contain a questions array")
	}
	if len(rawQuestions) == 0 {
		return nil, domain.NewInvalidQuizStructureError("Quiz must contain at least one question")
	}

	questions := make([]domain.Question, 0, len(rawQuestions))
	for i, raw := range rawQuestions {
		question, err := validateQuestion(i+1, raw)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	quiz := &domain.Quiz{
		Title:          stringField(candidate, "title"),
		Difficulty:     stringField(candidate, "difficulty"),
		TotalQuestions: intField(candidate, "totalQuestions", len(questions)),
		Questions:      questions,
	}
	return quiz, nil
}

func validateQuestion(num int, raw interface{}) (domain.Question, error) {
	q, ok := raw.(map[string]interface{})
	if !ok {
		return domain.Question{}, domain.NewInvalidQuizStructureError(
			fmt.Sprintf("Question %d is missing required fields", num))
	}

	id, idOK := asInt(q["id"])
	text, _ := q["question"].(string)
	options, optionsOK := q["options"].(map[string]interface{})
	answer, _ := q["correctAnswer"].(string)

	if !idOK || id == 0 || text == "" || !optionsOK || answer == "" {
		return domain.Question{}, domain.NewInvalidQuizStructureError(
			fmt.Sprintf("Question %d is missing required fields", num))
	}

	labeled := make(map[string]string, len(domain.OptionLabels))
	for _, label := range domain.OptionLabels {
		optionText, _ := options[label].(string)
		if optionText == "" {
			return domain.Question{}, domain.NewInvalidQuizStructureError(
				fmt.Sprintf("Question %d must have options A, B, C, and D", num))
		}
		labeled[label] = optionText
	}

	if !domain.IsValidOptionLabel(answer) {
		return domain.Question{}, domain.NewInvalidQuizStructureError(
			fmt.Sprintf("Question %d must have a correct answer of A, B, C, or D", num))
	}

	explanation, _ := q["explanation"].(string)

	return domain.Question{
		ID:            id,
		Question:      text,
		Options:       labeled,
		CorrectAnswer: answer,
		Explanation:   explanation,
	}, nil
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func intField(m map[string]interface{}, key string, fallback int) int {
	if n, ok := asInt(m[key]); ok && n != 0 {
		return n
	}
	return fallback
}
