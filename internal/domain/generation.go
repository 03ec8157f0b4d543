package domain

import "context"

// Difficulty is one of the three recognized quiz difficulty levels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps a raw string onto a known difficulty level.
// Unknown values are rejected here, at the boundary, so the prompt
// builder never sees a difficulty it has no instruction for.
func ParseDifficulty(raw string) (Difficulty, bool) {
	switch Difficulty(raw) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(raw), true
	}
	return "", false
}

// GenerationRequest carries the inputs of one quiz generation run.
type GenerationRequest struct {
	DocumentText  string
	Difficulty    Difficulty
	QuestionCount int
}

// PromptPayload is the fully built completion request content.
type PromptPayload struct {
	System string
	User   string
}

// CompletionClient sends a single prompt to a remote text-completion
// service and returns the raw reply text. Implementations must be safe
// for concurrent use and must not retry internally.
type CompletionClient interface {
	Complete(ctx context.Context, payload PromptPayload) (string, error)
}
