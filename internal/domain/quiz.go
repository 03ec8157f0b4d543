package domain

// OptionLabels are the four answer labels every question must carry.
var OptionLabels = []string{"A", "B", "C", "D"}

// Question represents a single multiple-choice question within a quiz.
// IDs must be unique within a quiz but are not required to be contiguous.
type Question struct {
	ID            int               `json:"id"`
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correctAnswer"`
	Explanation   string            `json:"explanation,omitempty"`
}

// Quiz represents a validated quiz generated from a study document
type Quiz struct {
	Title          string     `json:"title"`
	Difficulty     string     `json:"difficulty"`
	TotalQuestions int        `json:"totalQuestions"`
	Questions      []Question `json:"questions"`
}

// IsValidOptionLabel reports whether label is one of A, B, C, D.
func IsValidOptionLabel(label string) bool {
	for _, l := range OptionLabels {
		if label == l {
			return true
		}
	}
	return false
}
