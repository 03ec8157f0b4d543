package dto

import (
	"time"

	"quizme/internal/domain"
)

// UploadQuizResponse is the success body of POST /api/upload-document
// @Description Generated quiz with upload metadata
type UploadQuizResponse struct {
	Success  bool           `json:"success"`
	Quiz     *domain.Quiz   `json:"quiz"`
	Metadata UploadMetadata `json:"metadata"`
}

// UploadMetadata describes the processed upload
type UploadMetadata struct {
	Filename            string    `json:"filename"`
	Difficulty          string    `json:"difficulty"`
	QuestionCount       int       `json:"questionCount"`
	ExtractedTextLength int       `json:"extractedTextLength"`
	GeneratedAt         time.Time `json:"generatedAt"`
}

// TestGenerationResponse is the body of GET /api/test-generation
type TestGenerationResponse struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	SampleQuiz *domain.Quiz `json:"sampleQuiz"`
}

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse represents an error in the API response.
// Details carries the underlying diagnostic only outside production.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
