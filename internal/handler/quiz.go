package handler

import (
	"io"
	"time"

	"quizme/internal/config"
	"quizme/internal/domain"
	"quizme/internal/dto"
	"quizme/internal/logger"
	"quizme/internal/service"
	"quizme/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// sampleStudyText is a fixed passage used by the generation self-test
// endpoint; it is long enough to pass the minimum-length gate.
const sampleStudyText = "The sun is a star. It provides light and heat to Earth. The Earth orbits around the sun once every year."

// QuizHandler handles quiz generation HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
	cfg       *config.Config
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(svc service.QuizService, cfg *config.Config) *QuizHandler {
	return &QuizHandler{
		service:   svc,
		validator: validation.NewValidator(),
		cfg:       cfg,
	}
}

// Health godoc
// @Summary Health check
// @Description Reports whether the API is up
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *QuizHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "OK",
		Message:   "Quiz Me API is running!",
		Timestamp: time.Now().UTC(),
	})
}

// TestGeneration godoc
// @Summary Test quiz generation
// @Description Runs the generation pipeline on a fixed sample text
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.TestGenerationResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /test-generation [get]
func (h *QuizHandler) TestGeneration(c *fiber.Ctx) error {
	quiz, err := h.service.GenerateQuizFromText(c.Context(), sampleStudyText, domain.DifficultyEasy, 1)
	if err != nil {
		return err
	}

	return c.JSON(dto.TestGenerationResponse{
		Success:    true,
		Message:    "Completion service connection working!",
		SampleQuiz: quiz,
	})
}

// UploadDocument godoc
// @Summary Generate a quiz from an uploaded document
// @Description Extracts text from a PDF or DOCX upload and generates a multiple-choice quiz
// @Tags quiz
// @Accept multipart/form-data
// @Produce json
// @Param document formData file true "Study document (PDF or DOCX, max 10MB)"
// @Param difficulty formData string true "Quiz difficulty (easy, medium, hard)"
// @Param questionCount formData int true "Number of questions to generate"
// @Success 200 {object} dto.UploadQuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 402 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /upload-document [post]
func (h *QuizHandler) UploadDocument(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("document")
	if err != nil {
		return domain.NewInvalidInputError("No file uploaded")
	}
	if fileHeader.Size > int64(h.cfg.Upload.MaxFileSize) {
		return domain.NewInvalidInputError("File too large. Maximum size is 10MB.")
	}

	difficulty, questionCount, err := h.validator.ValidateGenerationParams(
		c.FormValue("difficulty"), c.FormValue("questionCount"))
	if err != nil {
		return err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.NewInternalError("Failed to open uploaded file", err)
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return domain.NewInternalError("Failed to read uploaded file", err)
	}

	logger.Get().Info("Document upload received",
		zap.String("filename", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size),
		zap.String("difficulty", string(difficulty)),
		zap.Int("question_count", questionCount),
	)

	result, err := h.service.GenerateQuizFromDocument(c.Context(), fileBytes, fileHeader.Filename, difficulty, questionCount)
	if err != nil {
		return err
	}

	return c.JSON(dto.UploadQuizResponse{
		Success: true,
		Quiz:    result.Quiz,
		Metadata: dto.UploadMetadata{
			Filename:            fileHeader.Filename,
			Difficulty:          string(difficulty),
			QuestionCount:       questionCount,
			ExtractedTextLength: result.ExtractedTextLength,
			GeneratedAt:         time.Now().UTC(),
		},
	})
}
