package service

import (
	"context"

	"quizme/internal/domain"
	"quizme/internal/extractor"
	"quizme/internal/generator"
	"quizme/internal/logger"

	"go.uber.org/zap"
)

// DocumentQuizResult carries a generated quiz together with metadata
// about the extraction that produced it.
type DocumentQuizResult struct {
	Quiz                *domain.Quiz
	ExtractedTextLength int
}

// QuizService generates validated quizzes from uploaded study documents.
type QuizService interface {
	// GenerateQuizFromDocument runs the full pipeline: extraction,
	// text validation, prompt construction, completion, parsing and
	// structural validation.
	GenerateQuizFromDocument(ctx context.Context, fileBytes []byte, declaredName string, difficulty domain.Difficulty, questionCount int) (*DocumentQuizResult, error)

	// GenerateQuizFromText runs the generation half of the pipeline on
	// already-extracted text.
	GenerateQuizFromText(ctx context.Context, documentText string, difficulty domain.Difficulty, questionCount int) (*domain.Quiz, error)
}

type quizService struct {
	extractor  *extractor.Extractor
	prompts    *generator.PromptBuilder
	parser     *generator.ResponseParser
	validator  *generator.QuizValidator
	completion domain.CompletionClient
}

// NewQuizService creates a new QuizService instance. All collaborators
// are stateless or hold only immutable configuration, so a single
// service instance is shared by all in-flight requests.
func NewQuizService(ext *extractor.Extractor, completion domain.CompletionClient) QuizService {
	return &quizService{
		extractor:  ext,
		prompts:    generator.NewPromptBuilder(),
		parser:     generator.NewResponseParser(),
		validator:  generator.NewQuizValidator(),
		completion: completion,
	}
}

func (s *quizService) GenerateQuizFromDocument(ctx context.Context, fileBytes []byte, declaredName string, difficulty domain.Difficulty, questionCount int) (*DocumentQuizResult, error) {
	text, err := s.extractor.Extract(fileBytes, declaredName)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Text extracted from document",
		zap.String("filename", declaredName),
		zap.Int("extracted_length", len(text)),
	)

	// Reject thin documents before any network call is made.
	if !extractor.IsSufficient(text) {
		return nil, domain.NewInsufficientTextError(len(text))
	}

	quiz, err := s.GenerateQuizFromText(ctx, text, difficulty, questionCount)
	if err != nil {
		return nil, err
	}

	return &DocumentQuizResult{
		Quiz:                quiz,
		ExtractedTextLength: len(text),
	}, nil
}

func (s *quizService) GenerateQuizFromText(ctx context.Context, documentText string, difficulty domain.Difficulty, questionCount int) (*domain.Quiz, error) {
	payload := s.prompts.Build(domain.GenerationRequest{
		DocumentText:  documentText,
		Difficulty:    difficulty,
		QuestionCount: questionCount,
	})

	logger.Get().Debug("Built completion prompt",
		zap.String("difficulty", string(difficulty)),
		zap.Int("question_count", questionCount),
		zap.Int("prompt_length", len(payload.User)),
	)

	raw, err := s.completion.Complete(ctx, payload)
	if err != nil {
		return nil, err
	}

	candidate, err := s.parser.Parse(raw)
	if err != nil {
		return nil, err
	}

	quiz, err := s.validator.Validate(candidate)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Quiz generated",
		zap.String("difficulty", string(difficulty)),
		zap.Int("total_questions", quiz.TotalQuestions),
	)
	return quiz, nil
}
