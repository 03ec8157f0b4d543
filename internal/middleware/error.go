package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"quizme/internal/domain"
	"quizme/internal/dto"
	"quizme/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is a centralized error handling middleware. It maps
// domain error codes onto HTTP statuses and, outside production, adds
// the underlying diagnostic detail to the response body.
func ErrorHandler(production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get()

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)

			log.Error("Domain error occurred",
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", statusCode),
				zap.Error(domainErr.Cause),
			)

			response := dto.ErrorResponse{Error: domainErr.Message}
			if !production {
				response.Details = diagnosticDetail(domainErr)
			}
			return c.Status(statusCode).JSON(response)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("HTTP error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{
				Error: fiberErr.Message,
			})
		}

		log.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		response := dto.ErrorResponse{Error: "Internal server error"}
		if !production {
			response.Details = err.Error()
		}
		return c.Status(http.StatusInternalServerError).JSON(response)
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeUnsupportedFormat, domain.CodeExtractionFailure, domain.CodeInsufficientText,
		domain.CodeInvalidQuizStructure, domain.CodeInvalidInput, domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodeRateLimited:
		return http.StatusTooManyRequests
	case domain.CodeQuotaExceeded:
		return http.StatusPaymentRequired
	default:
		// MissingCredential, InvalidCredential, Timeout, RemoteFailure,
		// UnparsableResponse and anything unexpected.
		return http.StatusInternalServerError
	}
}

func diagnosticDetail(err *domain.DomainError) string {
	detail := ""
	if err.Cause != nil {
		detail = err.Cause.Error()
	}
	for key, value := range err.Context {
		if detail != "" {
			detail += "; "
		}
		detail += fmt.Sprintf("%s=%v", key, value)
	}
	return detail
}
