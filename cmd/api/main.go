package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizme/internal/adapter/completion"
	"quizme/internal/config"
	"quizme/internal/extractor"
	"quizme/internal/handler"
	"quizme/internal/logger"
	"quizme/internal/middleware"
	"quizme/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	if cfg.OpenAI.APIKey == "" {
		appLogger.Warn("OPENAI_API_KEY is not set; quiz generation requests will fail")
	}

	// The pipeline collaborators are stateless or hold only immutable
	// configuration, so one instance of each serves all requests.
	completionClient := completion.NewOpenAIClient(cfg.OpenAI)
	documentExtractor := extractor.New()
	quizService := service.NewQuizService(documentExtractor, completionClient)
	quizHandler := handler.NewQuizHandler(quizService, cfg)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Upload.MaxFileSize,
		ErrorHandler: middleware.ErrorHandler(cfg.IsProduction()),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	apiGroup := app.Group("/api")
	apiGroup.Get("/health", quizHandler.Health)
	apiGroup.Get("/test-generation", quizHandler.TestGeneration)
	apiGroup.Post("/upload-document", quizHandler.UploadDocument)

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
		)
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
