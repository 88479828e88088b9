package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-talent-tracking/config"
	v1 "go-talent-tracking/internal/delivery/http/v1"
	"go-talent-tracking/internal/repository/postgres"
	"go-talent-tracking/internal/usecase"
	"go-talent-tracking/pkg/database"
	"go-talent-tracking/pkg/logger"
	"go-talent-tracking/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting talent tracking backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	experienceRepo := postgres.NewWorkExperienceRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)

	// 5. Setup UseCases
	candidateValidator := validation.NewCandidateValidator(validator.New())
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, educationRepo, experienceRepo, resumeRepo, candidateValidator)

	// 6. Ensure upload directory exists
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Log.Error("Failed to create upload directory", "error", err)
		os.Exit(1)
	}

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC: candidateUC,
		Config:      cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
