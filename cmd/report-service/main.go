package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/insideimaging/insideimaging-backend/internal/auth"
	authhandler "github.com/insideimaging/insideimaging-backend/internal/auth/handler"
	"github.com/insideimaging/insideimaging-backend/internal/auth/jwt"
	authrepo "github.com/insideimaging/insideimaging-backend/internal/auth/repository"
	authservice "github.com/insideimaging/insideimaging-backend/internal/auth/service"
	"github.com/insideimaging/insideimaging-backend/internal/report/detector"
	"github.com/insideimaging/insideimaging-backend/internal/report/extractor"
	"github.com/insideimaging/insideimaging-backend/internal/report/handler"
	"github.com/insideimaging/insideimaging-backend/internal/report/repository"
	"github.com/insideimaging/insideimaging-backend/internal/report/service"
	"github.com/insideimaging/insideimaging-backend/internal/report/storage"
	"github.com/insideimaging/insideimaging-backend/internal/report/summarizer"
	"github.com/insideimaging/insideimaging-backend/internal/report/validator"
	"github.com/insideimaging/insideimaging-backend/pkg/config"
	"github.com/insideimaging/insideimaging-backend/pkg/database"
	"github.com/insideimaging/insideimaging-backend/pkg/httputil"
	"github.com/insideimaging/insideimaging-backend/pkg/logger"
	"github.com/insideimaging/insideimaging-backend/pkg/messaging"
)

func main() {
	// Load configuration
	cfg, err := config.LoadWithValidation("report-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("report-service", cfg.Server.Environment)
	log.Info().Msg("starting Report Service")

	// Connect to database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := repository.Migrate(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}

	// Connect to RabbitMQ
	rmq, err := messaging.New(&cfg.RabbitMQ, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
	}
	defer rmq.Close()

	publisher, err := messaging.NewPublisher(rmq, messaging.ExchangeReportEvents, "report-service", log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create publisher")
	}

	// Repositories
	reportRepo := repository.NewReportRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	userRepo := authrepo.NewUserRepository(db)

	// Pipeline components
	jobStore := storage.NewJobStore(cfg.Upload.JobTTL)
	defer jobStore.Close()

	registry := extractor.NewRegistry(
		extractor.NewPDFExtractor(log),
		extractor.NewOCRExtractor(cfg.Upload.OCRLanguages, log),
		extractor.NewDocxExtractor(),
		extractor.NewTextExtractor(),
	)

	summarizers := buildSummarizers(cfg, log)

	reportService := service.NewService(
		registry,
		validator.New(validator.DefaultConfig()),
		detector.New(detector.DefaultConfig(), log),
		summarizers,
		jobStore,
		reportRepo,
		publisher,
		log,
	)
	feedbackService := service.NewFeedbackService(feedbackRepo, reportRepo, publisher, log)

	// Auth components
	jwtManager := jwt.NewManager(&cfg.JWT)
	authService := authservice.NewAuthService(userRepo, jwtManager, publisher, log)

	reportHandler := handler.NewHandler(reportService, feedbackService, reportRepo, log)
	authHandler := authhandler.NewHandler(authService, log)

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RealIP)
	r.Use(httputil.RequestID)
	r.Use(httputil.Logger(log))
	r.Use(httputil.Recoverer(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]interface{}{
			"status":   "healthy",
			"service":  "report-service",
			"database": db.Health(r.Context()),
			"rabbitmq": rmq.Health(),
		})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
		})

		r.Post("/reports", reportHandler.Upload)
		r.Get("/reports/{jobID}", reportHandler.GetJob)
		r.Get("/stats", reportHandler.Stats)
		r.Get("/events", reportHandler.RecentEvents)
		r.Get("/feedback", reportHandler.ListFeedback)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(jwtManager))
			r.Post("/feedback", reportHandler.SubmitFeedback)
		})
	})

	// Create server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// buildSummarizers assembles the summarizer chain. The OpenAI summarizer
// leads when a key is configured; the heuristic one always closes the
// chain so processing works offline.
func buildSummarizers(cfg *config.Config, log *logger.Logger) []summarizer.Summarizer {
	var chain []summarizer.Summarizer
	if cfg.OpenAI.APIKey != "" {
		chain = append(chain, summarizer.NewOpenAISummarizer(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.RequestTimeout,
			cfg.OpenAI.MaxOutputTokens,
			log,
		))
	} else {
		log.Warn().Msg("no OpenAI API key configured, using heuristic summarizer only")
	}
	chain = append(chain, summarizer.NewHeuristicSummarizer())
	return chain
}
