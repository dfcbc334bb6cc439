package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/lib/pq"
	"github.com/opinio-app/survey_backend/internal/application"
	"github.com/opinio-app/survey_backend/internal/checkout"
	"github.com/opinio-app/survey_backend/internal/config"
	"github.com/opinio-app/survey_backend/internal/email"
	"github.com/opinio-app/survey_backend/internal/infrastructure/migrate"
	"github.com/opinio-app/survey_backend/internal/infrastructure/repository"
	handlers "github.com/opinio-app/survey_backend/internal/interfaces/http"
	"github.com/opinio-app/survey_backend/internal/logger"
	"github.com/opinio-app/survey_backend/internal/scheduler"
	services "github.com/opinio-app/survey_backend/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer zlog.Sync()

	db, err := sql.Open("postgres", cfg.GetDBConnString())
	if err != nil {
		zlog.Fatal("error connecting to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		zlog.Fatal("error pinging database", zap.Error(err))
	}

	if err := migrate.Apply(db); err != nil {
		zlog.Fatal("error applying migrations", zap.Error(err))
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Length",
		MaxAge:           86400,
	}))

	// Email client
	var emailClient *email.Client
	if cfg.SMTPHost != "" {
		emailClient, err = email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
		)
		if err != nil {
			zlog.Warn("email client initialization failed", zap.Error(err))
			emailClient = nil
		}
	}

	tokens := handlers.NewTokenManager(cfg.JWTSecret)
	app.Use(tokens.WithAuth())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	snapshotRepo := repository.NewUserSnapshotRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	surveyRepo := repository.NewSurveyRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// emailClient stays a typed nil unless configured; pass the interface as
	// nil so the services' nil checks work.
	var sender application.EmailSender
	if emailClient != nil {
		sender = emailClient
	}

	// Auth
	authService := application.NewAuthService(userRepo, tokens.Sign, sender, zlog)
	authHandler := handlers.NewAuthHandler(authService)

	// Users (RGPD deletion)
	userService := application.NewUserService(userRepo, paymentRepo, sender, zlog)
	userHandler := handlers.NewUserHandler(userService)

	// Categories
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryService)

	// Surveys and statistics
	surveyService := application.NewSurveyService(surveyRepo, categoryRepo, paymentRepo, cfg.FreeSurveyQuota, zlog)
	statsService := application.NewStatsService(answerRepo, surveyRepo)
	surveyHandler := handlers.NewSurveyHandler(surveyService, statsService)

	// Questions
	questionService := application.NewQuestionService(questionRepo, surveyRepo)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Answers
	answerService := application.NewAnswerService(answerRepo, questionRepo, surveyRepo)
	answerHandler := handlers.NewAnswerHandler(answerService)

	// Payments
	checkoutClient := checkout.NewClient(cfg.CheckoutAPIKey)
	paymentService := application.NewPaymentService(paymentRepo, checkoutClient, zlog)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// S3 uploads
	var uploadHandler *handlers.UploadHandler
	if cfg.S3Bucket != "" {
		s3Service, err := services.NewS3Service(cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			zlog.Warn("S3 service initialization failed", zap.Error(err))
		} else {
			uploadHandler = handlers.NewUploadHandler(s3Service, zlog)
		}
	}

	// Snapshot retention
	retentionScheduler := scheduler.NewRetentionScheduler(snapshotRepo, cfg.SnapshotRetention, zlog)
	retentionScheduler.Start()
	defer retentionScheduler.Stop()

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	users := api.Group("/users")
	users.Get("/me", handlers.RequireAuth(), userHandler.Me)
	users.Delete("/me", handlers.RequireAuth(), userHandler.DeleteMe)

	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", handlers.RequireAdmin(), categoryHandler.Create)
	categories.Put("/:id", handlers.RequireAdmin(), categoryHandler.Update)
	categories.Delete("/:id", handlers.RequireAdmin(), categoryHandler.Delete)

	surveys := api.Group("/surveys")
	surveys.Get("/", surveyHandler.ListPublished)
	surveys.Get("/mine", handlers.RequireAuth(), surveyHandler.ListMine)
	surveys.Post("/", handlers.RequireAuth(), surveyHandler.Create)
	surveys.Get("/:id", surveyHandler.Get)
	surveys.Patch("/:id", handlers.RequireAuth(), surveyHandler.Update)
	surveys.Delete("/:id", handlers.RequireAuth(), surveyHandler.Delete)
	surveys.Get("/:id/stats", handlers.RequireAuth(), surveyHandler.Stats)
	surveys.Get("/:surveyId/questions", questionHandler.ListBySurvey)
	surveys.Post("/:surveyId/questions", handlers.RequireAuth(), questionHandler.Create)
	surveys.Get("/:surveyId/answers/mine", handlers.RequireAuth(), answerHandler.ListMine)

	questions := api.Group("/questions")
	questions.Patch("/:id", handlers.RequireAuth(), questionHandler.Update)
	questions.Delete("/:id", handlers.RequireAuth(), questionHandler.Delete)

	answers := api.Group("/answers")
	answers.Post("/", handlers.RequireAuth(), answerHandler.Submit)

	payments := api.Group("/payments")
	payments.Post("/", handlers.RequireAuth(), paymentHandler.Create)
	payments.Get("/", handlers.RequireAuth(), paymentHandler.ListMine)
	payments.Get("/:id", handlers.RequireAuth(), paymentHandler.Get)
	payments.Patch("/:id", handlers.RequireAdmin(), paymentHandler.Update)

	if uploadHandler != nil {
		upload := api.Group("/upload")
		upload.Post("/images", handlers.RequireAuth(), uploadHandler.UploadImage)
	}

	zlog.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		zlog.Fatal("error starting server", zap.Error(err))
	}
}
