// @title Quiz Master API
// @version 1.0
// @description Browse, author, play and generate multiple choice quizzes, with scoring and leaderboards.
// @contact.name API Support
// @license.name MIT
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "quiz-master/cmd/api/docs"
	"quiz-master/internal/adapter"
	"quiz-master/internal/adapter/trivia"
	"quiz-master/internal/cache"
	"quiz-master/internal/config"
	"quiz-master/internal/database"
	"quiz-master/internal/domain"
	"quiz-master/internal/handler"
	"quiz-master/internal/logger"
	"quiz-master/internal/middleware"
	"quiz-master/internal/questionbank"
	"quiz-master/internal/repository"
	"quiz-master/internal/service"
	"quiz-master/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
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

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	quizRepository := repository.NewQuizDatabaseAdapter(db)
	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	attemptRepository := repository.NewAttemptDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Redis is optional: without it every read goes to the database.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, caching disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Connected to Redis", zap.String("address", cfg.Redis.Address))
		}
	}

	bank, err := questionbank.LoadDefault()
	if err != nil {
		appLogger.Fatal("Failed to load question bank", zap.Error(err))
	}

	var online service.OnlineSource
	if cfg.Trivia.Enabled {
		online = trivia.NewClient(cfg.Trivia)
		appLogger.Info("Online question source enabled", zap.String("base_url", cfg.Trivia.BaseURL))
	}

	quizCacheService := service.NewQuizCacheService(cacheAdapter, quizRepository, questionRepository, attemptRepository, cfg)
	generatorService := service.NewGeneratorService(online, bank)
	quizService := service.NewQuizService(quizRepository, questionRepository, attemptRepository, txManager, generatorService, quizCacheService)
	leaderboardService := service.NewLeaderboardService(quizRepository, quizCacheService)

	validator := validation.NewValidator()
	handlers := handler.Handlers{
		Quiz:        handler.NewQuizHandler(quizService, validator),
		Leaderboard: handler.NewLeaderboardHandler(leaderboardService),
		Generate:    handler.NewGenerateHandler(quizService, generatorService, validator),
		Health:      handler.NewHealthHandler(db, cacheAdapter),
		Validation:  middleware.NewValidationMiddleware(validator),
	}

	app := fiber.New(fiber.Config{
		AppName:      "quiz-master",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, handlers, handler.GenerateLimiter(cfg.RateLimit))

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("db_driver", cfg.DB.Driver),
			zap.Bool("cache", cacheAdapter != nil),
			zap.String("env", os.Getenv("ENV")),
		)
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
