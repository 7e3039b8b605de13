package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"nila-backend/internal/config"
	"nila-backend/internal/db"
	apihttp "nila-backend/internal/http"
	"nila-backend/internal/llm"
	"nila-backend/internal/repository"
	"nila-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	userRepo := repository.NewPgUserRepository(pool)
	messageRepo := repository.NewPgMessageRepository(pool)

	llmClient := llm.NewDisabledClient("gemini api key not configured")
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("gemini client init failed", zap.Error(err))
		} else {
			llmClient = gemini
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, chat disabled")
	}

	loginWindow := time.Duration(cfg.LoginRateWindowSecs) * time.Second
	rateLimiter := service.NewLoginRateLimiter(loginWindow, cfg.LoginRateMax)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			rateLimiter = service.NewRedisLoginRateLimiter(redisClient, loginWindow, cfg.LoginRateMax)
		}
		cancel()
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	userSvc := service.NewUserService(logger, userRepo)
	chatSvc := service.NewChatService(logger, messageRepo, llmClient, cfg.HistoryWindow)

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc, rateLimiter)
	chatHandler := apihttp.NewChatHandler(logger, chatSvc)
	authMW := apihttp.JWTAuthMiddleware(jwtSvc, userRepo)
	router := apihttp.NewRouter(logger, cfg.AllowedOrigins, authMW, userHandler, chatHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
