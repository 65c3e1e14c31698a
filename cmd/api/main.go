package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"incorply/internal/catalog"
	"incorply/internal/llm"
	"incorply/internal/order"
	"incorply/internal/recommend"
	"incorply/internal/router"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	// ───────────────────────── LOGGER ─────────────────────────
	var logger *zap.Logger
	var err error
	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Missing Gemini credentials are not fatal: every recommendation call
	// degrades to its static fallback.
	for _, k := range []string{"GEMINI_API_KEY", "GEMINI_MODEL"} {
		if os.Getenv(k) == "" {
			logger.Warn("env var not set, recommendations will use fallbacks", zap.String("var", k))
		}
	}

	// ───────────────────────── CATALOG ─────────────────────────
	cat := catalog.Default()
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		cat, err = catalog.Load(path)
		if err != nil {
			logger.Fatal("catalog load failed", zap.Error(err))
		}
		logger.Info("catalog loaded", zap.String("path", path))
	}

	// ───────────────────────── CORE WIRING ─────────────────────────
	orderRepo := order.NewInMemoryRepository()
	orderService := order.NewService(orderRepo, cat, logger)
	orderHandler := order.NewHandler(orderService)

	llmClient := llm.NewGeminiClient()
	recService := recommend.NewService(llmClient, cat, logger, nil)
	recHandler := recommend.NewHandler(orderService, recService)

	// ───────────────────────── START ─────────────────────────
	r := router.NewRouter(orderHandler, recHandler, orderService, logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	logger.Info("API running", zap.String("addr", "http://localhost:"+port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
