package main

import (
	"context"

	"github.com/007VICKY007/Swipe-Prototype/internal/cache"
	"github.com/007VICKY007/Swipe-Prototype/internal/config"
	"github.com/007VICKY007/Swipe-Prototype/internal/database"
	"github.com/007VICKY007/Swipe-Prototype/internal/engine"
	"github.com/007VICKY007/Swipe-Prototype/internal/gemini"
	"github.com/007VICKY007/Swipe-Prototype/internal/handler"
	"github.com/007VICKY007/Swipe-Prototype/internal/logger"
	"github.com/007VICKY007/Swipe-Prototype/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	DB         *pgxpool.Pool
	Gemini     *gemini.Client
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Engine     *engine.Engine
	Handler    *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(ctx, rdb); err != nil {
		sugar.Warnw("redis unreachable, resume snapshots disabled", "addr", cfg.Redis.Addr, "err", err)
	}

	geminiClient := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)

	repo := repository.NewRepository(pool)
	eng := engine.New(geminiClient, geminiClient, repo, repo, log)

	handlerApp := &handler.Handler{
		Logger:     log,
		Engine:     eng,
		Sessions:   repo,
		Candidates: repo,
		Reviewers:  repo,
		Reports:    geminiClient,
		JwtSecret:  cfg.JWT.Secret,
		JwtTTL:     cfg.JWT.AccessTokenTTL,
	}

	app := &application{
		DB:         pool,
		Gemini:     geminiClient,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Engine:     eng,
		Handler:    handlerApp,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
