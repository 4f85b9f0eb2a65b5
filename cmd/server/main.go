package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "careercortex/internal/adapter/http"
	repo "careercortex/internal/adapter/repository"
	"careercortex/internal/config"
	"careercortex/internal/infrastructure/migration"
	"careercortex/internal/usecase"
	infra "careercortex/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// infra setup; storage and cache are optional
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err = infra.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Warn("database not available, documents will not be persisted", "err", err)
			pool = nil
		}
	}
	if pool != nil {
		defer pool.Close()
		if cfg.RunMigrations {
			if err := migration.RunMigrations(ctx, pool); err != nil {
				log.Fatalf("migrations: %v", err)
			}
		}
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = infra.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			slog.Warn("redis not available, pdf cache disabled", "err", err)
			rdb = nil
		}
	}
	if rdb != nil {
		defer rdb.Close()
	}

	svc := usecase.NewService(usecase.Deps{
		Renderer:     infra.NewChromedpRenderer(cfg.ChromePath, cfg.PDFTimeout),
		Cache:        infra.NewPDFCache(rdb, cfg.PDFCacheTTL),
		Resumes:      repo.NewResumeRepo(pool),
		CoverLetters: repo.NewCoverLetterRepo(pool),
		Profiles:     repo.NewProfileRepo(pool),
		Assessments:  repo.NewAssessmentRepo(pool),
		UserData:     repo.NewUserDataRepo(pool),
	}, usecase.Options{
		RenderAttempts: cfg.RenderAttempts,
		RetryDelay:     300 * time.Millisecond,
	})

	app := fiber.New(fiber.Config{
		AppName:   "careercortex",
		BodyLimit: 10 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	httpadapter.NewHandler(svc).Register(app)

	go func() {
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()
	slog.Info("server started", "addr", cfg.Addr(), "db", pool != nil, "cache", rdb != nil)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("shutdown failed", "err", err)
	}
}
