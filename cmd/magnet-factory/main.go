// cmd/magnet-factory/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"magnet-factory/internal/api"
	awsclients "magnet-factory/internal/common/aws"
	"magnet-factory/internal/common/config"
	"magnet-factory/internal/common/database"
	"magnet-factory/internal/common/genai"
	"magnet-factory/internal/common/imagegen"
	"magnet-factory/internal/common/logger"
	"magnet-factory/internal/common/observability"
	"magnet-factory/internal/common/search"
	"magnet-factory/internal/pipeline"
	"magnet-factory/pkg/catalog"

	pa "magnet-factory/internal/workers/content/product-architect"
	gc "magnet-factory/internal/workers/distribution/growth-copywriter"
	rn "magnet-factory/internal/workers/notification/run-notifier"
	mi "magnet-factory/internal/workers/research/market-intel"
	cd "magnet-factory/internal/workers/visual/creative-director"
)

// retryWithBackoff retries operation with exponential backoff until it
// succeeds, maxRetries is reached or ctx is done.
func retryWithBackoff(ctx context.Context, operation func() error, maxRetries int, initialDelay time.Duration, log logger.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		if err = operation(); err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName), map[string]interface{}{
				"error":       err.Error(),
				"attempt":     i + 1,
				"maxRetries":  maxRetries,
				"nextRetryIn": delay.String(),
			})
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("%s cancelled: %w", operationName, ctx.Err())
			}
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()
	if err := obs.EnableTracing(ctx, cfg.App, cfg.Tracing); err != nil {
		zapLog.Warn("tracing disabled", zap.Error(err))
	}

	formats, err := catalog.LoadOrDefault(cfg.Pipeline.CatalogPath)
	if err != nil {
		zapLog.Fatal("format catalog load failed", zap.Error(err), zap.String("path", cfg.Pipeline.CatalogPath))
	}

	// --- Generation, search and image clients ---
	gen := genai.NewClient(cfg.Providers, log)
	status := gen.Status()
	zapLog.Info("generation providers",
		zap.String("primary", status.Primary),
		zap.String("openai", status.OpenAI),
		zap.String("anthropic", status.Anthropic),
	)

	var cache search.Cache
	if cfg.Search.CacheEnable && cfg.Database.Redis.Address != "" {
		var redis *database.RedisClient
		err = retryWithBackoff(ctx, func() error {
			var err error
			redis, err = database.Connect(ctx, cfg.Database.Redis)
			return err
		}, 5, 2*time.Second, log, "Redis connection")

		if err != nil {
			zapLog.Warn("search cache disabled", zap.Error(err))
		} else {
			defer redis.Close()
			cache = search.NewRedisCache(redis.GetClient(), log)
			zapLog.Info("Redis connected successfully")
		}
	}

	searcher := search.NewService(cfg.Search, gen, cache, log)
	images := imagegen.NewClient(cfg.Providers.OpenAI, cfg.Images)

	// --- Stages ---
	research := mi.NewHandler(mi.LoadConfig(), gen, searcher, log)
	content := pa.NewHandler(pa.LoadConfig(), gen, formats, log)
	visual := cd.NewHandler(cd.LoadConfig(), images, log)
	copywriter := gc.NewHandler(gc.LoadConfig(), gen, log)

	stages := pipeline.Stages{
		Research: research,
		Content:  content,
		Visual:   visual,
		Copy:     copywriter,
	}

	if cfg.Notifications.Email.Enabled || cfg.Notifications.SNS.Enabled {
		clients, err := awsclients.NewClients(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Warn("run notifications disabled", zap.Error(err))
		} else {
			stages.Notifier = rn.NewHandler(rn.LoadConfig(cfg), clients.SES, clients.SNS, log)
			zapLog.Info("run notifications enabled",
				zap.Bool("email", cfg.Notifications.Email.Enabled),
				zap.Bool("sns", cfg.Notifications.SNS.Enabled),
			)
		}
	}

	store, err := pipeline.NewStore(cfg.Pipeline.RunHistory)
	if err != nil {
		zapLog.Fatal("run store init failed", zap.Error(err))
	}
	orch := pipeline.New(pipeline.LoadConfig(cfg.Pipeline), stages, store, obs, log)

	// --- HTTP ---
	server := api.NewServer(cfg, api.Deps{
		Pipeline:  orch,
		Research:  research,
		Copy:      copywriter,
		Visuals:   visual,
		Providers: gen,
		Catalog:   formats,
	}, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	zapLog.Info("magnet factory started",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
		zap.String("dashboard", cfg.App.PublicURL),
	)

	select {
	case <-ctx.Done():
		zapLog.Info("Shutdown signal received, stopping server...")
	case err := <-errCh:
		if err != nil {
			zapLog.Error("http server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("http shutdown failed", zap.Error(err))
	}
	if err := orch.Wait(shutdownCtx); err != nil {
		zapLog.Warn("background runs still in flight", zap.Error(err))
	}

	zapLog.Info("magnet factory stopped")
}
