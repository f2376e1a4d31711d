package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/zhouzirui/wizcare/backend/internal/config"
	"github.com/zhouzirui/wizcare/backend/internal/handler"
	"github.com/zhouzirui/wizcare/backend/internal/logging"
	"github.com/zhouzirui/wizcare/backend/internal/model/resource"
	"github.com/zhouzirui/wizcare/backend/internal/service/ai"
	"github.com/zhouzirui/wizcare/backend/internal/service/chat"
	"github.com/zhouzirui/wizcare/backend/internal/service/reply"
	"github.com/zhouzirui/wizcare/backend/internal/service/wellness"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Debug("no .env file loaded, using system environment", zap.Error(envErr))
	}

	generator, err := ai.NewGenerator(ctx, cfg.AI)
	switch {
	case errors.Is(err, ai.ErrCredentialMissing):
		logger.Warn("remote generation credential missing, running in fallback-only mode",
			zap.String("provider", string(cfg.AI.Provider)))
		generator = nil
	case err != nil:
		logger.Warn("failed to initialize remote generator, running in fallback-only mode",
			zap.String("provider", string(cfg.AI.Provider)), zap.Error(err))
		generator = nil
	default:
		logger.Info("remote generation enabled", zap.String("provider", string(cfg.AI.Provider)))
	}

	replies := reply.NewService(generator, reply.Config{
		Timeout:   cfg.AI.Timeout,
		RateLimit: cfg.AI.RateLimit,
		RateBurst: cfg.AI.RateBurst,
	}, logger)
	chatService := chat.NewService(replies, logger)
	wellnessService := wellness.NewService(chatService)
	resources := resource.NewMemoryStore(resource.SeedHelplines(), resource.SeedWebsites())

	router := handler.NewRouter(handler.Dependencies{
		Chat:      chatService,
		Replies:   replies,
		Wellness:  wellnessService,
		Resources: resources,
		Provider:  string(cfg.AI.Provider),
		Logger:    logger,
	})

	startServer(ctx, logger, cfg.Server, router)
}

func startServer(ctx context.Context, logger *zap.Logger, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("WizCare backend listening", zap.String("addr", addr))
	if err := runServer(ctx, srv); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
