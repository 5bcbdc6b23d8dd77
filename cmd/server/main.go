// Package main is the entry point for the labour case record server.
// It serves the officer dashboard API, the public status portal, and
// joint meeting notices with dispatch to an external automation webhook.
//
// Case data lives in a single snapshot slot in the configured store
// (file, memory, redis or postgres) and is rewritten on every mutation.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/config"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/handlers"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/models"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/services"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/store"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// devOfficerKey is the gate key used when none is configured outside production
const devOfficerKey = "admin"

func main() {
	// Initialize structured logger
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		sugar.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Environment == "development" {
		logger, _ = zap.NewDevelopment()
		sugar = logger.Sugar()
	}

	sugar.Infow("Starting labour case record server",
		"port", cfg.Port,
		"env", cfg.Environment,
		"store", cfg.StoreDriver,
		"timezone", cfg.Timezone,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		sugar.Fatalf("Server error: %v", err)
	}
	sugar.Info("Server stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	sugar := logger.Sugar()
	loc := cfg.Location()
	models.DecodeLocation = loc

	// Initialize slot store
	st, err := store.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	defer st.Close()

	// Load the case snapshot
	repo := services.NewCaseRepository(st, sugar)
	state := repo.Load(ctx)
	sugar.Infow("Case snapshot loaded", "state", state.String(), "cases", repo.Snapshot().Len())
	if state == services.LoadedMissing && cfg.SeedDemo {
		if err := repo.Seed(ctx, services.DemoCases(time.Now(), loc)); err != nil {
			return fmt.Errorf("seed demo cases: %w", err)
		}
		sugar.Info("Seeded demo case")
	}

	vocab := services.NewVocabularies(st, sugar)
	vocab.Load(ctx)

	settings := services.NewSettingsService(st, sugar)
	if err := settings.SeedDispatchEndpoint(ctx, cfg.DispatchWebhookURL); err != nil {
		sugar.Warnw("Ignoring DISPATCH_WEBHOOK_URL", "error", err)
	}

	// Initialize services
	toggleMode, err := services.ParseToggleMode(cfg.StatusToggleMode)
	if err != nil {
		return err
	}
	policy, err := services.ParseHearingPolicy(cfg.NoticeDefaultHearing)
	if err != nil {
		return err
	}

	scheduler := services.NewScheduler(time.Now)
	caseSvc := services.NewCaseService(repo, services.NewStatusLifecycle(toggleMode), scheduler, vocab, loc, sugar)
	composer := services.NewNoticeComposer(models.Letterhead{
		Government: cfg.OfficeGovernment,
		Department: cfg.OfficeDepartment,
		Office:     cfg.OfficeName,
		District:   cfg.OfficeDistrict,
		Venue:      cfg.OfficeVenue,
	}, loc, policy, scheduler)
	dispatchClient := services.NewDispatchClient(nil, sugar)
	tracker := services.NewDispatchTracker(dispatchClient, settings, cfg.DispatchResetAfter, sugar)

	officerKey := cfg.OfficerKey
	if officerKey == "" && cfg.OfficerKeyHash == "" {
		officerKey = devOfficerKey
		sugar.Warnw("No officer key configured, using the development key")
	}
	auth, err := services.NewAuthService(officerKey, cfg.OfficerKeyHash, cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("init officer gate: %w", err)
	}

	// Build router
	router := handlers.NewRouter(ctx, handlers.RouterConfig{
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimitRPM:   cfg.RateLimitRPM,
		Logger:         logger,
	}, handlers.Handlers{
		Cases:    handlers.NewCaseHandler(caseSvc, sugar),
		Public:   handlers.NewPublicHandler(caseSvc, sugar),
		Notices:  handlers.NewNoticeHandler(caseSvc, composer, tracker, sugar),
		Settings: handlers.NewSettingsHandler(settings, vocab, sugar),
		Auth:     handlers.NewAuthHandler(auth, sugar),
		Health:   handlers.NewHealthHandler(st, sugar),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sugar.Infof("Server listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sugar.Info("Shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
