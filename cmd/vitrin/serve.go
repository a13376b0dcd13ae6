package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"vitrin/api/internal/app"
	"vitrin/api/internal/cache"
	"vitrin/api/internal/config"
	"vitrin/api/internal/filestore"
	"vitrin/api/internal/gitrepo"
	"vitrin/api/internal/media"
	"vitrin/api/internal/persist"
	"vitrin/api/internal/rbac"
	"vitrin/api/internal/search"
	"vitrin/api/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Load()
		logger := newLogger(cfg)
		slog.SetDefault(logger)
		return serve(cmd.Context(), cfg, logger)
	},
}

func serve(parent context.Context, cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checks := map[string]app.Pinger{}
	var stores []persist.Store
	var recent app.RecentFunc

	if strings.TrimSpace(cfg.RedisURL) != "" {
		rs, err := cache.NewRedisStore(cfg.RedisURL, cfg.DraftTTL)
		if err != nil {
			return fmt.Errorf("redis connection failed: %w", err)
		}
		defer rs.Close()
		stores = append(stores, rs)
		checks["redis"] = rs
		recent = rs.Recent
		logger.Info("draft cache enabled", "backend", "redis")
	}

	var pgfts *search.PgFTS
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		db, err := store.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		defer db.Close()
		applied, err := store.ApplyMigrationsDir(ctx, db, cfg.MigrationsDir)
		if err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
		if len(applied) > 0 {
			logger.Info("migrations applied", "versions", applied)
		}
		pg := store.NewPostgresStore(db)
		stores = append(stores, pg)
		checks["postgres"] = pg
		if recent == nil {
			recent = func(ctx context.Context, limit int) ([]string, error) {
				docs, err := pg.ListDocuments(ctx, limit)
				if err != nil {
					return nil, err
				}
				ids := make([]string, 0, len(docs))
				for _, d := range docs {
					ids = append(ids, d.DocumentID)
				}
				return ids, nil
			}
		}
		pgfts = search.NewPgFTS(db)
	}

	files, err := filestore.New(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("document directory: %w", err)
	}
	stores = append(stores, files)
	if recent == nil {
		recent = func(_ context.Context, limit int) ([]string, error) {
			ids, err := files.List()
			if err != nil {
				return nil, err
			}
			if limit > 0 && len(ids) > limit {
				ids = ids[:limit]
			}
			return ids, nil
		}
	}

	var meili *search.Meili
	if strings.TrimSpace(cfg.MeiliURL) != "" {
		meili = search.NewMeili(cfg.MeiliURL, cfg.MeiliMasterKey, logger)
		defer meili.Close()
	}
	sites := search.NewService(meili, pgfts, logger)
	sites.Reindex(ctx)

	var library media.Library = media.DefaultStaticLibrary()
	if strings.TrimSpace(cfg.MinioEndpoint) != "" {
		ml, err := media.NewMinioLibrary(media.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			PublicURL: cfg.MinioPublicURL,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			return fmt.Errorf("media library: %w", err)
		}
		library = ml
		checks["minio"] = ml
	}

	if err := os.MkdirAll(cfg.ReposDir, 0o755); err != nil {
		return fmt.Errorf("failed to create repos dir: %w", err)
	}

	svc, err := app.New(app.Deps{
		Store:            persist.NewChain(stores...),
		Publisher:        gitrepo.New(cfg.ReposDir),
		Search:           sites,
		Injector:         media.NewInjector(library, logger),
		Checks:           checks,
		Recent:           recent,
		AutosaveInterval: cfg.AutosaveInterval,
		MaxSessions:      cfg.MaxSessions,
		Logger:           logger,
	})
	if err != nil {
		return err
	}
	if cfg.SessionIdle > 0 {
		go svc.RunJanitor(ctx, time.Minute, cfg.SessionIdle)
	}

	httpServer := app.NewHTTPServer(svc, app.HTTPOptions{
		CORSOrigin:  cfg.CORSOrigin,
		RateLimit:   cfg.RateLimit,
		DefaultRole: rbac.Normalize(cfg.DefaultRole),
		Logger:      logger,
	})
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("vitrin api listening", "addr", cfg.Addr, "stores", len(stores), "search", sites.Backend())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	// Pending autosaves are flushed after the listener stops taking edits.
	if err := svc.Close(shutdownCtx); err != nil {
		logger.Error("final flush failed", "error", err)
		return err
	}
	return nil
}
