// @title                       Vibefolio API
// @version                     1.0
// @description                 Portfolio sharing service: projects, comments, reactions, banners, popups, recruit listings and the admin area.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/vibefolio/vibefolio-api/internal/api"
	"github.com/vibefolio/vibefolio-api/internal/api/handler"
	"github.com/vibefolio/vibefolio-api/internal/core/service"
	"github.com/vibefolio/vibefolio-api/internal/infrastructure/config"
	mongodb "github.com/vibefolio/vibefolio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/vibefolio/vibefolio-api/internal/infrastructure/db/redis"
	"github.com/vibefolio/vibefolio-api/internal/infrastructure/oidc"
	"github.com/vibefolio/vibefolio-api/internal/infrastructure/queue"
	"github.com/vibefolio/vibefolio-api/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		l := logger.Get()
		l.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is configured from cfg, so fall back to a bare one.
		l := zerolog.New(os.Stderr)
		l.Error().Err(err).Msg("failed to load configuration")
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "vibefolio-api",
	})

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()
	log.Info().Str("db", cfg.Mongo.Database).Msg("mongo connected")

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		URL:          cfg.Redis.URL,
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		OpTimeout:    cfg.Redis.OpTimeout,
	})
	if err != nil {
		return err
	}
	defer func() { _ = rdb.Close() }()
	log.Info().Str("addr", rdb.Options().Addr).Int("pool_size", rdb.Options().PoolSize).Msg("redis connected")

	users := mongodb.NewUserRepository(db)
	projects := mongodb.NewProjectRepository(db)
	comments := mongodb.NewCommentRepository(db)
	banners := mongodb.NewBannerRepository(db)
	popups := mongodb.NewPopupRepository(db)
	recruit := mongodb.NewRecruitRepository(db)
	reactions := mongodb.NewReactionRepository(db)
	views := mongodb.NewViewRepository(db)

	if err := mongodb.EnsureIndexes(ctx, users, projects, comments, banners, popups, recruit, reactions); err != nil {
		return err
	}

	activity := redisdb.NewActivityStore(rdb, cfg.Auth.IdleTimeout)

	// --- Services ---
	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(users, tokens, activity, logger.Component("auth"))
	sessions := service.NewSessionFactory(
		tokens,
		activity,
		service.NewProfileService(users),
		cfg.Auth.ResolveTimeout,
		logger.Component("session"),
	)
	viewService := service.NewViewService(
		projects,
		views,
		redisdb.NewViewDeduper(rdb, cfg.Views.DedupWindow),
		logger.Component("views"),
	)

	dispatcher := queue.NewDispatcher(cfg.Views.Workers, viewService, logger.Component("dispatcher"))

	var idp handler.IdentityProvider
	if cfg.OIDC.Enabled() {
		p, err := oidc.NewProvider(ctx, oidc.Config{
			ClientID:     cfg.OIDC.ClientID,
			ClientSecret: cfg.OIDC.ClientSecret,
			RedirectURL:  cfg.OIDC.RedirectURL,
			DiscoveryURL: cfg.OIDC.DiscoveryURL,
			Scope:        cfg.OIDC.Scope,
		})
		if err != nil {
			return err
		}
		idp = p
		log.Info().Str("discovery", cfg.OIDC.DiscoveryURL).Msg("oidc login enabled")
	}

	e := api.NewRouter(api.Deps{
		Auth:      authService,
		Projects:  service.NewProjectService(projects, users, logger.Component("projects")),
		Comments:  service.NewCommentService(comments, projects, users, logger.Component("comments")),
		Reactions: service.NewReactionService(reactions, projects, logger.Component("reactions")),
		Banners:   service.NewBannerService(banners, logger.Component("banners")),
		Popups:    service.NewPopupService(popups, logger.Component("popups")),
		Recruit:   service.NewRecruitService(recruit, logger.Component("recruit")),
		Admin:     service.NewAdminService(users, projects, comments, logger.Component("admin")),
		Sessions:  sessions,
		Limiter:   redisdb.NewRateLimiter(rdb),
		Views:     dispatcher,
		IDP:       idp,
		Checks: map[string]handler.Check{
			"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
			"redis":   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
		DenyPath:     cfg.Auth.DenyPath,
		SecureCookie: cfg.Auth.SecureCookie || cfg.IsProduction(),
		Registerer:   prometheus.DefaultRegisterer,
		Log:          logger.Component("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	dispatcher.Start(workerCtx)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down, waiting for in-flight requests")

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(sctx)

		stopWorkers()
		dispatcher.Wait()
		log.Info().Msg("shutdown complete")
		return err
	})

	return g.Wait()
}
