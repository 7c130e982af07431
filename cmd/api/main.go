package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"

	"github.com/angelmondragon/mentormatch-backend/api/controllers"
	"github.com/angelmondragon/mentormatch-backend/api/routes"
	"github.com/angelmondragon/mentormatch-backend/internal/auth"
	"github.com/angelmondragon/mentormatch-backend/internal/matching"
	"github.com/angelmondragon/mentormatch-backend/internal/media"
	"github.com/angelmondragon/mentormatch-backend/internal/mentors"
	"github.com/angelmondragon/mentormatch-backend/internal/profiles"
	"github.com/angelmondragon/mentormatch-backend/internal/users"
	"github.com/angelmondragon/mentormatch-backend/pkg/auth/session"
	"github.com/angelmondragon/mentormatch-backend/pkg/config"
	"github.com/angelmondragon/mentormatch-backend/pkg/db"
	"github.com/angelmondragon/mentormatch-backend/pkg/logger"
	"github.com/angelmondragon/mentormatch-backend/pkg/metrics"
	"github.com/angelmondragon/mentormatch-backend/pkg/migrate"
	"github.com/angelmondragon/mentormatch-backend/pkg/redis"
	"github.com/angelmondragon/mentormatch-backend/pkg/sentry"
)

const shutdownTimeout = 15 * time.Second

// @title           Mentor Match API
// @version         1.0
// @description     Mentor and mentee accounts, profiles, mentor search and the match request lifecycle.
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reporter, err := sentry.New(cfg.Sentry, cfg.App.Env)
	if err != nil {
		logg.Error(ctx, "failed to init sentry", err)
		os.Exit(1)
	}

	dbClient, err := db.Open(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to prepare schema", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap redis", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(ctx, "failed to create session manager", err)
		os.Exit(1)
	}

	checks := []controllers.ReadinessCheck{
		{Name: "db", Ping: dbClient.Ping},
		{Name: "redis", Ping: redisClient.Ping},
	}

	store, storeCheck, err := openImageStore(ctx, cfg)
	if err != nil {
		logg.Error(ctx, "failed to open image store", err)
		os.Exit(1)
	}
	if storeCheck != nil {
		checks = append(checks, *storeCheck)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	usersRepo := users.NewRepository(dbClient.DB())
	resolver := media.NewResolver(cfg.Media.MentorDefault, cfg.Media.MenteeDefault)

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       usersRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
		Logger:         logg,
	})
	exitOnError(ctx, logg, "auth service", err)

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
	})
	exitOnError(ctx, logg, "register service", err)

	profileService, err := profiles.NewService(profiles.ServiceParams{
		Users:    usersRepo,
		Repo:     profiles.NewRepository(dbClient.DB()),
		Tx:       dbClient,
		Store:    store,
		Rules:    media.RulesFromConfig(cfg.Media),
		Resolver: resolver,
	})
	exitOnError(ctx, logg, "profile service", err)

	mentorService, err := mentors.NewService(mentors.NewRepository(dbClient.DB(), dbClient.Dialect()), resolver)
	exitOnError(ctx, logg, "mentor service", err)

	matchService, err := matching.NewService(matching.ServiceParams{
		Repo:    matching.NewRepository(dbClient.DB()),
		Users:   usersRepo,
		Tx:      dbClient,
		Logger:  logg,
		Metrics: metrics.NewLedgerMetrics(registry),
	})
	exitOnError(ctx, logg, "match request service", err)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:           cfg,
			Logger:           logg,
			Sessions:         sessionManager,
			RateLimitStore:   redisClient,
			IdempotencyStore: redisClient,
			AuthService:      authService,
			RegisterService:  registerService,
			ProfileService:   profileService,
			MentorService:    mentorService,
			MatchService:     matchService,
			ReadinessChecks:  checks,
			HTTPMetrics:      metrics.NewHTTPMetrics(registry),
			MetricsHandler:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			Sentry:           reporter,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	runCtx := logg.WithFields(ctx, map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"dialect": dbClient.Dialect(),
		"media":   cfg.Media.Backend,
	})
	logg.Info(runCtx, "starting api server")

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	exitCode := 0
	select {
	case err := <-serveErr:
		if err != nil {
			logg.Error(runCtx, "api server stopped unexpectedly", err)
			exitCode = 1
		}
	case <-ctx.Done():
		logg.Info(runCtx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	closeErr := multierr.Combine(
		server.Shutdown(shutdownCtx),
		redisClient.Close(),
		dbClient.Close(),
		reporter.Close(),
	)
	if closeErr != nil {
		logg.Error(runCtx, "error during shutdown", closeErr)
		exitCode = 1
	}
	logg.Info(runCtx, "api server stopped")
	os.Exit(exitCode)
}

// openImageStore returns the configured profile image backend and, for MinIO,
// a readiness probe for the bucket.
func openImageStore(ctx context.Context, cfg *config.Config) (media.Store, *controllers.ReadinessCheck, error) {
	if !cfg.Media.UsesMinIO() {
		store, err := media.NewFSStore(cfg.Media.Root)
		return store, nil, err
	}
	store, err := media.NewMinioStore(cfg.MinIO)
	if err != nil {
		return nil, nil, err
	}
	if err := store.EnsureBucket(ctx); err != nil {
		return nil, nil, err
	}
	return store, &controllers.ReadinessCheck{Name: "minio", Ping: store.Ping}, nil
}

func exitOnError(ctx context.Context, logg *logger.Logger, component string, err error) {
	if err == nil {
		return
	}
	logg.Error(logg.WithField(ctx, "component", component), "failed to build component", err)
	os.Exit(1)
}
