package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"view-analytics-service/internal/analytics/adapters/cache"
	analyticsHttp "view-analytics-service/internal/analytics/adapters/http/fiber"
	analyticsRepoPg "view-analytics-service/internal/analytics/adapters/postgres"
	"view-analytics-service/internal/analytics/core/timerange"
	analyticsUsecase "view-analytics-service/internal/analytics/core/usecase"
	"view-analytics-service/internal/config"
	"view-analytics-service/internal/logger"
	"view-analytics-service/internal/storage/postgres"
	"view-analytics-service/internal/telemetry"
	viewsHttp "view-analytics-service/internal/views/adapters/http/fiber"
	viewsRepoPg "view-analytics-service/internal/views/adapters/postgres"
	viewsUsecase "view-analytics-service/internal/views/core/usecase"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Config
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.ServiceEnvironment, serviceName)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// DB connection
	db, err := postgres.Open(ctx, cfg.PostgresDSN, postgres.PoolConfig{
		MaxOpenConns:    cfg.PostgresMaxOpenConns,
		MaxIdleConns:    cfg.PostgresMaxIdleConns,
		ConnMaxLifetime: cfg.PostgresConnMaxLifetime,
	})
	if err != nil {
		log.Error("Failed to connect to postgres", zap.Error(err))
		return err
	}
	defer db.Close()

	if migrateOnStart {
		version, err := postgres.Migrate(db)
		if err != nil {
			log.Error("Failed to migrate", zap.Error(err))
			return err
		}
		log.Info("Schema is up to date", zap.Uint("version", version))
	}

	metrics := telemetry.New()

	// Analytics
	deps := analyticsUsecase.Deps{
		Reader:   analyticsRepoPg.NewEventRepository(analyticsRepoPg.NewSQLDB(db)),
		Clock:    analyticsUsecase.ClockFunc(time.Now),
		Resolver: timerange.NewResolver(loc),
		Log:      log.Named("analytics"),
	}
	if cfg.AnalyticsCacheEnabled {
		resultCache, err := cache.New(cache.Config{
			TTL:     cfg.AnalyticsCacheTTL,
			MaxRows: cfg.AnalyticsCacheMaxRows,
		}, metrics.Registerer())
		if err != nil {
			return err
		}
		defer resultCache.Close()
		deps.Cache = resultCache
	}
	analyticsHandler := analyticsHttp.NewAnalyticsHandler(
		analyticsUsecase.NewGetBlogViewsUseCase(deps),
		analyticsUsecase.NewGetTopUseCase(deps),
		analyticsUsecase.NewGetPerformanceUseCase(deps),
		log.Named("http"),
	)

	// Views
	recordViewUC := viewsUsecase.NewRecordViewUseCase(
		viewsRepoPg.NewViewRepository(db),
		time.Now,
		log.Named("views"),
	)
	viewHandler := viewsHttp.NewViewHandler(recordViewUC, log.Named("http"))

	srv := &server{
		log:       log,
		metrics:   metrics,
		db:        db,
		analytics: analyticsHandler,
		views:     viewHandler,
	}
	app := srv.app()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server started",
			zap.String("port", cfg.ServiceAPIPort),
			zap.String("time_zone", loc.String()),
			zap.Bool("cache", cfg.AnalyticsCacheEnabled))
		return app.Listen(":" + cfg.ServiceAPIPort)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down")
		return app.ShutdownWithTimeout(cfg.ServiceShutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server stopped", zap.Error(err))
		return err
	}

	log.Info("Server exiting")
	return nil
}
