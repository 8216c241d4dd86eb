package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	analyticsHttp "view-analytics-service/internal/analytics/adapters/http/fiber"
	"view-analytics-service/internal/telemetry"
	viewsHttp "view-analytics-service/internal/views/adapters/http/fiber"

	_ "view-analytics-service/docs"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

type server struct {
	log       *zap.Logger
	metrics   *telemetry.Metrics
	db        pinger
	analytics *analyticsHttp.AnalyticsHandler
	views     *viewsHttp.ViewHandler
}

func (s *server) app() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		DisableStartupMessage: true,
	})

	app.Use(s.metrics.Middleware())
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	s.analytics.Register(app)
	s.views.Register(app)

	app.Get("/healthz", s.healthz)
	app.Get("/metrics", s.metrics.Handler())

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	return app
}

func (s *server) healthz(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.log.Warn("Health check failed", zap.Error(err))
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "ok"})
}
