// Package server assembles the storefront HTTP API from the domain packages.
package server

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/wichananm65/petshop-storefront/internal/category"
	"github.com/wichananm65/petshop-storefront/internal/config"
	"github.com/wichananm65/petshop-storefront/internal/metrics"
	"github.com/wichananm65/petshop-storefront/internal/notify"
	"github.com/wichananm65/petshop-storefront/internal/order"
	"github.com/wichananm65/petshop-storefront/internal/pet"
	"github.com/wichananm65/petshop-storefront/internal/realtime"
	"github.com/wichananm65/petshop-storefront/internal/stats"
	"github.com/wichananm65/petshop-storefront/internal/user"
)

type Server struct {
	App *fiber.App

	hub        *realtime.Hub
	stopEvents func()
}

// New wires repositories, services and handlers around one database handle
// and one broker. Every event published on broker reaches websocket viewers.
func New(cfg config.Config, db *sql.DB, broker *notify.Broker) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "petshop-storefront",
		DisableStartupMessage: cfg.IsProduction(),
	})

	m := metrics.New()
	hub := realtime.NewHub(broker)
	m.TrackViewers(hub.ClientCount)

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(requestLogger)
	app.Use(m.Middleware())
	app.Use(newCORS(cfg.CORSOrigins))

	userHandler := user.NewHandler(user.NewService(user.NewSQLRepository(db)), cfg.JWTSecret, cfg.TokenTTL, cfg.CookieSecure)
	categoryHandler := category.NewHandler(category.NewService(category.NewSQLRepository(db)))
	petHandler := pet.NewHandler(pet.NewService(pet.NewSQLRepository(db, cfg.DBDriver), broker))
	statsService := stats.NewService(stats.NewSQLRepository(db))
	statsHandler := stats.NewHandler(statsService)
	orderHandler := order.NewHandler(order.NewService(order.NewSQLRepository(db), statsService, broker))

	api := app.Group("/api")
	userHandler.RegisterPublicRoutes(api)
	categoryHandler.RegisterPublicRoutes(api)
	petHandler.RegisterPublicRoutes(api)
	orderHandler.RegisterPublicRoutes(api)

	admin := app.Group("/api/admin", user.Middleware(cfg.JWTSecret), user.RequireAdmin)
	petHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)
	statsHandler.RegisterAdminRoutes(admin)

	hub.RegisterRoutes(app)
	app.Get("/metrics", m.Handler())
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			slog.Error("health check", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return &Server{App: app, hub: hub, stopEvents: m.ObserveEvents(broker)}
}

func (s *Server) Listen(addr string) error {
	return s.App.Listen(addr)
}

// Shutdown disconnects websocket viewers and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopEvents()
	s.hub.Close()
	return s.App.ShutdownWithContext(ctx)
}

func newCORS(origins string) fiber.Handler {
	cfg := cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}
	// browsers refuse credentialed requests against a wildcard origin
	if origins != "*" {
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	slog.Debug("request",
		"method", c.Method(),
		"url", c.OriginalURL(),
		"status", c.Response().StatusCode(),
		"duration", time.Since(start),
		"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
	)
	return err
}
