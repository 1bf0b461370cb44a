package app

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	slogfiber "github.com/samber/slog-fiber"
)

// Middleware bundles the handlers deliveries attach to their routes.
type Middleware struct {
	RequireAuth   fiber.Handler
	RequireAuthor fiber.Handler
	RequireAdmin  fiber.Handler
	Statistics    fiber.Handler
}

type Delivery interface {
	AddHandlers(router fiber.Router, mw *Middleware)
}

type FiberApp struct {
	app    *fiber.App
	config WebConfig
}

func NewFiberApp(config WebConfig, mw *Middleware, logger *slog.Logger, deliveries ...Delivery) *FiberApp {
	fiberApp := fiber.New(fiber.Config{
		AppName:      "blog-platform",
		ErrorHandler: NewErrorHandler(logger),
	})

	fiberApp.Use(slogfiber.New(logger))
	if mw.Statistics != nil {
		fiberApp.Use(mw.Statistics)
	}

	api := fiberApp.Group("/api")
	for _, delivery := range deliveries {
		delivery.AddHandlers(api, mw)
	}

	return &FiberApp{
		app:    fiberApp,
		config: config,
	}
}

func (a *FiberApp) Start() error {
	return a.app.Listen(a.config.Host + ":" + a.config.Port)
}

func (a *FiberApp) Shutdown(ctx context.Context) error {
	return a.app.ShutdownWithContext(ctx)
}

// App exposes the underlying fiber instance for tests.
func (a *FiberApp) App() *fiber.App {
	return a.app
}
