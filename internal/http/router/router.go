package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"faq-bot/internal/http/handler"
	"faq-bot/internal/http/middleware"
)

// New builds the fiber app with every route registered.
func New(faqs handler.Asker, log *zap.Logger) *fiber.App {
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		Prefork:               false,
		CaseSensitive:         true,
		StrictRouting:         true,
		DisableStartupMessage: true,
	})

	// RequestLog wraps recover so panicking requests still get an access line.
	app.Use(middleware.RequestLog(log))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST",
	}))

	h := handler.NewFAQHandler(faqs, log)

	app.Get("/", h.Index)
	app.Post("/", h.Submit)
	app.Get("/healthz", h.Health)

	api := app.Group("/api")
	api.Get("/faqs", h.GetAllFAQs)
	api.Post("/ask", h.Ask)

	app.Use("/ws", handler.UpgradeWS)
	app.Get("/ws", websocket.New(h.AskWS))

	return app
}
