package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"feedbackhub/internal/auth"
	"feedbackhub/internal/config"
	"feedbackhub/internal/http/handlers"
	applog "feedbackhub/internal/log"
	"feedbackhub/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTL)*time.Minute)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if e, ok := err.(*fiber.Error); ok && e.Code < fiber.StatusInternalServerError {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			// Keep internals out of responses
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong. Please try again."})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, tokens)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Feedback backend is running")
	})
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	authAPI := app.Group("/api/auth")
	authAPI.Get("/signup", deps.AuthHandler.SignupInfo)
	authAPI.Post("/signup", deps.AuthHandler.Signup)
	authAPI.Get("/login", deps.AuthHandler.LoginInfo)
	authAPI.Post("/login", deps.AuthHandler.Login)

	requireAuth := handlers.RequireAuth(tokens)
	app.Post("/submit", requireAuth, deps.FeedbackHandler.Submit)
	app.Get("/feedbacks", requireAuth, deps.FeedbackHandler.List)
	app.Get("/feedbacks/sent", requireAuth, deps.FeedbackHandler.Sent)
	app.Patch("/acknowledge/:id", requireAuth, deps.FeedbackHandler.Acknowledge)

	log.Fatal(app.Listen(":" + cfg.Port))
}
