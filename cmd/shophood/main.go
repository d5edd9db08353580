package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"shophood/internal/config"
	"shophood/internal/http/handlers"
	applog "shophood/internal/log"
	"shophood/internal/services"
	"shophood/internal/snapshot"
	"shophood/internal/store"
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

	snaps, err := snapshot.Open(cfg.SnapshotDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer snaps.Close()

	st := store.New(snaps.Bootstrap(), snaps)
	defer st.Close()

	authSvc := services.NewAuthService(st)
	deps := handlers.NewDeps(st, authSvc)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))

	// ---------- Routes ----------
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/signup", deps.AuthHandler.Signup)
	auth.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	}), deps.AuthHandler.Login)
	auth.Post("/logout", deps.AuthHandler.Logout)

	requireUser := handlers.RequireUser(authSvc)
	api.Get("/me", requireUser, deps.AuthHandler.Me)
	api.Post("/me/upgrade", requireUser, deps.AuthHandler.Upgrade)

	api.Get("/search",
		limiter.New(limiter.Config{Max: 20, Expiration: time.Minute}),
		deps.SearchHandler.Search)
	api.Get("/businesses/:id", deps.SearchHandler.Business)
	api.Get("/banners", deps.SearchHandler.Banners)

	requireBiz := handlers.RequireBusiness()
	api.Get("/profile", requireUser, requireBiz, deps.BusinessHandler.MyProfile)
	api.Post("/profile", requireUser, requireBiz, deps.BusinessHandler.CreateProfile)
	api.Put("/profile", requireUser, requireBiz, deps.BusinessHandler.UpdateProfile)
	api.Get("/products", requireUser, requireBiz, deps.BusinessHandler.MyProducts)
	api.Post("/products", requireUser, requireBiz, deps.BusinessHandler.CreateProduct)
	api.Put("/products/:id", requireUser, requireBiz, deps.BusinessHandler.UpdateProduct)
	api.Delete("/products/:id", requireUser, requireBiz, deps.BusinessHandler.DeleteProduct)

	requirePremium := handlers.RequirePremium()
	api.Get("/ads", requireUser, requireBiz, requirePremium, deps.AdsHandler.MyAds)
	api.Post("/ads", requireUser, requireBiz, requirePremium, deps.AdsHandler.CreateAd)
	api.Put("/ads/:id", requireUser, requireBiz, requirePremium, deps.AdsHandler.UpdateAd)
	api.Get("/analytics", requireUser, requireBiz, requirePremium, deps.AdsHandler.Analytics)

	api.Get("/messages", requireUser, deps.MessageHandler.Conversations)
	api.Post("/messages", requireUser, deps.MessageHandler.Send)
	api.Post("/messages/:id/read", requireUser, deps.MessageHandler.MarkRead)

	api.Post("/geo/request", requireUser, deps.GeoHandler.Request)
	api.Get("/geo", requireUser, deps.GeoHandler.Current)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return jsonErrNotFound(c)
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}

func jsonErrNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
}
