package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"shophood/internal/http/handlers"
	"shophood/internal/services"
	"shophood/internal/store"
)

// newTestApp wires the real handlers over a seeded in-memory store with no
// snapshot persistence.
func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	st := store.New(store.Seed(), nil)
	authSvc := services.NewAuthService(st)
	deps := handlers.NewDeps(st, authSvc)

	app := fiber.New()
	app.Use(requestid.New())

	api := app.Group("/api/v1")
	api.Post("/auth/signup", deps.AuthHandler.Signup)
	api.Post("/auth/login", deps.AuthHandler.Login)
	api.Post("/auth/logout", deps.AuthHandler.Logout)

	requireUser := handlers.RequireUser(authSvc)
	api.Get("/me", requireUser, deps.AuthHandler.Me)
	api.Post("/me/upgrade", requireUser, deps.AuthHandler.Upgrade)

	api.Get("/search", deps.SearchHandler.Search)
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

	return app, st
}

// loginThrottledApp builds a login route guarded by a tight limiter.
func loginThrottledApp(t *testing.T) *fiber.App {
	t.Helper()
	st := store.New(store.Seed(), nil)
	authSvc := services.NewAuthService(st)
	deps := handlers.NewDeps(st, authSvc)

	app := fiber.New()
	app.Post("/api/v1/auth/login", limiter.New(limiter.Config{Max: 2, Expiration: time.Minute}), deps.AuthHandler.Login)
	return app
}

func jsonReq(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	resp, err := app.Test(jsonReq("POST", "/api/v1/auth/login",
		`{"email":"`+email+`","password":"`+password+`"}`))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}
	sid := extractCookie(resp, "sid")
	if sid == "" {
		t.Fatal("no sid cookie on login")
	}
	return sid
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("bad JSON %q: %v", b, err)
	}
	return m
}

func withSID(req *http.Request, sid string) *http.Request {
	req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	return req
}
