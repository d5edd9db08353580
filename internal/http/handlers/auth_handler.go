package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shophood/internal/domain"
	applog "shophood/internal/log"
	"shophood/internal/services"
	"shophood/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

type signupReq struct {
	Name     string `json:"name" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=consumer business"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupReq
	if err := c.BodyParser(&req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.StructTags(req); err != nil {
		applog.Security(c, "auth.signup.fail", map[string]any{"reason": "validation"})
		return jsonErr(c, fiber.StatusBadRequest, err.Error())
	}

	sid := ensureSID(c)
	u, err := h.Auth.Signup(sid, req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err == services.ErrEmailTaken {
		applog.Security(c, "auth.signup.fail", map[string]any{"email": req.Email, "reason": "duplicate"})
		return jsonErr(c, fiber.StatusConflict, err.Error())
	}
	if err != nil {
		applog.Error(c, "auth.signup.error", err, nil)
		return jsonErr(c, fiber.StatusInternalServerError, "could not create account")
	}
	applog.Audit(c, "auth.signup.success", map[string]any{"email": u.Email, "role": string(u.Role)})
	return c.Status(fiber.StatusCreated).JSON(viewOf(u))
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.StructTags(req); err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"reason": "bad_format"})
		return jsonErr(c, fiber.StatusUnauthorized, "invalid email or password")
	}

	sid := ensureSID(c)
	u, err := h.Auth.Login(sid, req.Email, req.Password)
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email})
		return jsonErr(c, fiber.StatusUnauthorized, "invalid email or password")
	}
	applog.Audit(c, "auth.login.success", map[string]any{"email": u.Email})
	return c.JSON(viewOf(u))
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", nil)
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	return c.JSON(viewOf(u))
}

func (h *AuthHandler) Upgrade(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	up, err := h.Auth.Upgrade(u.ID)
	if err != nil {
		applog.Error(c, "auth.upgrade.error", err, nil)
		return jsonErr(c, fiber.StatusInternalServerError, "could not upgrade plan")
	}
	applog.Audit(c, "auth.upgrade", map[string]any{"plan": string(up.Plan)})
	return c.JSON(viewOf(up))
}
