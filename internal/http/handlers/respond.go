package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shophood/internal/domain"
)

func jsonErr(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// userView strips the credential hash before a user record leaves the API.
type userView struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Role   domain.Role `json:"role"`
	Email  string      `json:"email"`
	Plan   domain.Plan `json:"subscriptionPlan"`
	Avatar string      `json:"avatar,omitempty"`
}

func viewOf(u *domain.User) userView {
	return userView{ID: u.ID, Name: u.Name, Role: u.Role, Email: u.Email, Plan: u.Plan, Avatar: u.Avatar}
}
