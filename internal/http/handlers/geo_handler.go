package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shophood/internal/services"
)

type GeoHandler struct {
	Geo *services.GeoService
}

// Request kicks off a simulated geolocation fix; clients poll Current.
func (h *GeoHandler) Request(c *fiber.Ctx) error {
	h.Geo.Request()
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "locating"})
}

func (h *GeoHandler) Current(c *fiber.Ctx) error {
	pos, ok := h.Geo.Current()
	if !ok {
		return c.JSON(fiber.Map{"resolved": false})
	}
	return c.JSON(fiber.Map{"resolved": true, "lat": pos.Lat, "lng": pos.Lng})
}
