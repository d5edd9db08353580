package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shophood/internal/domain"
	applog "shophood/internal/log"
	"shophood/internal/services"
	"shophood/internal/validate"
)

type BusinessHandler struct {
	Biz *services.BusinessService
}

type profileReq struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Description  string   `json:"description" validate:"max=500"`
	Type         string   `json:"type" validate:"required,max=50"`
	Location     string   `json:"location" validate:"required,max=100"`
	Lat          float64  `json:"lat" validate:"min=-90,max=90"`
	Lng          float64  `json:"lng" validate:"min=-180,max=180"`
	ContactEmail string   `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string   `json:"contactPhone" validate:"max=30"`
	Images       []string `json:"images"`
}

func (r profileReq) input() services.ProfileInput {
	return services.ProfileInput{
		Name:         r.Name,
		Description:  r.Description,
		Type:         r.Type,
		Location:     r.Location,
		Coordinates:  domain.Coordinates{Lat: r.Lat, Lng: r.Lng},
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		Images:       r.Images,
	}
}

func (h *BusinessHandler) MyProfile(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	p, ok := h.Biz.ProfileForOwner(u.ID)
	if !ok {
		return jsonErr(c, fiber.StatusNotFound, "no business profile yet")
	}
	return c.JSON(p)
}

func (h *BusinessHandler) CreateProfile(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	var req profileReq
	if err := c.BodyParser(&req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.StructTags(req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, err.Error())
	}
	p, err := h.Biz.CreateProfile(u.ID, req.input())
	if err == services.ErrProfileExists {
		return jsonErr(c, fiber.StatusConflict, err.Error())
	}
	if err != nil {
		applog.Error(c, "profile.create.error", err, nil)
		return jsonErr(c, fiber.StatusInternalServerError, "could not create profile")
	}
	applog.Audit(c, "profile.create", map[string]any{"profile_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *BusinessHandler) UpdateProfile(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	var req profileReq
	if err := c.BodyParser(&req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.StructTags(req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, err.Error())
	}
	p, err := h.Biz.UpdateProfile(u.ID, req.input())
	if err == services.ErrNoProfile {
		return jsonErr(c, fiber.StatusNotFound, err.Error())
	}
	if err != nil {
		applog.Error(c, "profile.update.error", err, nil)
		return jsonErr(c, fiber.StatusInternalServerError, "could not update profile")
	}
	applog.Audit(c, "profile.update", map[string]any{"profile_id": p.ID})
	return c.JSON(p)
}

type productReq struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Description  string  `json:"description" validate:"max=500"`
	Price        float64 `json:"price" validate:"min=0"`
	Availability bool    `json:"availability"`
	Category     string  `json:"category" validate:"required,max=50"`
	Image        string  `json:"image" validate:"omitempty,url"`
}

func (r productReq) input() services.ProductInput {
	return services.ProductInput{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		Availability: r.Availability,
		Category:     r.Category,
		Image:        r.Image,
	}
}

func (h *BusinessHandler) MyProducts(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	products, err := h.Biz.Products(u.ID)
	if err != nil {
		return jsonErr(c, fiber.StatusNotFound, err.Error())
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(products)
}

func (h *BusinessHandler) CreateProduct(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	var req productReq
	if err := c.BodyParser(&req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.StructTags(req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, err.Error())
	}
	p, err := h.Biz.CreateProduct(*u, req.input())
	switch err {
	case nil:
	case services.ErrProductLimit:
		applog.Info(c, "product.limit.hit", map[string]any{"user_id": u.ID})
		return jsonErr(c, fiber.StatusForbidden, err.Error())
	case services.ErrNoProfile:
		return jsonErr(c, fiber.StatusNotFound, err.Error())
	default:
		applog.Error(c, "product.create.error", err, nil)
		return jsonErr(c, fiber.StatusInternalServerError, "could not create product")
	}
	applog.Audit(c, "product.create", map[string]any{"product_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *BusinessHandler) UpdateProduct(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	id, ok := validateID(c)
	if !ok {
		return jsonErr(c, fiber.StatusBadRequest, "invalid product id")
	}
	var req productReq
	if err := c.BodyParser(&req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.StructTags(req); err != nil {
		return jsonErr(c, fiber.StatusBadRequest, err.Error())
	}
	p, err := h.Biz.UpdateProduct(u.ID, id, req.input())
	if err != nil {
		return bizErr(c, "product.update.error", err)
	}
	applog.Audit(c, "product.update", map[string]any{"product_id": p.ID})
	return c.JSON(p)
}

func (h *BusinessHandler) DeleteProduct(c *fiber.Ctx) error {
	u := c.Locals("user").(*domain.User)
	id, ok := validateID(c)
	if !ok {
		return jsonErr(c, fiber.StatusBadRequest, "invalid product id")
	}
	if err := h.Biz.DeleteProduct(u.ID, id); err != nil {
		return bizErr(c, "product.delete.error", err)
	}
	applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

func validateID(c *fiber.Ctx) (string, bool) {
	return validate.ID(c.Params("id"))
}

func bizErr(c *fiber.Ctx, action string, err error) error {
	switch err {
	case services.ErrNoProfile:
		return jsonErr(c, fiber.StatusNotFound, err.Error())
	case services.ErrNotOwner:
		applog.Security(c, "access.denied.owner", nil)
		return jsonErr(c, fiber.StatusForbidden, err.Error())
	case services.ErrBadPrice, services.ErrBadBid:
		return jsonErr(c, fiber.StatusBadRequest, err.Error())
	default:
		applog.Error(c, action, err, nil)
		return jsonErr(c, fiber.StatusInternalServerError, "request failed")
	}
}
