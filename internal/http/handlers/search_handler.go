package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"shophood/internal/domain"
	applog "shophood/internal/log"
	"shophood/internal/services"
	"shophood/internal/validate"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

type searchItem struct {
	domain.Product
	Sponsored bool            `json:"sponsored"`
	Business  businessSummary `json:"business"`
}

type businessSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

// Search parses filters off the query string and runs the pipeline.
// Radius mode activates when lat/lng are both present; otherwise the named
// location label applies (defaulting like the consumer view does).
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	f := domain.DefaultFilters()

	rawQ := c.Query("q")
	q := ""
	if strings.TrimSpace(rawQ) != "" {
		var ok bool
		q, ok = validate.Q(rawQ)
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
			return jsonErr(c, fiber.StatusBadRequest, "enter a valid keyword (letters/numbers only)")
		}
	}

	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		f.Category = cat
	}
	if loc := strings.TrimSpace(c.Query("location")); loc != "" {
		f.Location = loc
	}

	latS, lngS := c.Query("lat"), c.Query("lng")
	if latS != "" && lngS != "" {
		lat, err1 := strconv.ParseFloat(latS, 64)
		lng, err2 := strconv.ParseFloat(lngS, 64)
		if err1 != nil || err2 != nil {
			applog.Security(c, "validation.fail", map[string]any{"field": "lat/lng"})
			return jsonErr(c, fiber.StatusBadRequest, "invalid coordinates")
		}
		f.Origin = &domain.Coordinates{Lat: lat, Lng: lng}
		if rS := c.Query("radius"); rS != "" {
			r, err := strconv.ParseFloat(rS, 64)
			if err != nil || r < 0 {
				return jsonErr(c, fiber.StatusBadRequest, "invalid radius")
			}
			f.RadiusKm = r
		}
	}

	if v, ok := parseFloatQuery(c, "price_min"); ok {
		f.PriceMin = v
	}
	if v, ok := parseFloatQuery(c, "price_max"); ok {
		f.PriceMax = v
	}
	if v, ok := parseFloatQuery(c, "min_rating"); ok {
		f.MinRating = validate.Rating(v)
	}

	products := h.Catalog.Search(f, q)
	items := make([]searchItem, 0, len(products))
	for _, p := range products {
		it := searchItem{Product: p, Sponsored: h.Catalog.SponsoredBusiness(p.BusinessID)}
		if biz, ok := h.Catalog.BusinessByID(p.BusinessID); ok {
			it.Business = businessSummary{
				ID: biz.ID, Name: biz.Name, Location: biz.Location,
				Rating: biz.Rating, ReviewCount: biz.ReviewCount,
			}
		}
		items = append(items, it)
	}

	return c.JSON(fiber.Map{"count": len(items), "results": items})
}

// Business returns the public profile card shown in the detail modal.
func (h *SearchHandler) Business(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonErr(c, fiber.StatusBadRequest, "invalid business id")
	}
	biz, ok := h.Catalog.BusinessByID(id)
	if !ok {
		return jsonErr(c, fiber.StatusNotFound, "business not found")
	}
	return c.JSON(biz)
}

// Banners lists active banner ads for the home strip.
func (h *SearchHandler) Banners(c *fiber.Ctx) error {
	banners := h.Catalog.ActiveBanners()
	if banners == nil {
		banners = []domain.AdSlot{}
	}
	return c.JSON(banners)
}

func parseFloatQuery(c *fiber.Ctx, key string) (float64, bool) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
