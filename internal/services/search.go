package services

import (
	"math"
	"strings"

	"shophood/internal/domain"
	"shophood/internal/store"
)

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance between two points in km.
func Haversine(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// SearchProducts runs the filter/rank pipeline over a catalog. Each step is a
// pure filter; the final step is a stable partition that moves products of
// sponsored businesses ahead of the rest without reordering within either
// group. A malformed price range (min > max) yields no results. Products whose
// owning business cannot be resolved are dropped by the location step.
func SearchProducts(products []domain.Product, profiles []domain.BusinessProfile, ads []domain.AdSlot, f domain.SearchFilters, query string) []domain.Product {
	byID := make(map[string]domain.BusinessProfile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !p.Availability {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if f.Category != domain.CategoryAll && p.Category != f.Category {
			continue
		}
		if p.Price < f.PriceMin || p.Price > f.PriceMax {
			continue
		}
		biz, ok := byID[p.BusinessID]
		if !ok {
			continue
		}
		if f.Origin != nil {
			if Haversine(*f.Origin, biz.Coordinates) > f.RadiusKm {
				continue
			}
		} else if biz.Location != f.Location {
			continue
		}
		if biz.Rating < f.MinRating {
			continue
		}
		out = append(out, p)
	}

	sponsored := make(map[string]bool)
	for _, ad := range ads {
		if ad.Active && ad.Kind == domain.AdSponsored {
			sponsored[ad.BusinessID] = true
		}
	}

	ranked := make([]domain.Product, 0, len(out))
	for _, p := range out {
		if sponsored[p.BusinessID] {
			ranked = append(ranked, p)
		}
	}
	for _, p := range out {
		if !sponsored[p.BusinessID] {
			ranked = append(ranked, p)
		}
	}
	return ranked
}

// CatalogService answers consumer browsing queries from current store state.
// Results are recomputed per call, never cached, so catalog edits show up in
// the next search.
type CatalogService struct {
	Store *store.Store
}

func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{Store: st}
}

func (s *CatalogService) Search(f domain.SearchFilters, query string) []domain.Product {
	st := s.Store.State()
	return SearchProducts(st.Products, st.BusinessProfiles, st.AdSlots, f, query)
}

func (s *CatalogService) BusinessByID(id string) (domain.BusinessProfile, bool) {
	return s.Store.State().ProfileByID(id)
}

// SponsoredBusiness reports whether the business currently holds an active
// sponsored slot, for labeling results.
func (s *CatalogService) SponsoredBusiness(businessID string) bool {
	for _, ad := range s.Store.State().AdSlots {
		if ad.Active && ad.Kind == domain.AdSponsored && ad.BusinessID == businessID {
			return true
		}
	}
	return false
}

// ActiveBanners lists active banner slots for the consumer home strip.
func (s *CatalogService) ActiveBanners() []domain.AdSlot {
	var out []domain.AdSlot
	for _, ad := range s.Store.State().AdSlots {
		if ad.Active && ad.Kind == domain.AdBanner {
			out = append(out, ad)
		}
	}
	return out
}
