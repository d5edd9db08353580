package store

import "shophood/internal/domain"

// State is the whole application state. It is treated as immutable: Apply
// returns a new State and never writes through slices of its input.
type State struct {
	Users            []domain.User            `json:"users"`
	BusinessProfiles []domain.BusinessProfile `json:"businessProfiles"`
	Products         []domain.Product         `json:"products"`
	Messages         []domain.Message         `json:"messages"`
	AdSlots          []domain.AdSlot          `json:"adSlots"`
	CurrentUser      *domain.User             `json:"currentUser"`
}

func (s State) UserByID(id string) (domain.User, bool) {
	for _, u := range s.Users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s State) ProfileByID(id string) (domain.BusinessProfile, bool) {
	for _, p := range s.BusinessProfiles {
		if p.ID == id {
			return p, true
		}
	}
	return domain.BusinessProfile{}, false
}

func (s State) ProfileForOwner(userID string) (domain.BusinessProfile, bool) {
	for _, p := range s.BusinessProfiles {
		if p.OwnerUserID == userID {
			return p, true
		}
	}
	return domain.BusinessProfile{}, false
}

func (s State) ProductsForBusiness(businessID string) []domain.Product {
	var out []domain.Product
	for _, p := range s.Products {
		if p.BusinessID == businessID {
			out = append(out, p)
		}
	}
	return out
}

func (s State) AdsForBusiness(businessID string) []domain.AdSlot {
	var out []domain.AdSlot
	for _, a := range s.AdSlots {
		if a.BusinessID == businessID {
			out = append(out, a)
		}
	}
	return out
}
