package store

import "shophood/internal/domain"

// Apply is the pure transition function. Replace-by-id actions that reference
// an absent id leave the collection untouched; unknown actions return the
// input state unchanged.
func Apply(s State, a Action) State {
	switch a := a.(type) {
	case Login:
		u := a.User
		s.CurrentUser = &u
	case Logout:
		s.CurrentUser = nil
	case AddUser:
		s.Users = append(copyUsers(s.Users), a.User)
	case UpdateUser:
		s.Users = replaceUser(s.Users, a.User)
		if s.CurrentUser != nil && s.CurrentUser.ID == a.User.ID {
			u := a.User
			s.CurrentUser = &u
		}
	case AddBusinessProfile:
		s.BusinessProfiles = append(copyProfiles(s.BusinessProfiles), a.Profile)
	case UpdateBusinessProfile:
		s.BusinessProfiles = replaceProfile(s.BusinessProfiles, a.Profile)
	case AddProduct:
		s.Products = append(copyProducts(s.Products), a.Product)
	case UpdateProduct:
		s.Products = replaceProduct(s.Products, a.Product)
	case DeleteProduct:
		out := make([]domain.Product, 0, len(s.Products))
		for _, p := range s.Products {
			if p.ID != a.ID {
				out = append(out, p)
			}
		}
		s.Products = out
	case AddMessage:
		s.Messages = append(copyMessages(s.Messages), a.Message)
	case MarkMessageRead:
		out := copyMessages(s.Messages)
		for i := range out {
			if out[i].ID == a.ID {
				out[i].Read = true
			}
		}
		s.Messages = out
	case AddAdSlot:
		s.AdSlots = append(copyAds(s.AdSlots), a.Ad)
	case UpdateAdSlot:
		s.AdSlots = replaceAd(s.AdSlots, a.Ad)
	case LoadState:
		s = a.State
	}
	return s
}

func replaceUser(in []domain.User, u domain.User) []domain.User {
	out := copyUsers(in)
	for i := range out {
		if out[i].ID == u.ID {
			out[i] = u
		}
	}
	return out
}

func replaceProfile(in []domain.BusinessProfile, p domain.BusinessProfile) []domain.BusinessProfile {
	out := copyProfiles(in)
	for i := range out {
		if out[i].ID == p.ID {
			out[i] = p
		}
	}
	return out
}

func replaceProduct(in []domain.Product, p domain.Product) []domain.Product {
	out := copyProducts(in)
	for i := range out {
		if out[i].ID == p.ID {
			out[i] = p
		}
	}
	return out
}

func replaceAd(in []domain.AdSlot, a domain.AdSlot) []domain.AdSlot {
	out := copyAds(in)
	for i := range out {
		if out[i].ID == a.ID {
			out[i] = a
		}
	}
	return out
}

func copyUsers(in []domain.User) []domain.User {
	out := make([]domain.User, len(in))
	copy(out, in)
	return out
}

func copyProfiles(in []domain.BusinessProfile) []domain.BusinessProfile {
	out := make([]domain.BusinessProfile, len(in))
	copy(out, in)
	return out
}

func copyProducts(in []domain.Product) []domain.Product {
	out := make([]domain.Product, len(in))
	copy(out, in)
	return out
}

func copyMessages(in []domain.Message) []domain.Message {
	out := make([]domain.Message, len(in))
	copy(out, in)
	return out
}

func copyAds(in []domain.AdSlot) []domain.AdSlot {
	out := make([]domain.AdSlot, len(in))
	copy(out, in)
	return out
}
