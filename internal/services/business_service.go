package services

import (
	"errors"

	"github.com/google/uuid"

	"shophood/internal/domain"
	"shophood/internal/store"
)

// FreeProductLimit caps concurrently owned products on the free plan. The cap
// is a creation-time precondition only; a downgrade never deletes listings.
const FreeProductLimit = 3

var (
	ErrProfileExists = errors.New("business already has a profile")
	ErrNoProfile     = errors.New("business profile not found")
	ErrNotOwner      = errors.New("not the owner of this resource")
	ErrProductLimit  = errors.New("free accounts can only have 3 products")
	ErrBadPrice      = errors.New("price must be zero or positive")
	ErrBadBid        = errors.New("bid amount must be positive")
)

type ProfileInput struct {
	Name         string
	Description  string
	Type         string
	Location     string
	Coordinates  domain.Coordinates
	ContactEmail string
	ContactPhone string
	Images       []string
}

type ProductInput struct {
	Name         string
	Description  string
	Price        float64
	Availability bool
	Category     string
	Image        string
}

type AdInput struct {
	Kind        domain.AdKind
	Active      bool
	BidAmount   float64
	Title       string
	Description string
}

// BusinessService covers the business-side CRUD: one profile per owner,
// products under the tier cap, and ad slots.
type BusinessService struct {
	Store *store.Store
}

func NewBusinessService(st *store.Store) *BusinessService {
	return &BusinessService{Store: st}
}

func (s *BusinessService) ProfileForOwner(userID string) (domain.BusinessProfile, bool) {
	return s.Store.State().ProfileForOwner(userID)
}

func (s *BusinessService) CreateProfile(ownerUserID string, in ProfileInput) (domain.BusinessProfile, error) {
	if _, exists := s.Store.State().ProfileForOwner(ownerUserID); exists {
		return domain.BusinessProfile{}, ErrProfileExists
	}
	p := domain.BusinessProfile{
		ID:           uuid.NewString(),
		OwnerUserID:  ownerUserID,
		Name:         in.Name,
		Description:  in.Description,
		Type:         in.Type,
		Location:     in.Location,
		Coordinates:  in.Coordinates,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Images:       in.Images,
	}
	s.Store.Dispatch(store.AddBusinessProfile{Profile: p})
	return p, nil
}

func (s *BusinessService) UpdateProfile(ownerUserID string, in ProfileInput) (domain.BusinessProfile, error) {
	p, ok := s.Store.State().ProfileForOwner(ownerUserID)
	if !ok {
		return domain.BusinessProfile{}, ErrNoProfile
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Type = in.Type
	p.Location = in.Location
	p.Coordinates = in.Coordinates
	p.ContactEmail = in.ContactEmail
	p.ContactPhone = in.ContactPhone
	if in.Images != nil {
		p.Images = in.Images
	}
	s.Store.Dispatch(store.UpdateBusinessProfile{Profile: p})
	return p, nil
}

func (s *BusinessService) Products(ownerUserID string) ([]domain.Product, error) {
	st := s.Store.State()
	p, ok := st.ProfileForOwner(ownerUserID)
	if !ok {
		return nil, ErrNoProfile
	}
	return st.ProductsForBusiness(p.ID), nil
}

func (s *BusinessService) CreateProduct(owner domain.User, in ProductInput) (domain.Product, error) {
	if in.Price < 0 {
		return domain.Product{}, ErrBadPrice
	}
	st := s.Store.State()
	profile, ok := st.ProfileForOwner(owner.ID)
	if !ok {
		return domain.Product{}, ErrNoProfile
	}
	if owner.Plan == domain.PlanFree && len(st.ProductsForBusiness(profile.ID)) >= FreeProductLimit {
		return domain.Product{}, ErrProductLimit
	}
	p := domain.Product{
		ID:           uuid.NewString(),
		BusinessID:   profile.ID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Availability: in.Availability,
		Category:     in.Category,
		Image:        in.Image,
	}
	s.Store.Dispatch(store.AddProduct{Product: p})
	return p, nil
}

func (s *BusinessService) UpdateProduct(ownerUserID, productID string, in ProductInput) (domain.Product, error) {
	if in.Price < 0 {
		return domain.Product{}, ErrBadPrice
	}
	st := s.Store.State()
	cur, profile, err := s.ownedProduct(st, ownerUserID, productID)
	if err != nil {
		return domain.Product{}, err
	}
	cur.Name = in.Name
	cur.Description = in.Description
	cur.Price = in.Price
	cur.Availability = in.Availability
	cur.Category = in.Category
	cur.Image = in.Image
	cur.BusinessID = profile.ID
	s.Store.Dispatch(store.UpdateProduct{Product: cur})
	return cur, nil
}

func (s *BusinessService) DeleteProduct(ownerUserID, productID string) error {
	st := s.Store.State()
	if _, _, err := s.ownedProduct(st, ownerUserID, productID); err != nil {
		return err
	}
	s.Store.Dispatch(store.DeleteProduct{ID: productID})
	return nil
}

func (s *BusinessService) Ads(ownerUserID string) ([]domain.AdSlot, error) {
	st := s.Store.State()
	p, ok := st.ProfileForOwner(ownerUserID)
	if !ok {
		return nil, ErrNoProfile
	}
	return st.AdsForBusiness(p.ID), nil
}

func (s *BusinessService) CreateAd(ownerUserID string, in AdInput) (domain.AdSlot, error) {
	if in.BidAmount <= 0 {
		return domain.AdSlot{}, ErrBadBid
	}
	profile, ok := s.Store.State().ProfileForOwner(ownerUserID)
	if !ok {
		return domain.AdSlot{}, ErrNoProfile
	}
	ad := domain.AdSlot{
		ID:          uuid.NewString(),
		BusinessID:  profile.ID,
		Kind:        in.Kind,
		Active:      in.Active,
		BidAmount:   in.BidAmount,
		Title:       in.Title,
		Description: in.Description,
	}
	s.Store.Dispatch(store.AddAdSlot{Ad: ad})
	return ad, nil
}

func (s *BusinessService) UpdateAd(ownerUserID, adID string, in AdInput) (domain.AdSlot, error) {
	if in.BidAmount <= 0 {
		return domain.AdSlot{}, ErrBadBid
	}
	st := s.Store.State()
	profile, ok := st.ProfileForOwner(ownerUserID)
	if !ok {
		return domain.AdSlot{}, ErrNoProfile
	}
	for _, ad := range st.AdSlots {
		if ad.ID == adID {
			if ad.BusinessID != profile.ID {
				return domain.AdSlot{}, ErrNotOwner
			}
			ad.Kind = in.Kind
			ad.Active = in.Active
			ad.BidAmount = in.BidAmount
			ad.Title = in.Title
			ad.Description = in.Description
			s.Store.Dispatch(store.UpdateAdSlot{Ad: ad})
			return ad, nil
		}
	}
	return domain.AdSlot{}, ErrNotOwner
}

func (s *BusinessService) ownedProduct(st store.State, ownerUserID, productID string) (domain.Product, domain.BusinessProfile, error) {
	profile, ok := st.ProfileForOwner(ownerUserID)
	if !ok {
		return domain.Product{}, domain.BusinessProfile{}, ErrNoProfile
	}
	for _, p := range st.Products {
		if p.ID == productID {
			if p.BusinessID != profile.ID {
				return domain.Product{}, domain.BusinessProfile{}, ErrNotOwner
			}
			return p, profile, nil
		}
	}
	return domain.Product{}, domain.BusinessProfile{}, ErrNotOwner
}
