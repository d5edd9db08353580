package domain

import "time"

type Role string

const (
	RoleConsumer Role = "consumer"
	RoleBusiness Role = "business"
)

type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

type AdKind string

const (
	AdSponsored AdKind = "sponsored"
	AdBanner    AdKind = "banner"
)

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type BusinessProfile struct {
	ID           string      `json:"id"`
	OwnerUserID  string      `json:"ownerUserId"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Type         string      `json:"type"` // category tag, e.g. "Food & Beverage"
	Location     string      `json:"location"`
	Coordinates  Coordinates `json:"coordinates"`
	ContactEmail string      `json:"contactEmail"`
	ContactPhone string      `json:"contactPhone"`
	Images       []string    `json:"images"`
	Rating       float64     `json:"rating"` // 0..5
	ReviewCount  int         `json:"reviewCount"`
}

type Product struct {
	ID           string  `json:"id"`
	BusinessID   string  `json:"businessId"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Availability bool    `json:"availability"`
	Category     string  `json:"category"`
	Image        string  `json:"image,omitempty"`
}

type Message struct {
	ID         string    `json:"id"`
	FromUserID string    `json:"fromUserId"`
	ToUserID   string    `json:"toUserId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

type AdSlot struct {
	ID          string  `json:"id"`
	BusinessID  string  `json:"businessId"`
	Kind        AdKind  `json:"type"`
	Active      bool    `json:"active"`
	BidAmount   float64 `json:"bidAmount"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}
