package store

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shophood/internal/domain"
)

// Seed builds the demo dataset installed when no usable snapshot exists.
// Timestamps are taken in UTC so they survive a serialize/deserialize
// round-trip byte for byte.
func Seed() State {
	log.Println("[seed] installing demo users/profiles/products/messages/ads")

	mk := func(id, name, email string, role domain.Role, plan domain.Plan, raw string) domain.User {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return domain.User{
			ID: id, Name: name, Role: role, Email: email,
			Hash: string(h), Plan: plan,
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=" + name,
		}
	}

	users := []domain.User{
		mk("1", "John Consumer", "john@example.com", domain.RoleConsumer, domain.PlanFree, "password"),
		mk("2", "Sarah's Bakery", "sarah@bakery.com", domain.RoleBusiness, domain.PlanFree, "password"),
		mk("3", "Mike's Electronics", "mike@electronics.com", domain.RoleBusiness, domain.PlanPremium, "password"),
	}

	profiles := []domain.BusinessProfile{
		{
			ID: "bp1", OwnerUserID: "2",
			Name:        "Sarah's Artisan Bakery",
			Description: "Fresh baked goods made daily with locally sourced ingredients.",
			Type:        "Food & Beverage",
			Location:    "Downtown District",
			Coordinates: domain.Coordinates{Lat: 40.7128, Lng: -74.0060},
			ContactEmail: "sarah@bakery.com", ContactPhone: "+1-555-0123",
			Images: []string{"https://images.unsplash.com/photo-1555507036-ab794f27d0ac?w=400"},
			Rating: 4.8, ReviewCount: 127,
		},
		{
			ID: "bp2", OwnerUserID: "3",
			Name:        "Mike's Tech Hub",
			Description: "Latest electronics and gadgets with expert repair services.",
			Type:        "Electronics",
			Location:    "Tech Quarter",
			Coordinates: domain.Coordinates{Lat: 40.7589, Lng: -73.9851},
			ContactEmail: "mike@electronics.com", ContactPhone: "+1-555-0456",
			Images: []string{"https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=400"},
			Rating: 4.6, ReviewCount: 89,
		},
	}

	products := []domain.Product{
		{ID: "p1", BusinessID: "bp1", Name: "Artisan Sourdough Bread",
			Description: "Traditional sourdough with 24-hour fermentation process.",
			Price:       8.99, Availability: true, Category: "Food & Beverage",
			Image: "https://images.unsplash.com/photo-1549931319-a545dcf3bc73?w=300"},
		{ID: "p2", BusinessID: "bp1", Name: "Chocolate Croissants",
			Description: "Buttery croissants filled with Belgian dark chocolate.",
			Price:       3.50, Availability: true, Category: "Food & Beverage",
			Image: "https://images.unsplash.com/photo-1555507036-ab794f27d0ac?w=300"},
		{ID: "p3", BusinessID: "bp2", Name: "Wireless Earbuds Pro",
			Description: "Premium noise-canceling wireless earbuds with 30-hour battery.",
			Price:       199.99, Availability: true, Category: "Electronics",
			Image: "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=300"},
		{ID: "p4", BusinessID: "bp2", Name: "Smart Watch Series X",
			Description: "Advanced fitness tracking with health monitoring features.",
			Price:       299.99, Availability: true, Category: "Electronics",
			Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=300"},
		{ID: "p5", BusinessID: "bp1", Name: "Fresh Coffee Blend",
			Description: "Locally roasted premium coffee beans.",
			Price:       12.99, Availability: true, Category: "Food & Beverage",
			Image: "https://images.unsplash.com/photo-1447933601403-0c6688de566e?w=300"},
		{ID: "p6", BusinessID: "bp2", Name: "Bluetooth Speaker",
			Description: "Portable wireless speaker with crystal clear sound.",
			Price:       89.99, Availability: true, Category: "Electronics",
			Image: "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=300"},
	}

	ads := []domain.AdSlot{
		{ID: "ad1", BusinessID: "bp2", Kind: domain.AdSponsored, Active: true,
			BidAmount: 25.00, Title: "Premium Electronics",
			Description: "Get the latest tech at unbeatable prices!"},
	}

	now := time.Now().UTC()
	messages := []domain.Message{
		{ID: "m1", FromUserID: "1", ToUserID: "2",
			Content:   "Hi! Do you have any fresh croissants available today?",
			Timestamp: now.Add(-2 * time.Hour), Read: false},
		{ID: "m2", FromUserID: "2", ToUserID: "1",
			Content:   "Yes! We just baked a fresh batch this morning. They're still warm!",
			Timestamp: now.Add(-90 * time.Minute), Read: true},
		{ID: "m3", FromUserID: "1", ToUserID: "2",
			Content:   "Perfect! I'll stop by in 30 minutes. Can you set aside 4 chocolate croissants?",
			Timestamp: now.Add(-time.Hour), Read: false},
		{ID: "m4", FromUserID: "3", ToUserID: "1",
			Content:   "Thank you for your interest in our wireless earbuds! They're currently 20% off.",
			Timestamp: now.Add(-3 * time.Hour), Read: false},
	}

	return State{
		Users:            users,
		BusinessProfiles: profiles,
		Products:         products,
		Messages:         messages,
		AdSlots:          ads,
	}
}
