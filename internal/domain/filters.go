package domain

// CategoryAll is the sentinel meaning "do not filter by category".
const CategoryAll = "All Categories"

// SearchFilters holds the ephemeral filter settings for a catalog search.
// Location modes are mutually exclusive: when Origin is set the search runs in
// radius mode (great-circle distance from Origin, RadiusKm threshold);
// otherwise the business location label must equal Location exactly.
type SearchFilters struct {
	Location  string       `json:"location"`
	RadiusKm  float64      `json:"radius"`
	Category  string       `json:"category"`
	PriceMin  float64      `json:"priceMin"`
	PriceMax  float64      `json:"priceMax"`
	MinRating float64      `json:"minRating"`
	Origin    *Coordinates `json:"origin,omitempty"`
}

// DefaultFilters mirrors the initial filter state of the consumer view.
func DefaultFilters() SearchFilters {
	return SearchFilters{
		Location:  "Downtown District",
		RadiusKm:  10,
		Category:  CategoryAll,
		PriceMin:  0,
		PriceMax:  500,
		MinRating: 0,
	}
}
