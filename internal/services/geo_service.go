package services

import (
	"sync"
	"time"

	"shophood/internal/domain"
)

// simulatedPosition stands in for a real geolocation provider.
var simulatedPosition = domain.Coordinates{Lat: 40.7128, Lng: -74.0060}

// GeoService simulates a device geolocation request: fire-and-forget with a
// delayed resolution and no cancellation. Overlapping requests are safe; the
// last one to resolve wins.
type GeoService struct {
	mu       sync.Mutex
	delay    time.Duration
	gen      int
	resolved int
	origin   *domain.Coordinates
}

func NewGeoService(delay time.Duration) *GeoService {
	if delay <= 0 {
		delay = 300 * time.Millisecond
	}
	return &GeoService{delay: delay}
}

// Request schedules a resolution and returns immediately.
func (g *GeoService) Request() {
	g.mu.Lock()
	g.gen++
	gen := g.gen
	g.mu.Unlock()

	time.AfterFunc(g.delay, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if gen < g.resolved {
			return // superseded by a later request that already resolved
		}
		pos := simulatedPosition
		g.origin = &pos
		g.resolved = gen
	})
}

// Current returns the last resolved origin; ok is false until the first
// request resolves.
func (g *GeoService) Current() (domain.Coordinates, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.origin == nil {
		return domain.Coordinates{}, false
	}
	return *g.origin, true
}
