package validate

import (
	"regexp"
	"strings"
)

var (
	reQ    = regexp.MustCompile(`^[A-Za-z0-9 _'\\-]{1,50}$`)
	reID   = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reKind = regexp.MustCompile(`^(sponsored|banner)$`)
)

// Q validates a search query: trims, enforces allowed characters and max length
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// ID validates a simple resource identifier (product/profile/ad ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// AdKind validates the ad slot kind enum.
func AdKind(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reKind.MatchString(s)
}

// Rating clamps a star rating into [0,5].
func Rating(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}
