package search

import (
	"context"
	"math"
	"sort"
)

// InMemoryStore backs the engine in tests and local development.
// Distance is haversine, which is close enough to the geodesic
// distance PostGIS computes for the scales street vendors operate at.
type InMemoryStore struct {
	Vendors []Candidate
	Menus   map[string][]Item
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		Menus: make(map[string][]Item),
	}
}

func (s *InMemoryStore) FetchCandidates(
	ctx context.Context,
	lat float64,
	lng float64,
	ceiling int,
) ([]Candidate, error) {

	candidates := make([]Candidate, len(s.Vendors))
	copy(candidates, s.Vendors)

	for i := range candidates {
		candidates[i].DistanceMeters = haversineMeters(
			lat, lng,
			candidates[i].Lat, candidates[i].Lng,
		)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].DistanceMeters < candidates[j].DistanceMeters
	})

	if len(candidates) > ceiling {
		candidates = candidates[:ceiling]
	}

	return candidates, nil
}

func (s *InMemoryStore) MenuItems(
	ctx context.Context,
	vendorID string,
) ([]Item, error) {
	return s.Menus[vendorID], nil
}

func haversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusM = 6371000.0

	dLat := radians(lat2 - lat1)
	dLng := radians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusM * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
