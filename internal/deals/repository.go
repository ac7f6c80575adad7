package deals

import "context"

type Repository interface {

	// Create stores a deal, stamping it with the vendor's current
	// location
	Create(ctx context.Context, deal *Deal) error

	// ListNearby returns active, unexpired deals ordered by distance
	// to (lat, lng)
	ListNearby(
		ctx context.Context,
		lat float64,
		lng float64,
		limit int,
	) ([]NearbyDeal, error)
}
