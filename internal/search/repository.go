package search

import "context"

// Store supplies the candidate snapshot for one ranking call
type Store interface {

	// FetchCandidates returns up to ceiling vendors that have a
	// location set, nearest first, with distance to (lat, lng)
	// already attached
	FetchCandidates(
		ctx context.Context,
		lat float64,
		lng float64,
		ceiling int,
	) ([]Candidate, error)

	// MenuItems returns the available menu items of one vendor
	MenuItems(
		ctx context.Context,
		vendorID string,
	) ([]Item, error)
}
