package search

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
)

const (
	// MaxResults is the hard cap on one ranking call; larger caller
	// limits are clamped, never rejected.
	MaxResults = 20

	// DefaultResults is used when the caller passes no limit.
	DefaultResults = 10

	// CandidateCeiling bounds the distance-ordered fetch. It is
	// deliberately much larger than MaxResults so text relevance has
	// enough candidates to re-rank.
	CandidateCeiling = 100

	nameMatchBonus   = 100.0
	itemMatchBonus   = 50.0
	maxMatchingItems = 3
)

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidLimit       = errors.New("limit must not be negative")
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// --------------------------------------------------
// Rank
// --------------------------------------------------

// Rank returns up to limit vendors near (lat, lng) ordered by blended
// text relevance and proximity. An empty query means distance-only
// browse: no candidate is discarded and no text bonus is awarded, so
// ordering degrades to nearest first.
func (s *Service) Rank(
	ctx context.Context,
	query string,
	lat float64,
	lng float64,
	limit int,
) ([]RankedResult, error) {

	if !validCoordinates(lat, lng) {
		return nil, ErrInvalidCoordinates
	}
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	if limit == 0 {
		limit = DefaultResults
	}
	if limit > MaxResults {
		limit = MaxResults
	}

	query = strings.ToLower(strings.TrimSpace(query))
	terms := Expand(query)

	candidates, err := s.store.FetchCandidates(ctx, lat, lng, CandidateCeiling)
	if err != nil {
		return nil, err
	}

	scored := make([]scoredResult, 0, len(candidates))

	for _, cand := range candidates {
		items, err := s.store.MenuItems(ctx, cand.VendorID)
		if err != nil {
			return nil, err
		}

		var score float64
		var matching []MatchingItem

		if query != "" {
			if containsAny(strings.ToLower(cand.Name), terms) {
				score += nameMatchBonus
			}

			for _, it := range items {
				if !containsAny(strings.ToLower(it.Name), terms) {
					continue
				}
				score += itemMatchBonus
				if len(matching) < maxMatchingItems {
					matching = append(matching, MatchingItem{
						ItemID: it.ID,
						Name:   it.Name,
						Price:  it.Price,
					})
				}
			}

			// No textual relevance at all: excluded even if close.
			if score == 0 {
				continue
			}
		}

		score += distanceBonus(cand.DistanceMeters)

		scored = append(scored, scoredResult{
			RankedResult: RankedResult{
				VendorID:       cand.VendorID,
				Name:           cand.Name,
				Phone:          cand.Phone,
				BusinessHours:  cand.BusinessHours,
				Location:       Location{Lat: cand.Lat, Lng: cand.Lng},
				DistanceMeters: int(cand.DistanceMeters),
				MatchingItems:  matching,
			},
			score: score,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].DistanceMeters < scored[j].DistanceMeters
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	results := make([]RankedResult, len(scored))
	for i, sc := range scored {
		results[i] = sc.RankedResult
	}

	return results, nil
}

// distanceBonus decays linearly from 50 at the query point to 0 at
// 50 km, so distance only breaks ties between textually similar
// vendors rather than dominating the name and item bonuses.
func distanceBonus(meters float64) float64 {
	return math.Max(0, 50-meters/1000)
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

func validCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
