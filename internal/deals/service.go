package deals

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultNearbyLimit matches the discovery feed page size.
	DefaultNearbyLimit = 20
	MaxNearbyLimit     = 50
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Create deal
// --------------------------------------------------
func (s *Service) CreateDeal(
	ctx context.Context,
	vendorID string,
	itemName string,
	dealPrice float64,
	originalPrice *float64,
	expiresAt time.Time,
) (*Deal, error) {

	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return nil, errors.New("item name is required")
	}
	if dealPrice <= 0 {
		return nil, errors.New("deal price must be positive")
	}
	if originalPrice != nil && *originalPrice <= dealPrice {
		return nil, errors.New("original price must exceed deal price")
	}
	if !expiresAt.After(time.Now()) {
		return nil, errors.New("expiry must be in the future")
	}

	deal := &Deal{
		ID:            newDealID(),
		VendorID:      vendorID,
		ItemName:      itemName,
		OriginalPrice: originalPrice,
		DealPrice:     dealPrice,
		ExpiresAt:     expiresAt,
		IsActive:      true,
	}

	if err := s.repo.Create(ctx, deal); err != nil {
		return nil, err
	}

	return deal, nil
}

// --------------------------------------------------
// Nearby feed
// --------------------------------------------------
func (s *Service) ListNearby(
	ctx context.Context,
	lat float64,
	lng float64,
	limit int,
) ([]NearbyDeal, error) {

	if math.IsNaN(lat) || math.IsNaN(lng) ||
		lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, errors.New("invalid coordinates")
	}

	if limit <= 0 {
		limit = DefaultNearbyLimit
	}
	if limit > MaxNearbyLimit {
		limit = MaxNearbyLimit
	}

	return s.repo.ListNearby(ctx, lat, lng, limit)
}

func newDealID() string {
	return "d_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
