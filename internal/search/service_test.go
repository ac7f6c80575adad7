package search

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

const (
	baseLat = 37.7749
	baseLng = -122.4194
)

// addVendor registers a vendor dLat degrees north of the query point
// (0.01 degrees of latitude is roughly 1.1 km).
func addVendor(store *InMemoryStore, id, name string, dLat float64, items ...Item) {
	store.Vendors = append(store.Vendors, Candidate{
		VendorID: id,
		Name:     name,
		Phone:    "+1555" + id,
		Lat:      baseLat + dLat,
		Lng:      baseLng,
	})
	store.Menus[id] = items
}

func rankOrder(results []RankedResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.VendorID
	}
	return ids
}

// --------------------------------------------------
// Empty query = distance-only browse
// --------------------------------------------------

func TestRank_EmptyQueryOrdersByDistance(t *testing.T) {
	store := NewInMemoryStore()
	addVendor(store, "v_far", "Sushi Cart", 0.03)
	addVendor(store, "v_near", "Burger Stand", 0.01)
	addVendor(store, "v_mid", "Taco Truck", 0.02)

	svc := NewService(store)

	results, err := svc.Rank(context.Background(), "", baseLat, baseLng, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("empty query must not discard candidates, got %d results", len(results))
	}

	want := []string{"v_near", "v_mid", "v_far"}
	got := rankOrder(results)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}

	for i := 1; i < len(results); i++ {
		if results[i].DistanceMeters < results[i-1].DistanceMeters {
			t.Fatalf("distances not ascending: %v", results)
		}
	}
}

// --------------------------------------------------
// Non-matching query exclusion
// --------------------------------------------------

func TestRank_NonMatchingQueryReturnsNothing(t *testing.T) {
	store := NewInMemoryStore()
	addVendor(store, "v_1", "Alpha Stand", 0.01, Item{ID: "m_1", Name: "Soup", Price: 4})
	addVendor(store, "v_2", "Beta Cart", 0.02)

	svc := NewService(store)

	results, err := svc.Rank(context.Background(), "sushi", baseLat, baseLng, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %v", rankOrder(results))
	}
}

// --------------------------------------------------
// Name and item bonuses
// --------------------------------------------------

func TestRank_NameMatchBeatsDistance(t *testing.T) {
	store := NewInMemoryStore()
	// Nearest vendor has no textual match at all once the query is
	// non-empty, so it is excluded outright.
	addVendor(store, "v_close", "Flower Shop", 0.001)
	addVendor(store, "v_sushi", "Sushi Express", 0.05)

	svc := NewService(store)

	results, err := svc.Rank(context.Background(), "sushi", baseLat, baseLng, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 || results[0].VendorID != "v_sushi" {
		t.Fatalf("expected only v_sushi, got %v", rankOrder(results))
	}
}

func TestRank_ExpandedTermMatchesItems(t *testing.T) {
	store := NewInMemoryStore()
	// "taco" expands to mexican-adjacent terms, so a burrito item
	// matches a taco query.
	addVendor(store, "v_b", "El Camion", 0.01,
		Item{ID: "m_1", Name: "Burrito Grande", Price: 9.5},
	)

	svc := NewService(store)

	results, err := svc.Rank(context.Background(), "taco", baseLat, baseLng, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if len(results[0].MatchingItems) != 1 || results[0].MatchingItems[0].ItemID != "m_1" {
		t.Fatalf("expected the burrito item to match, got %v", results[0].MatchingItems)
	}
}

// --------------------------------------------------
// Score monotonicity
// --------------------------------------------------

func TestRank_ExtraMatchingItemRaisesRank(t *testing.T) {
	store := NewInMemoryStore()
	addVendor(store, "v_one", "Sushi A", 0.01,
		Item{ID: "m_1", Name: "Sushi Roll", Price: 8},
	)
	// Farther away but one more matching item.
	addVendor(store, "v_two", "Sushi B", 0.02,
		Item{ID: "m_2", Name: "Sushi Roll", Price: 8},
		Item{ID: "m_3", Name: "Sushi Platter", Price: 14},
	)

	svc := NewService(store)

	results, err := svc.Rank(context.Background(), "sushi", baseLat, baseLng, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := rankOrder(results)
	if len(got) != 2 || got[0] != "v_two" {
		t.Fatalf("extra matching item must outrank distance, got %v", got)
	}
}

// --------------------------------------------------
// Tie-break determinism
// --------------------------------------------------

func TestRank_EqualScoresBreakTiesByDistance(t *testing.T) {
	store := NewInMemoryStore()
	// Both beyond 50 km: distance bonus is zero for each, so the
	// name-match bonus alone gives identical scores.
	addVendor(store, "v_60km", "Sushi North", 0.60)
	addVendor(store, "v_55km", "Sushi South", 0.55)

	svc := NewService(store)

	results, err := svc.Rank(context.Background(), "sushi", baseLat, baseLng, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"v_55km", "v_60km"}
	got := rankOrder(results)
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// --------------------------------------------------
// matchingItems cap
// --------------------------------------------------

func TestRank_MatchingItemsCappedAtThree(t *testing.T) {
	store := NewInMemoryStore()

	items := make([]Item, 5)
	for i := range items {
		items[i] = Item{
			ID:    fmt.Sprintf("m_%d", i),
			Name:  fmt.Sprintf("Sushi Special %d", i),
			Price: 10,
		}
	}
	addVendor(store, "v_big", "Sushi World", 0.01, items...)

	svc := NewService(store)

	results, err := svc.Rank(context.Background(), "sushi", baseLat, baseLng, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if len(results[0].MatchingItems) != 3 {
		t.Fatalf("expected 3 matching items, got %d", len(results[0].MatchingItems))
	}
}

// --------------------------------------------------
// Limit handling
// --------------------------------------------------

func TestRank_LimitCappedAtMaxResults(t *testing.T) {
	store := NewInMemoryStore()
	for i := 0; i < 30; i++ {
		addVendor(store, fmt.Sprintf("v_%02d", i), "Sushi Stop", float64(i)*0.001)
	}

	svc := NewService(store)

	results, err := svc.Rank(context.Background(), "sushi", baseLat, baseLng, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != MaxResults {
		t.Fatalf("expected %d results, got %d", MaxResults, len(results))
	}
}

func TestRank_ZeroLimitUsesDefault(t *testing.T) {
	store := NewInMemoryStore()
	for i := 0; i < 30; i++ {
		addVendor(store, fmt.Sprintf("v_%02d", i), "Sushi Stop", float64(i)*0.001)
	}

	svc := NewService(store)

	results, err := svc.Rank(context.Background(), "", baseLat, baseLng, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != DefaultResults {
		t.Fatalf("expected %d results, got %d", DefaultResults, len(results))
	}
}

// --------------------------------------------------
// Input validation & upstream failure
// --------------------------------------------------

func TestRank_RejectsInvalidInput(t *testing.T) {
	svc := NewService(NewInMemoryStore())

	if _, err := svc.Rank(context.Background(), "", 91, 0, 10); !errors.Is(err, ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
	if _, err := svc.Rank(context.Background(), "", 0, -200, 10); !errors.Is(err, ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
	if _, err := svc.Rank(context.Background(), "", 0, 0, -1); !errors.Is(err, ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit, got %v", err)
	}
}

type failingStore struct{}

func (failingStore) FetchCandidates(ctx context.Context, lat, lng float64, ceiling int) ([]Candidate, error) {
	return nil, errors.New("store down")
}

func (failingStore) MenuItems(ctx context.Context, vendorID string) ([]Item, error) {
	return nil, errors.New("store down")
}

func TestRank_StoreFailurePropagates(t *testing.T) {
	svc := NewService(failingStore{})

	if _, err := svc.Rank(context.Background(), "taco", baseLat, baseLng, 10); err == nil {
		t.Fatal("expected store failure to propagate")
	}
}
