package search

// Candidate is one vendor under consideration for a single ranking
// call. Distance is computed by the store at fetch time; the engine
// never re-derives it.
type Candidate struct {
	VendorID       string
	Name           string
	Phone          string
	BusinessHours  string
	Lat            float64
	Lng            float64
	DistanceMeters float64
}

// Item is the slice of a menu item the engine needs for matching.
type Item struct {
	ID    string
	Name  string
	Price float64
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type MatchingItem struct {
	ItemID string  `json:"itemId"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
}

// RankedResult is what callers see. It deliberately has no score
// field; scoring lives on the unexported scoredResult so it cannot
// leak through the API by accident.
type RankedResult struct {
	VendorID       string         `json:"vendorId"`
	Name           string         `json:"name"`
	Phone          string         `json:"phone,omitempty"`
	BusinessHours  string         `json:"businessHours,omitempty"`
	Location       Location       `json:"location"`
	DistanceMeters int            `json:"distance_m"`
	MatchingItems  []MatchingItem `json:"matchingItems"`
}

type scoredResult struct {
	RankedResult
	score float64
}
