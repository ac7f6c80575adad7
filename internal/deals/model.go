package deals

import "time"

// Deal is a time-limited price cut on one item. It snapshots the
// vendor's location at creation so nearby listing stays one query.
type Deal struct {
	ID            string     `json:"dealId"`
	VendorID      string     `json:"vendorId"`
	ItemName      string     `json:"itemName"`
	OriginalPrice *float64   `json:"originalPrice,omitempty"`
	DealPrice     float64    `json:"dealPrice"`
	ExpiresAt     time.Time  `json:"expiresAt"`
	IsActive      bool       `json:"isActive"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// NearbyDeal is one row of the public nearby-deals feed.
type NearbyDeal struct {
	DealID         string    `json:"dealId"`
	VendorID       string    `json:"vendorId"`
	VendorName     string    `json:"vendorName"`
	ItemName       string    `json:"itemName"`
	OriginalPrice  *float64  `json:"originalPrice,omitempty"`
	DealPrice      float64   `json:"dealPrice"`
	ExpiresAt      time.Time `json:"expiresAt"`
	DistanceMeters int       `json:"distance_m"`
}
