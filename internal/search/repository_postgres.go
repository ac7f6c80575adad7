package search

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// --------------------------------------------------
// Candidate fetch (PostGIS KNN)
// --------------------------------------------------
// Vendors without a location never qualify as candidates.
func (s *PostgresStore) FetchCandidates(
	ctx context.Context,
	lat float64,
	lng float64,
	ceiling int,
) ([]Candidate, error) {

	rows, err := s.db.Query(ctx, `
		SELECT
			id,
			name,
			COALESCE(phone, ''),
			COALESCE(business_hours, ''),
			ST_Y(location::geometry),
			ST_X(location::geometry),
			ST_Distance(
				location,
				ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
			)
		FROM vendors
		WHERE location IS NOT NULL
		ORDER BY location <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT $3
	`, lat, lng, ceiling)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []Candidate

	for rows.Next() {
		var c Candidate
		if err := rows.Scan(
			&c.VendorID,
			&c.Name,
			&c.Phone,
			&c.BusinessHours,
			&c.Lat,
			&c.Lng,
			&c.DistanceMeters,
		); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}

// --------------------------------------------------
// Menu items for one candidate
// --------------------------------------------------
func (s *PostgresStore) MenuItems(
	ctx context.Context,
	vendorID string,
) ([]Item, error) {

	rows, err := s.db.Query(ctx, `
		SELECT id, name, price
		FROM menu_items
		WHERE vendor_id = $1
		  AND is_available = true
		ORDER BY name
	`, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item

	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}
