package deals

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create deal (location copied from vendor row)
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, deal *Deal) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO deals (
			id,
			vendor_id,
			item_name,
			original_price,
			deal_price,
			expires_at,
			location,
			is_active
		)
		SELECT $1, $2, $3, $4, $5, $6, v.location, true
		FROM vendors v
		WHERE v.id = $2
		RETURNING created_at
	`,
		deal.ID,
		deal.VendorID,
		deal.ItemName,
		deal.OriginalPrice,
		deal.DealPrice,
		deal.ExpiresAt,
	).Scan(&deal.CreatedAt)
}

// --------------------------------------------------
// Nearby active deals
// --------------------------------------------------
func (r *PostgresRepository) ListNearby(
	ctx context.Context,
	lat float64,
	lng float64,
	limit int,
) ([]NearbyDeal, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			d.id,
			d.vendor_id,
			COALESCE(v.name, ''),
			d.item_name,
			d.original_price,
			d.deal_price,
			d.expires_at,
			COALESCE(ST_Distance(
				d.location,
				ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
			), 0)
		FROM deals d
		LEFT JOIN vendors v ON v.id = d.vendor_id
		WHERE d.is_active = true
		  AND d.expires_at > now()
		ORDER BY d.location <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT $3
	`, lat, lng, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []NearbyDeal

	for rows.Next() {
		var d NearbyDeal
		var distance float64
		if err := rows.Scan(
			&d.DealID,
			&d.VendorID,
			&d.VendorName,
			&d.ItemName,
			&d.OriginalPrice,
			&d.DealPrice,
			&d.ExpiresAt,
			&distance,
		); err != nil {
			return nil, err
		}
		d.DistanceMeters = int(distance)
		result = append(result, d)
	}

	return result, rows.Err()
}
