package menu

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
// Insert one item
// --------------------------------------------------
func (r *PostgresRepository) InsertItem(
	ctx context.Context,
	item *MenuItem,
) error {

	return r.db.QueryRow(ctx, `
		INSERT INTO menu_items (
			id,
			vendor_id,
			name,
			description,
			price,
			is_available
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`,
		item.ID,
		item.VendorID,
		item.Name,
		item.Description,
		item.Price,
		item.IsAvailable,
	).Scan(&item.CreatedAt)
}

// --------------------------------------------------
// Bulk insert extractor output (ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) InsertItems(
	ctx context.Context,
	vendorID string,
	candidates []ItemCandidate,
) ([]MenuItem, error) {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	inserted := make([]MenuItem, 0, len(candidates))

	for _, cand := range candidates {
		item := MenuItem{
			ID:          cand.ID,
			VendorID:    vendorID,
			Name:        cand.Name,
			Description: cand.Description,
			Price:       cand.Price,
			IsAvailable: true,
		}

		if err := tx.QueryRow(ctx, `
			INSERT INTO menu_items (
				id,
				vendor_id,
				name,
				description,
				price,
				is_available
			)
			VALUES ($1, $2, $3, $4, $5, true)
			RETURNING created_at
		`,
			item.ID,
			item.VendorID,
			item.Name,
			item.Description,
			item.Price,
		).Scan(&item.CreatedAt); err != nil {
			return nil, err
		}

		inserted = append(inserted, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return inserted, nil
}

// --------------------------------------------------
// List vendor menu
// --------------------------------------------------
func (r *PostgresRepository) ListByVendor(
	ctx context.Context,
	vendorID string,
) ([]MenuItem, error) {

	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			vendor_id,
			name,
			COALESCE(description, ''),
			price,
			is_available,
			created_at
		FROM menu_items
		WHERE vendor_id = $1
		ORDER BY name
	`, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuItem

	for rows.Next() {
		var it MenuItem
		if err := rows.Scan(
			&it.ID,
			&it.VendorID,
			&it.Name,
			&it.Description,
			&it.Price,
			&it.IsAvailable,
			&it.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// --------------------------------------------------
// Upload intake
// --------------------------------------------------
func (r *PostgresRepository) CreateUpload(
	ctx context.Context,
	vendorID string,
	objectURL string,
) (int, error) {

	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO menu_uploads (vendor_id, object_url, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`, vendorID, objectURL, StatusUploaded).Scan(&id)

	return id, err
}

func (r *PostgresRepository) GetUpload(
	ctx context.Context,
	uploadID int,
) (*MenuUpload, error) {

	var up MenuUpload
	err := r.db.QueryRow(ctx, `
		SELECT
			id,
			vendor_id,
			object_url,
			status,
			ocr_error,
			item_count,
			created_at,
			updated_at
		FROM menu_uploads
		WHERE id = $1
	`, uploadID).Scan(
		&up.ID,
		&up.VendorID,
		&up.ObjectURL,
		&up.Status,
		&up.Error,
		&up.ItemCount,
		&up.CreatedAt,
		&up.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &up, nil
}
