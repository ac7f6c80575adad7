package ocr

import (
	"context"

	"infrastreet/internal/menu"

	"github.com/jackc/pgx/v5/pgxpool"
)

// JobStore is the slice of upload state the worker needs.
type JobStore interface {
	FetchPending() (id int, vendorID string, url string, err error)
	UpdateStatus(id int, status string, errMsg *string) error
	Complete(id int, status string, itemCount int) error
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// FetchPending retrieves and CLAIMS the next menu upload pending OCR.
// Returns (0, "", "", nil) when no jobs are available (NOT an error).
func (r *Repository) FetchPending() (int, string, string, error) {
	ctx := context.Background()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, "", "", err
	}
	defer tx.Rollback(ctx)

	var id int
	var vendorID, url string

	err = tx.QueryRow(ctx, `
		SELECT id, vendor_id, object_url
		FROM menu_uploads
		WHERE status = $1
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`, menu.StatusUploaded).Scan(&id, &vendorID, &url)

	// No pending jobs is NOT an error
	if err != nil {
		return 0, "", "", nil
	}

	// Mark as processing immediately (atomic claim)
	_, err = tx.Exec(ctx, `
		UPDATE menu_uploads
		SET status = $1, updated_at = now()
		WHERE id = $2
	`, menu.StatusProcessing, id)
	if err != nil {
		return 0, "", "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, "", "", err
	}

	return id, vendorID, url, nil
}

func (r *Repository) UpdateStatus(id int, status string, errMsg *string) error {
	_, err := r.db.Exec(context.Background(), `
		UPDATE menu_uploads
		SET status = $1,
		    ocr_error = $2,
		    updated_at = now()
		WHERE id = $3
	`, status, errMsg, id)

	return err
}

func (r *Repository) Complete(id int, status string, itemCount int) error {
	_, err := r.db.Exec(context.Background(), `
		UPDATE menu_uploads
		SET status = $1,
		    item_count = $2,
		    ocr_error = NULL,
		    updated_at = now()
		WHERE id = $3
	`, status, itemCount, id)

	return err
}
