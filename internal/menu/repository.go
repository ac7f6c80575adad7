package menu

import "context"

// Repository defines all database operations for menu data
type Repository interface {

	// -------------------------------
	// Items
	// -------------------------------

	// Insert a single, manually added item
	InsertItem(ctx context.Context, item *MenuItem) error

	// Bulk-insert extractor output for one vendor
	InsertItems(
		ctx context.Context,
		vendorID string,
		candidates []ItemCandidate,
	) ([]MenuItem, error)

	// Full menu of one vendor, ordered by item name
	ListByVendor(ctx context.Context, vendorID string) ([]MenuItem, error)

	// -------------------------------
	// Uploads (OCR pipeline intake)
	// -------------------------------

	CreateUpload(
		ctx context.Context,
		vendorID string,
		objectURL string,
	) (int, error)

	GetUpload(ctx context.Context, uploadID int) (*MenuUpload, error)
}
