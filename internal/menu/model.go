package menu

import "time"

// MenuItem belongs to exactly one vendor. Price 0 means "unpriced",
// which is allowed for manually added items but never produced by the
// extractor.
type MenuItem struct {
	ID          string    `json:"itemId"`
	VendorID    string    `json:"vendorId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// ItemCandidate is one {name, price} record the extractor pulled out
// of raw OCR text, not yet persisted.
type ItemCandidate struct {
	ID          string  `json:"itemId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// MenuUpload tracks one uploaded menu image through the OCR pipeline.
type MenuUpload struct {
	ID        int       `json:"id"`
	VendorID  string    `json:"vendorId"`
	ObjectURL string    `json:"objectUrl"`
	Status    string    `json:"status"`
	Error     *string   `json:"error,omitempty"`
	ItemCount int       `json:"itemCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Upload statuses, in pipeline order.
const (
	StatusUploaded   = "MENU_UPLOADED"
	StatusProcessing = "OCR_PROCESSING"
	StatusDone       = "OCR_DONE"
	StatusEmpty      = "OCR_EMPTY"
	StatusFailed     = "OCR_FAILED"
)
