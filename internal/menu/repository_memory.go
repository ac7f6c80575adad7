package menu

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// InMemoryRepository is used by tests and local development.
type InMemoryRepository struct {
	mu      sync.Mutex
	items   map[string][]MenuItem
	uploads map[int]*MenuUpload
	nextID  int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items:   make(map[string][]MenuItem),
		uploads: make(map[int]*MenuUpload),
		nextID:  1,
	}
}

func (r *InMemoryRepository) InsertItem(
	ctx context.Context,
	item *MenuItem,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.CreatedAt = time.Now()
	r.items[item.VendorID] = append(r.items[item.VendorID], *item)
	return nil
}

func (r *InMemoryRepository) InsertItems(
	ctx context.Context,
	vendorID string,
	candidates []ItemCandidate,
) ([]MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inserted := make([]MenuItem, 0, len(candidates))
	for _, cand := range candidates {
		item := MenuItem{
			ID:          cand.ID,
			VendorID:    vendorID,
			Name:        cand.Name,
			Description: cand.Description,
			Price:       cand.Price,
			IsAvailable: true,
			CreatedAt:   time.Now(),
		}
		r.items[vendorID] = append(r.items[vendorID], item)
		inserted = append(inserted, item)
	}
	return inserted, nil
}

func (r *InMemoryRepository) ListByVendor(
	ctx context.Context,
	vendorID string,
) ([]MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]MenuItem, len(r.items[vendorID]))
	copy(items, r.items[vendorID])

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (r *InMemoryRepository) CreateUpload(
	ctx context.Context,
	vendorID string,
	objectURL string,
) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	now := time.Now()

	r.uploads[id] = &MenuUpload{
		ID:        id,
		VendorID:  vendorID,
		ObjectURL: objectURL,
		Status:    StatusUploaded,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

func (r *InMemoryRepository) GetUpload(
	ctx context.Context,
	uploadID int,
) (*MenuUpload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	up, ok := r.uploads[uploadID]
	if !ok {
		return nil, errors.New("upload not found")
	}

	cp := *up
	return &cp, nil
}
