package menu

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotUploadOwner = errors.New("upload belongs to another vendor")
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

// --------------------------------------------------
// Manual item add
// --------------------------------------------------
// Price 0 is allowed here: the item shows up on the vendor page as
// unpriced. Only the extractor enforces a positive price.
func (s *Service) AddItem(
	ctx context.Context,
	vendorID string,
	name string,
	description string,
	price float64,
) (*MenuItem, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("item name is required")
	}
	if price < 0 {
		return nil, errors.New("price must not be negative")
	}

	item := &MenuItem{
		ID:          newItemID(),
		VendorID:    vendorID,
		Name:        name,
		Description: strings.TrimSpace(description),
		Price:       price,
		IsAvailable: true,
	}

	if err := s.repo.InsertItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// --------------------------------------------------
// Menu image upload
// --------------------------------------------------
func (s *Service) UploadMenuImage(
	ctx context.Context,
	vendorID string,
	file multipart.File,
	filename string,
) (int, string, error) {

	if err := ValidateImageExtension(filename); err != nil {
		return 0, "", err
	}

	key := fmt.Sprintf(
		"menus/%s/%s%s",
		vendorID,
		uuid.New().String(),
		strings.ToLower(filepath.Ext(filename)),
	)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return 0, "", err
	}

	uploadID, err := s.repo.CreateUpload(ctx, vendorID, url)
	if err != nil {
		return 0, "", err
	}

	return uploadID, key, nil
}

// --------------------------------------------------
// Upload status (FOR FRONTEND POLLING)
// --------------------------------------------------
func (s *Service) UploadStatus(
	ctx context.Context,
	vendorID string,
	uploadID int,
) (*MenuUpload, error) {

	up, err := s.repo.GetUpload(ctx, uploadID)
	if err != nil {
		return nil, err
	}
	if up.VendorID != vendorID {
		return nil, ErrNotUploadOwner
	}

	return up, nil
}

// --------------------------------------------------
// Extractor output → menu rows
// --------------------------------------------------
// Called by the OCR worker once raw text is available.
func (s *Service) InsertExtracted(
	ctx context.Context,
	vendorID string,
	candidates []ItemCandidate,
) ([]MenuItem, error) {

	if len(candidates) == 0 {
		return nil, nil
	}
	return s.repo.InsertItems(ctx, vendorID, candidates)
}

func (s *Service) ListByVendor(
	ctx context.Context,
	vendorID string,
) ([]MenuItem, error) {
	return s.repo.ListByVendor(ctx, vendorID)
}
