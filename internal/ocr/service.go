package ocr

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"os"

	"infrastreet/internal/menu"
)

// ItemInserter persists extracted candidates as real menu rows.
// Implemented by the menu service.
type ItemInserter interface {
	InsertExtracted(
		ctx context.Context,
		vendorID string,
		candidates []menu.ItemCandidate,
	) ([]menu.MenuItem, error)
}

type Service struct {
	repo     JobStore
	inserter ItemInserter

	// swappable in tests; production uses the tesseract binary
	extractText func(filePath string) (string, error)
}

func NewService(repo JobStore, inserter ItemInserter) *Service {
	return &Service{
		repo:        repo,
		inserter:    inserter,
		extractText: ExtractText,
	}
}

// ProcessOne picks ONE pending menu upload and processes it safely.
// Job-level failures are recorded on the upload row and never bubble
// up, so a bad image cannot stall the worker loop.
func (s *Service) ProcessOne() error {
	id, vendorID, url, err := s.repo.FetchPending()
	if err != nil || id == 0 {
		// No pending jobs is NOT an error
		return nil
	}

	resp, err := http.Get(url)
	if err != nil {
		return s.fail(id, err.Error())
	}
	defer resp.Body.Close()

	log.Printf("OCR_FETCHED id=%d content-type=%s", id, resp.Header.Get("Content-Type"))

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return s.fail(id, err.Error())
	}

	if bytes.HasPrefix(bodyBytes, []byte("%PDF")) {
		log.Printf("OCR_SKIPPED (PDF) id=%d url=%s", id, url)
		return s.fail(id, "PDF menus are not supported, upload a photo")
	}

	tmpFile, err := os.CreateTemp("", "menu-*.img")
	if err != nil {
		return s.fail(id, err.Error())
	}
	defer os.Remove(tmpFile.Name())

	written, err := io.Copy(tmpFile, bytes.NewReader(bodyBytes))
	if err != nil || written == 0 {
		_ = tmpFile.Close()
		return s.fail(id, "failed to write temp image")
	}
	_ = tmpFile.Close()

	log.Printf("OCR_PROCESSING id=%d file=%s bytes=%d", id, tmpFile.Name(), written)

	text, err := s.extractText(tmpFile.Name())
	if err != nil {
		return s.fail(id, err.Error())
	}

	items := menu.ExtractItems(text)

	// Zero valid items from non-empty text is low confidence, not a
	// failure; the vendor falls back to manual entry.
	if len(items) == 0 {
		log.Printf("OCR_EMPTY id=%d text_length=%d", id, len(text))
		return s.repo.Complete(id, menu.StatusEmpty, 0)
	}

	if _, err := s.inserter.InsertExtracted(
		context.Background(),
		vendorID,
		items,
	); err != nil {
		return s.fail(id, err.Error())
	}

	log.Printf("OCR_DONE id=%d items=%d", id, len(items))

	return s.repo.Complete(id, menu.StatusDone, len(items))
}

func (s *Service) fail(id int, msg string) error {
	_ = s.repo.UpdateStatus(id, menu.StatusFailed, &msg)
	return nil // do NOT block worker
}
