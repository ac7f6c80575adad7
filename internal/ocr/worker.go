package ocr

import (
	"log"
	"time"
)

// StartWorker polls for pending menu uploads until the process exits.
func StartWorker(service *Service, interval time.Duration) {
	go func() {
		log.Println("OCR worker started")

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			if err := service.ProcessOne(); err != nil {
				log.Printf("OCR worker error: %v", err)
			}
		}
	}()
}
