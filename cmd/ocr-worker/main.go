package main

import (
	"log"
	"os"
	"time"

	"infrastreet/internal/db"
	"infrastreet/internal/menu"
	"infrastreet/internal/ocr"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}

	log.Println("OCR Worker starting...")

	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	menuService := menu.NewService(menu.NewPostgresRepository(pgDB), nil)
	service := ocr.NewService(ocr.NewRepository(pgDB), menuService)

	log.Println("OCR Worker initialized and running...")
	log.Println("Processing menu uploads every 2 seconds. Press Ctrl+C to stop.")

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := service.ProcessOne(); err != nil {
			log.Printf("OCR error: %v", err)
		}
	}
}
