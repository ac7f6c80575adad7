package main

import (
	"context"
	"log"
	"os"
	"time"

	"infrastreet/internal/db"
	"infrastreet/internal/deals"
	"infrastreet/internal/menu"
	"infrastreet/internal/ocr"
	"infrastreet/internal/router"
	"infrastreet/internal/search"
	"infrastreet/internal/storage"
	"infrastreet/internal/vendor"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("R2 init failed:", err)
	}

	// ───────────────────────── REPOS ─────────────────────────
	vendorRepo := vendor.NewPostgresRepository(pgDB)
	menuRepo := menu.NewPostgresRepository(pgDB)
	dealRepo := deals.NewPostgresRepository(pgDB)
	searchStore := search.NewPostgresStore(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	menuService := menu.NewService(menuRepo, r2Client)
	vendorService := vendor.NewService(vendorRepo, menuService)
	dealService := deals.NewService(dealRepo)
	searchService := search.NewService(searchStore)

	// ───────────────────────── HANDLERS ─────────────────────────
	vendorHandler := vendor.NewHandler(vendorService)
	menuHandler := menu.NewHandler(menuService)
	dealHandler := deals.NewHandler(dealService)
	searchHandler := search.NewHandler(searchService)

	r := router.NewRouter(vendorHandler, searchHandler, menuHandler, dealHandler)

	// ───────────────────────── OCR WORKER ─────────────────────────
	// Runs in-process too, so a single binary works for small
	// deployments; cmd/ocr-worker scales it out separately.
	ocrService := ocr.NewService(ocr.NewRepository(pgDB), menuService)
	ocr.StartWorker(ocrService, 2*time.Second)

	// ───────────────────────── START ─────────────────────────
	log.Println("API running at http://localhost:8000")
	if err := r.Run(":8000"); err != nil {
		log.Fatal(err)
	}
}
