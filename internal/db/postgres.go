package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema. Geography
// columns need the PostGIS extension; nearby queries lean on the
// GIST indexes for KNN ordering.
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	if _, err := db.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS postgis`); err != nil {
		return err
	}

	// -------------------------------
	// VENDORS
	// -------------------------------
	vendorsSQL := `
		CREATE TABLE IF NOT EXISTS vendors (
			id VARCHAR(32) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			phone VARCHAR(32),
			business_hours VARCHAR(255),
			location GEOGRAPHY(POINT, 4326),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, vendorsSQL); err != nil {
		return err
	}

	if _, err := db.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS idx_vendors_location
		ON vendors USING GIST (location)
	`); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id VARCHAR(32) PRIMARY KEY,
			vendor_id VARCHAR(32) NOT NULL REFERENCES vendors(id) ON DELETE CASCADE,
			name VARCHAR(255) NOT NULL,
			description TEXT,
			price NUMERIC(10, 2) NOT NULL DEFAULT 0,
			is_available BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	if _, err := db.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS idx_menu_items_vendor
		ON menu_items (vendor_id)
	`); err != nil {
		return err
	}

	// -------------------------------
	// MENU UPLOADS (OCR pipeline)
	// -------------------------------
	menuUploadsSQL := `
		CREATE TABLE IF NOT EXISTS menu_uploads (
			id SERIAL PRIMARY KEY,
			vendor_id VARCHAR(32) NOT NULL REFERENCES vendors(id) ON DELETE CASCADE,
			object_url VARCHAR(500) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'MENU_UPLOADED',
			ocr_error TEXT NULL,
			item_count INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, menuUploadsSQL); err != nil {
		return err
	}

	// -------------------------------
	// DEALS
	// -------------------------------
	dealsSQL := `
		CREATE TABLE IF NOT EXISTS deals (
			id VARCHAR(32) PRIMARY KEY,
			vendor_id VARCHAR(32) NOT NULL REFERENCES vendors(id) ON DELETE CASCADE,
			item_name VARCHAR(255) NOT NULL,
			original_price NUMERIC(10, 2),
			deal_price NUMERIC(10, 2) NOT NULL,
			expires_at TIMESTAMP NOT NULL,
			location GEOGRAPHY(POINT, 4326),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, dealsSQL); err != nil {
		return err
	}

	if _, err := db.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS idx_deals_location
		ON deals USING GIST (location)
	`); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
