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

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// ADMIN USERS (login + lockout state)
	// -------------------------------
	adminUsersSQL := `
		CREATE TABLE IF NOT EXISTS admin_users (
			id UUID PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'ADMIN',
			failed_attempts INT NOT NULL DEFAULT 0,
			lockout_until TIMESTAMPTZ NULL,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, adminUsersSQL); err != nil {
		return err
	}

	// -------------------------------
	// CATEGORIES + TRANSLATIONS
	// -------------------------------
	categoriesSQL := `
		CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY,
			image_url VARCHAR(500) NULL,
			order_index INT NULL,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, categoriesSQL); err != nil {
		return err
	}

	categoryTranslationsSQL := `
		CREATE TABLE IF NOT EXISTS category_translations (
			id SERIAL PRIMARY KEY,
			category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			language VARCHAR(5) NOT NULL,
			name VARCHAR(255) NOT NULL,
			UNIQUE (category_id, language)
		)
	`
	if _, err := db.Exec(ctx, categoryTranslationsSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS + TRANSLATIONS
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			category_id UUID NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			price INT NULL,
			image_url VARCHAR(500) NULL,
			availability BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	menuItemTranslationsSQL := `
		CREATE TABLE IF NOT EXISTS menu_item_translations (
			id SERIAL PRIMARY KEY,
			menu_item_id UUID NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
			language VARCHAR(5) NOT NULL,
			name VARCHAR(255) NOT NULL,
			description TEXT NULL,
			UNIQUE (menu_item_id, language)
		)
	`
	if _, err := db.Exec(ctx, menuItemTranslationsSQL); err != nil {
		return err
	}

	// -------------------------------
	// SERVICE RATINGS (append-only)
	// -------------------------------
	serviceRatingsSQL := `
		CREATE TABLE IF NOT EXISTS service_ratings (
			id UUID PRIMARY KEY,
			waiter_rating INT NOT NULL CHECK (waiter_rating BETWEEN 1 AND 5),
			food_rating INT NOT NULL CHECK (food_rating BETWEEN 1 AND 5),
			comments TEXT NULL,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, serviceRatingsSQL); err != nil {
		return err
	}

	// -------------------------------
	// CUSTOM ICONS
	// -------------------------------
	customIconsSQL := `
		CREATE TABLE IF NOT EXISTS custom_icons (
			id UUID PRIMARY KEY,
			url VARCHAR(500) NOT NULL,
			name VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, customIconsSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
