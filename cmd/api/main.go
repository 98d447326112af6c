package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/danielfrrokaj/datarifish-menu/internal/auth"
	"github.com/danielfrrokaj/datarifish-menu/internal/catalog"
	"github.com/danielfrrokaj/datarifish-menu/internal/category"
	"github.com/danielfrrokaj/datarifish-menu/internal/db"
	"github.com/danielfrrokaj/datarifish-menu/internal/icon"
	"github.com/danielfrrokaj/datarifish-menu/internal/localstore"
	"github.com/danielfrrokaj/datarifish-menu/internal/menu"
	"github.com/danielfrrokaj/datarifish-menu/internal/rating"
	"github.com/danielfrrokaj/datarifish-menu/internal/router"
	"github.com/danielfrrokaj/datarifish-menu/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	fileStore := os.Getenv("MENU_STORE") == "file"

	required := []string{"JWT_SECRET"}
	if fileStore {
		required = append(required, "MENU_DATA_FILE")
	} else {
		required = append(required, "DATABASE_URL")
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── CONTENT STORE ─────────────────────────
	var (
		categoryRepo category.Repository
		itemRepo     menu.Repository
		ratingRepo   rating.Repository
		iconRepo     icon.Repository
		userRepo     auth.UserRepository
	)

	if fileStore {
		// Static variant: the whole menu in one JSON document.
		store, err := localstore.Open(os.Getenv("MENU_DATA_FILE"))
		if err != nil {
			log.Fatal("Failed to open menu data file:", err)
		}
		store.Subscribe(func() {
			log.Println("menu data changed")
		})
		categoryRepo = store.Categories()
		itemRepo = store.Items()
		iconRepo = store.Icons()
		ratingRepo = rating.NewInMemoryRepository()
		userRepo = auth.NewInMemoryUserRepository()
	} else {
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()

		categoryRepo = category.NewPostgresRepository(pgDB)
		itemRepo = menu.NewPostgresRepository(pgDB)
		ratingRepo = rating.NewPostgresRepository(pgDB)
		iconRepo = icon.NewPostgresRepository(pgDB)
		userRepo = auth.NewPostgresUserRepository(pgDB)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	sessions := auth.NewSessionRegistry()
	authService := auth.NewService(userRepo, sessions)

	categoryService := category.NewService(categoryRepo)
	itemService := menu.NewService(itemRepo, categoryRepo)
	catalogService := catalog.NewService(categoryRepo, itemRepo)
	ratingService := rating.NewService(ratingRepo)

	// ───────────────────────── IMAGE UPLOADS (optional) ─────────────────────────
	var imageHandler *storage.Handler
	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("R2 init failed:", err)
		}
		imageHandler = storage.NewHandler(r2Client)
	} else {
		log.Println("R2 not configured, image upload endpoint disabled")
	}

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Deps{
		Sessions:   sessions,
		Auth:       auth.NewHandler(authService),
		Catalog:    catalog.NewHandler(catalogService),
		Categories: category.NewHandler(categoryService),
		Items:      menu.NewHandler(itemService),
		Ratings:    rating.NewHandler(ratingService),
		Icons:      icon.NewHandler(iconRepo),
		Images:     imageHandler,
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("API running at http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
