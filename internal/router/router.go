package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/danielfrrokaj/datarifish-menu/internal/auth"
	"github.com/danielfrrokaj/datarifish-menu/internal/catalog"
	"github.com/danielfrrokaj/datarifish-menu/internal/category"
	"github.com/danielfrrokaj/datarifish-menu/internal/icon"
	"github.com/danielfrrokaj/datarifish-menu/internal/menu"
	"github.com/danielfrrokaj/datarifish-menu/internal/middleware"
	"github.com/danielfrrokaj/datarifish-menu/internal/rating"
	"github.com/danielfrrokaj/datarifish-menu/internal/storage"
)

// Deps are the wired handlers the router mounts. Images is nil when the
// R2 upload endpoint is not configured.
type Deps struct {
	Sessions   *auth.SessionRegistry
	Auth       *auth.Handler
	Catalog    *catalog.Handler
	Categories *category.Handler
	Items      *menu.Handler
	Ratings    *rating.Handler
	Icons      *icon.Handler
	Images     *storage.Handler
}

func New(d Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Language"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── PUBLIC MENU ─────────────────────────
	public := r.Group("/menu")
	{
		public.GET("/categories", d.Catalog.Categories)
		public.GET("/categories/:id/items", d.Catalog.Items)
	}

	r.POST("/ratings", d.Ratings.Submit)

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", d.Auth.Register)
		authGroup.POST("/login", d.Auth.Login)
		authGroup.POST("/logout",
			middleware.AuthMiddleware(d.Sessions),
			d.Auth.Logout,
		)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(d.Sessions),
		middleware.RequireRole(middleware.RoleAdmin),
	)
	{
		// Categories
		admin.GET("/categories", d.Categories.List)
		admin.POST("/categories", d.Categories.Create)
		admin.PUT("/categories/:id", d.Categories.Update)
		admin.DELETE("/categories/:id", d.Categories.Delete)
		admin.POST("/categories/:id/move", d.Categories.Move)

		// Menu items
		admin.GET("/items", d.Items.List)
		admin.POST("/items", d.Items.Create)
		admin.PUT("/items/:id", d.Items.Update)
		admin.DELETE("/items/:id", d.Items.Delete)
		admin.POST("/items/:id/availability", d.Items.ToggleAvailability)

		// Ratings (read-only)
		admin.GET("/ratings", d.Ratings.List)

		// Custom icons
		admin.GET("/icons", d.Icons.List)
		admin.POST("/icons", d.Icons.Create)
		admin.DELETE("/icons/:id", d.Icons.Delete)

		// Image uploads
		if d.Images != nil {
			admin.POST("/images", d.Images.UploadImage)
		}
	}

	return r
}
