package icon

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// ADMIN: list custom icons
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	icons, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch icons"})
		return
	}
	c.JSON(http.StatusOK, icons)
}

// --------------------------------------------------
// ADMIN: add custom icon
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		URL  string `json:"url"`
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.URL == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url and name are required"})
		return
	}

	ic := &Icon{URL: req.URL, Name: req.Name}
	if err := h.repo.Insert(c.Request.Context(), ic); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save icon"})
		return
	}
	c.JSON(http.StatusCreated, ic)
}

// --------------------------------------------------
// ADMIN: remove custom icon
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
