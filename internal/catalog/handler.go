package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielfrrokaj/datarifish-menu/internal/category"
	"github.com/danielfrrokaj/datarifish-menu/internal/i18n"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Display language comes from ?lang= and falls back to X-Language, so a
// language switch is just the next request with a different value.
func requestLanguage(c *gin.Context) i18n.Language {
	code := c.Query("lang")
	if code == "" {
		code = c.GetHeader("X-Language")
	}
	return i18n.ParseOrDefault(code)
}

// --------------------------------------------------
// PUBLIC: category list
// --------------------------------------------------
func (h *Handler) Categories(c *gin.Context) {
	views, err := h.service.Categories(c.Request.Context(), requestLanguage(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, views)
}

// --------------------------------------------------
// PUBLIC: items of one category (optionally searched)
// --------------------------------------------------
func (h *Handler) Items(c *gin.Context) {
	views, err := h.service.Items(
		c.Request.Context(),
		c.Param("id"),
		requestLanguage(c),
		Filter{Search: c.Query("search")},
	)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menu items"})
		return
	}
	c.JSON(http.StatusOK, views)
}
