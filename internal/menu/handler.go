package menu

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielfrrokaj/datarifish-menu/internal/i18n"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type translationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type itemRequest struct {
	CategoryID   string                        `json:"category_id"`
	Price        *int                          `json:"price"`
	ImageURL     *string                       `json:"image_url"`
	Availability *bool                         `json:"availability"`
	Translations map[string]translationRequest `json:"translations"`
}

func (req itemRequest) input() (Input, error) {
	in := Input{
		CategoryID:   req.CategoryID,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		Available:    req.Availability,
		Translations: make(map[i18n.Language]TranslationInput, len(req.Translations)),
	}
	for code, t := range req.Translations {
		lang, ok := i18n.Parse(code)
		if !ok {
			return Input{}, errors.New("unsupported language: " + code)
		}
		in.Translations[lang] = TranslationInput{Name: t.Name, Description: t.Description}
	}
	return in, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNoTranslations),
		errors.Is(err, ErrPriceOutOfRange),
		errors.Is(err, ErrCategoryRequired),
		errors.Is(err, ErrCategoryMissing):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// --------------------------------------------------
// ADMIN: list all items (with all translations)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// --------------------------------------------------
// ADMIN: create item
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	in, err := req.input()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// --------------------------------------------------
// ADMIN: update item
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	in, err := req.input()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// --------------------------------------------------
// ADMIN: delete item
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --------------------------------------------------
// ADMIN: toggle availability
// --------------------------------------------------
func (h *Handler) ToggleAvailability(c *gin.Context) {
	available, err := h.service.ToggleAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": available})
}
