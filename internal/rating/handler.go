package rating

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// PUBLIC: submit feedback
// --------------------------------------------------
func (h *Handler) Submit(c *gin.Context) {
	var req struct {
		WaiterRating int    `json:"waiter_rating"`
		FoodRating   int    `json:"food_rating"`
		Comments     string `json:"comments"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rating, err := h.service.Submit(c.Request.Context(), req.WaiterRating, req.FoodRating, req.Comments)
	if err != nil {
		if errors.Is(err, ErrRatingOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save rating"})
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// --------------------------------------------------
// ADMIN: list feedback, newest first
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	ratings, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch ratings"})
		return
	}
	c.JSON(http.StatusOK, ratings)
}
