package handler

import (
	"errors"
	"net/http"

	"reviewpulse/internal/apperr"
	"reviewpulse/internal/models"
	"reviewpulse/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes the HTTP API over the review and restaurant services.
type Handler struct {
	reviews     *service.ReviewService
	restaurants *service.RestaurantService
	logger      *zap.Logger
}

// NewHandler creates a new API handler.
func NewHandler(reviews *service.ReviewService, restaurants *service.RestaurantService, logger *zap.Logger) *Handler {
	return &Handler{
		reviews:     reviews,
		restaurants: restaurants,
		logger:      logger,
	}
}

// RegisterRoutes registers all API routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/predict", h.Predict)
	r.GET("/history", h.History)
	r.GET("/all-sentiments", h.AllSentiments)
	r.GET("/search-restaurants", h.SearchRestaurants)
	r.GET("/health", h.HealthCheck)
}

// Predict handles POST /predict.
func (h *Handler) Predict(c *gin.Context) {
	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Review cannot be empty"})
		return
	}

	resp, err := h.reviews.Classify(req.Review)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// History handles GET /history.
func (h *Handler) History(c *gin.Context) {
	reviews, err := h.reviews.History()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// AllSentiments handles GET /all-sentiments.
func (h *Handler) AllSentiments(c *gin.Context) {
	counts, err := h.reviews.SentimentCounts()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// SearchRestaurants handles GET /search-restaurants?city=<name>.
func (h *Handler) SearchRestaurants(c *gin.Context) {
	restaurants, err := h.restaurants.Search(c.Request.Context(), c.Query("city"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps the error taxonomy onto HTTP statuses. Anything without a
// taxonomy code is an internal failure whose detail stays out of the response.
func (h *Handler) respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case apperr.CodeValidation:
			c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
		case apperr.CodeNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": appErr.Message})
		case apperr.CodeUpstream:
			c.JSON(http.StatusInternalServerError, gin.H{"error": appErr.Message})
		}
		return
	}

	h.logger.Error("Request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
