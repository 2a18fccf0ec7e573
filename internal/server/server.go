package server

import (
	"net/http"

	"reviewpulse/internal/config"
	"reviewpulse/internal/geo"
	"reviewpulse/internal/handler"
	"reviewpulse/internal/repository"
	"reviewpulse/internal/sentiment"
	"reviewpulse/internal/service"
	"reviewpulse/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Server wires the model, store and services into a gin router.
type Server struct {
	router *gin.Engine
	logger *zap.Logger
}

// NewServer builds the full request-handling stack around the loaded model
// and the open database handle.
func NewServer(db *sqlx.DB, model *sentiment.Model, cfg *config.Config, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(corsMiddleware())

	reviewRepo := repository.NewReviewRepository(db, logger)
	gate := validator.New(model, cfg.Validator.MinConfidence, logger)
	reviewService := service.NewReviewService(model, gate, reviewRepo, logger)

	nominatim := geo.NewNominatimClient(cfg.Geo.NominatimURL, logger)
	overpass := geo.NewOverpassClient(cfg.Geo.OverpassURL, logger)
	restaurantService := service.NewRestaurantService(nominatim, overpass, logger)

	apiHandler := handler.NewHandler(reviewService, restaurantService, logger)
	apiHandler.RegisterRoutes(router)

	return &Server{router: router, logger: logger}
}

// Handler exposes the assembled router to the hosting http.Server and to
// tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
