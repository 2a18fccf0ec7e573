package service

import (
	"context"
	"strings"

	"reviewpulse/internal/apperr"
	"reviewpulse/internal/geo"
	"reviewpulse/internal/models"

	"go.uber.org/zap"
)

// Geocoder resolves a free-form place name to its first match.
type Geocoder interface {
	Search(ctx context.Context, query string) (*geo.Place, error)
}

// POIFinder lists restaurant nodes inside a bounding box.
type POIFinder interface {
	RestaurantsInBox(ctx context.Context, box geo.BoundingBox) ([]geo.Node, error)
}

// RestaurantService resolves a city to restaurants via the two external OSM
// APIs. It shares no state with the sentiment subsystem.
type RestaurantService struct {
	geocoder Geocoder
	finder   POIFinder
	logger   *zap.Logger
}

// NewRestaurantService builds the lookup service.
func NewRestaurantService(geocoder Geocoder, finder POIFinder, logger *zap.Logger) *RestaurantService {
	return &RestaurantService{
		geocoder: geocoder,
		finder:   finder,
		logger:   logger,
	}
}

// Search geocodes city and lists restaurants inside its bounding box. The
// empty-city check runs before any external call; every upstream failure
// surfaces once as an upstream error with no retry and no partial result.
func (s *RestaurantService) Search(ctx context.Context, city string) ([]models.Restaurant, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, apperr.Validation("City name is required")
	}

	place, err := s.geocoder.Search(ctx, city)
	if err != nil {
		s.logger.Error("Geocoding failed", zap.String("city", city), zap.Error(err))
		return nil, apperr.Upstream(err)
	}
	if place == nil {
		return nil, apperr.NotFound("City not found")
	}

	box, err := place.Box()
	if err != nil {
		return nil, apperr.Upstream(err)
	}

	nodes, err := s.finder.RestaurantsInBox(ctx, box)
	if err != nil {
		s.logger.Error("POI lookup failed", zap.String("city", city), zap.Error(err))
		return nil, apperr.Upstream(err)
	}

	restaurants := make([]models.Restaurant, 0, len(nodes))
	for _, node := range nodes {
		restaurants = append(restaurants, projectRestaurant(node, city))
	}

	s.logger.Info("Restaurant search completed",
		zap.String("city", city),
		zap.Int("results", len(restaurants)))
	return restaurants, nil
}

func projectRestaurant(node geo.Node, city string) models.Restaurant {
	name := node.Tags["name"]
	if name == "" {
		name = "Unnamed Restaurant"
	}

	street := node.Tags["addr:street"]
	houseNumber := node.Tags["addr:housenumber"]
	addrCity := node.Tags["addr:city"]
	if addrCity == "" {
		addrCity = city
	}
	address := strings.TrimSpace(strings.TrimSpace(street+" "+houseNumber) + ", " + addrCity)
	address = strings.TrimPrefix(address, ", ")

	return models.Restaurant{
		Name:    name,
		Address: address,
		Lat:     node.Lat,
		Lon:     node.Lon,
	}
}
