// Package service holds the business logic composing the model, validator,
// store and external lookups. HTTP concerns stay in the handler layer.
package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"reviewpulse/internal/apperr"
	"reviewpulse/internal/models"
	"reviewpulse/internal/repository"
	"reviewpulse/internal/validator"

	"go.uber.org/zap"
)

// SentimentModel is the slice of the trained model the service consumes.
type SentimentModel interface {
	Predict(text string) (label string, probs []float64)
}

// ReviewService classifies submitted reviews and serves the stored history.
type ReviewService struct {
	model     SentimentModel
	validator *validator.Validator
	repo      repository.ReviewRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewReviewService wires the sentiment subsystem together. The model is
// read-only shared state; the repository owns all review records.
func NewReviewService(
	model SentimentModel,
	v *validator.Validator,
	repo repository.ReviewRepository,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		model:     model,
		validator: v,
		repo:      repo,
		logger:    logger,
		now:       time.Now,
	}
}

// Classify validates text, runs the model and appends exactly one record to
// the store. Rejected submissions leave no trace.
func (s *ReviewService) Classify(text string) (*models.PredictResponse, error) {
	review := strings.TrimSpace(text)
	if review == "" {
		return nil, apperr.Validation("Review cannot be empty")
	}

	if reason := s.validator.Validate(review); reason != validator.ReasonAccepted {
		s.logger.Info("Review rejected", zap.String("reason", string(reason)))
		return nil, apperr.Validation("⚠️ Please enter a valid review related to restaurant")
	}

	label, probs := s.model.Predict(review)
	confidence := roundTwo(maxProb(probs) * 100)

	record := &models.Review{
		Review:     review,
		Sentiment:  label,
		Confidence: confidence,
		Timestamp:  s.now().Format(models.TimestampLayout),
	}
	if err := s.repo.Save(record); err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}

	s.logger.Info("Review classified",
		zap.Int64("id", record.ID),
		zap.String("sentiment", label),
		zap.Float64("confidence", confidence))

	return &models.PredictResponse{
		Review:     record.Review,
		Sentiment:  record.Sentiment,
		Confidence: record.Confidence,
		Message:    models.SentimentMessages[label],
		Timestamp:  record.Timestamp,
	}, nil
}

// History returns every stored record, newest first.
func (s *ReviewService) History() ([]models.Review, error) {
	reviews, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return reviews, nil
}

// SentimentCounts returns per-label totals with every label present, absent
// ones reported as zero.
func (s *ReviewService) SentimentCounts() (map[string]int, error) {
	counts, err := s.repo.CountBySentiment()
	if err != nil {
		return nil, fmt.Errorf("failed to count sentiments: %w", err)
	}
	for _, label := range models.AllSentiments {
		if _, ok := counts[label]; !ok {
			counts[label] = 0
		}
	}
	return counts, nil
}

func maxProb(probs []float64) float64 {
	best := 0.0
	for _, p := range probs {
		if p > best {
			best = p
		}
	}
	return best
}

func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}
