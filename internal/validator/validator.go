// Package validator gates review submissions before they reach the classifier
// and the store. Rejected text leaves no trace in the system.
package validator

import (
	"strings"

	"go.uber.org/zap"
)

// restaurantKeywords is the fixed domain allowlist. Matching is whole-token:
// a review must contain at least one of these words verbatim after
// lowercasing, so synonyms and misspellings are rejected.
var restaurantKeywords = []string{
	"food", "taste", "tasty", "delicious", "spicy", "hotel", "restaurant",
	"meal", "plate", "curry", "biryani", "sambar", "dosa", "idli",
	"service", "staff", "waiter", "drinks", "menu", "chef", "cook",
	"buffet", "dining", "dish",
}

// Predictor is the slice of the sentiment model the validator needs.
type Predictor interface {
	Predict(text string) (label string, probs []float64)
}

// Reason identifies why a review was rejected.
type Reason string

const (
	ReasonAccepted      Reason = ""
	ReasonTooShort      Reason = "too_short"
	ReasonOffTopic      Reason = "off_topic"
	ReasonLowConfidence Reason = "low_confidence"
)

// Validator applies the three-stage heuristic gate: minimum token count,
// domain keyword allowlist, then a minimum-confidence check using the model
// itself. The model is only consulted after the cheap checks pass, so it is
// never handed empty or degenerate input.
type Validator struct {
	model         Predictor
	minConfidence float64
	logger        *zap.Logger
}

// New builds a validator with the given confidence threshold (the default of
// 0.1 is deliberately permissive).
func New(model Predictor, minConfidence float64, logger *zap.Logger) *Validator {
	return &Validator{
		model:         model,
		minConfidence: minConfidence,
		logger:        logger,
	}
}

// Validate reports whether text is an acceptable restaurant review and, if
// not, which rule rejected it.
func (v *Validator) Validate(text string) Reason {
	words := strings.Fields(strings.ToLower(text))
	if len(words) < 2 {
		return ReasonTooShort
	}

	if !containsKeyword(words) {
		return ReasonOffTopic
	}

	_, probs := v.model.Predict(text)
	best := 0.0
	for _, p := range probs {
		if p > best {
			best = p
		}
	}
	if best < v.minConfidence {
		v.logger.Debug("Review rejected on confidence",
			zap.Float64("max_probability", best),
			zap.Float64("threshold", v.minConfidence))
		return ReasonLowConfidence
	}
	return ReasonAccepted
}

func containsKeyword(words []string) bool {
	for _, word := range words {
		for _, keyword := range restaurantKeywords {
			if word == keyword {
				return true
			}
		}
	}
	return false
}
