package service

import (
	"errors"
	"testing"
	"time"

	"reviewpulse/internal/apperr"
	"reviewpulse/internal/models"
	"reviewpulse/internal/validator"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubModel struct {
	label string
	probs []float64
}

func (s *stubModel) Predict(string) (string, []float64) {
	return s.label, s.probs
}

type stubRepo struct {
	saved   []models.Review
	all     []models.Review
	counts  map[string]int
	saveErr error
}

func (s *stubRepo) Save(review *models.Review) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	review.ID = int64(len(s.saved) + 1)
	s.saved = append(s.saved, *review)
	return nil
}

func (s *stubRepo) GetAll() ([]models.Review, error) {
	return s.all, nil
}

func (s *stubRepo) CountBySentiment() (map[string]int, error) {
	return s.counts, nil
}

func newReviewService(model *stubModel, repo *stubRepo) *ReviewService {
	logger := zap.NewNop()
	svc := NewReviewService(model, validator.New(model, 0.1, logger), repo, logger)
	svc.now = func() time.Time {
		return time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestClassifyEmptyReview(t *testing.T) {
	repo := &stubRepo{}
	svc := newReviewService(&stubModel{label: models.SentimentPositive, probs: []float64{0.9, 0.05, 0.05}}, repo)

	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := svc.Classify(input)
		require.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
	}
	require.Empty(t, repo.saved, "rejected submissions must leave no trace")
}

func TestClassifyRejectedByValidator(t *testing.T) {
	repo := &stubRepo{}
	svc := newReviewService(&stubModel{label: models.SentimentPositive, probs: []float64{0.9, 0.05, 0.05}}, repo)

	cases := []string{
		"ok",                        // one token
		"The weather is nice today", // no domain keyword
	}
	for _, input := range cases {
		_, err := svc.Classify(input)
		require.Equal(t, apperr.CodeValidation, apperr.CodeOf(err), "input %q", input)
	}
	require.Empty(t, repo.saved)
}

func TestClassifyLowConfidenceRejected(t *testing.T) {
	repo := &stubRepo{}
	svc := newReviewService(&stubModel{label: models.SentimentPositive, probs: []float64{0.05, 0.04, 0.03}}, repo)

	_, err := svc.Classify("the food was fine")
	require.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
	require.Empty(t, repo.saved)
}

func TestClassifyHappyPath(t *testing.T) {
	repo := &stubRepo{}
	svc := newReviewService(&stubModel{label: models.SentimentPositive, probs: []float64{0.87654, 0.1, 0.02346}}, repo)

	resp, err := svc.Classify("  the food was delicious  ")
	require.NoError(t, err)

	require.Equal(t, "the food was delicious", resp.Review)
	require.Equal(t, models.SentimentPositive, resp.Sentiment)
	require.Equal(t, 87.65, resp.Confidence)
	require.Equal(t, "Thank you! Your review is positive 👍", resp.Message)
	require.Equal(t, "2024-05-01 10:30:00", resp.Timestamp)

	require.Len(t, repo.saved, 1, "exactly one append per accepted call")
	require.Equal(t, resp.Review, repo.saved[0].Review)
	require.Equal(t, resp.Confidence, repo.saved[0].Confidence)
}

func TestClassifySaveFailure(t *testing.T) {
	repo := &stubRepo{saveErr: errors.New("disk full")}
	svc := newReviewService(&stubModel{label: models.SentimentNegative, probs: []float64{0.1, 0.8, 0.1}}, repo)

	_, err := svc.Classify("the food was awful")
	require.Error(t, err)
	require.Equal(t, apperr.Code(""), apperr.CodeOf(err), "store failures are not part of the request taxonomy")
}

func TestSentimentCountsZeroFill(t *testing.T) {
	repo := &stubRepo{counts: map[string]int{models.SentimentPositive: 2}}
	svc := newReviewService(&stubModel{label: models.SentimentPositive, probs: []float64{0.9, 0.05, 0.05}}, repo)

	counts, err := svc.SentimentCounts()
	require.NoError(t, err)
	require.Equal(t, map[string]int{
		models.SentimentPositive: 2,
		models.SentimentNegative: 0,
		models.SentimentNeutral:  0,
	}, counts)
}

func TestHistoryPassesThrough(t *testing.T) {
	repo := &stubRepo{all: []models.Review{{Review: "newest"}, {Review: "oldest"}}}
	svc := newReviewService(&stubModel{label: models.SentimentPositive, probs: []float64{0.9, 0.05, 0.05}}, repo)

	reviews, err := svc.History()
	require.NoError(t, err)
	require.Equal(t, "newest", reviews[0].Review)
	require.Equal(t, "oldest", reviews[1].Review)
}
