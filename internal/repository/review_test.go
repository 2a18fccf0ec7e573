package repository

import (
	"path/filepath"
	"testing"

	"reviewpulse/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "reviews.db")
	db, err := NewSQLiteDB(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	MigrateDB(db, zap.NewNop())
	return db
}

func TestSaveAssignsMonotonicIDs(t *testing.T) {
	repo := NewReviewRepository(newTestDB(t), zap.NewNop())

	first := &models.Review{Review: "great food", Sentiment: models.SentimentPositive, Confidence: 92.5, Timestamp: "2024-05-01 10:00:00"}
	second := &models.Review{Review: "cold meal", Sentiment: models.SentimentNegative, Confidence: 80.0, Timestamp: "2024-05-01 10:01:00"}

	require.NoError(t, repo.Save(first))
	require.NoError(t, repo.Save(second))
	require.Greater(t, first.ID, int64(0))
	require.Greater(t, second.ID, first.ID)
}

func TestGetAllReturnsNewestFirst(t *testing.T) {
	repo := NewReviewRepository(newTestDB(t), zap.NewNop())

	texts := []string{"first review of the food", "second review of the food", "third review of the food"}
	for _, text := range texts {
		require.NoError(t, repo.Save(&models.Review{
			Review:     text,
			Sentiment:  models.SentimentPositive,
			Confidence: 75,
			Timestamp:  "2024-05-01 10:00:00",
		}))
	}

	reviews, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	require.Equal(t, "third review of the food", reviews[0].Review)
	require.Equal(t, "first review of the food", reviews[2].Review)
}

func TestGetAllEmptyStore(t *testing.T) {
	repo := NewReviewRepository(newTestDB(t), zap.NewNop())

	reviews, err := repo.GetAll()
	require.NoError(t, err)
	require.NotNil(t, reviews)
	require.Empty(t, reviews)
}

func TestCountBySentiment(t *testing.T) {
	repo := NewReviewRepository(newTestDB(t), zap.NewNop())

	for _, sentiment := range []string{
		models.SentimentPositive,
		models.SentimentPositive,
		models.SentimentNegative,
	} {
		require.NoError(t, repo.Save(&models.Review{
			Review:     "some food review",
			Sentiment:  sentiment,
			Confidence: 60,
			Timestamp:  "2024-05-01 10:00:00",
		}))
	}

	counts, err := repo.CountBySentiment()
	require.NoError(t, err)
	require.Equal(t, 2, counts[models.SentimentPositive])
	require.Equal(t, 1, counts[models.SentimentNegative])
	// Absent labels are simply missing here; the service layer zero-fills.
	require.NotContains(t, counts, models.SentimentNeutral)
}
