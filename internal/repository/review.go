package repository

import (
	"reviewpulse/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// ReviewRepository is the append/query contract for review records. Records
// are never updated or deleted.
type ReviewRepository interface {
	Save(review *models.Review) error
	GetAll() ([]models.Review, error)
	CountBySentiment() (map[string]int, error)
}

type reviewRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewReviewRepository builds a ReviewRepository over the shared connection
// pool. Each call runs a single statement checked out from the pool, so the
// one-transaction-per-call semantics hold without explicit transactions.
func NewReviewRepository(db *sqlx.DB, logger *zap.Logger) ReviewRepository {
	return &reviewRepository{db: db, logger: logger}
}

func (r *reviewRepository) Save(review *models.Review) error {
	query := `INSERT INTO reviews (review, sentiment, confidence, timestamp) VALUES (?, ?, ?, ?)`
	result, err := r.db.Exec(query, review.Review, review.Sentiment, review.Confidence, review.Timestamp)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	review.ID = id
	return nil
}

func (r *reviewRepository) GetAll() ([]models.Review, error) {
	reviews := []models.Review{}
	query := `SELECT id, review, sentiment, confidence, timestamp FROM reviews ORDER BY id DESC`
	if err := r.db.Select(&reviews, query); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) CountBySentiment() (map[string]int, error) {
	rows, err := r.db.Queryx(`SELECT sentiment, COUNT(*) AS count FROM reviews GROUP BY sentiment`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var sentiment string
		var count int
		if err := rows.Scan(&sentiment, &count); err != nil {
			return nil, err
		}
		counts[sentiment] = count
	}
	return counts, rows.Err()
}
