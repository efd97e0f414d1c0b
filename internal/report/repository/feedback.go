package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	"github.com/insideimaging/insideimaging-backend/pkg/database"
)

// FeedbackRepository stores user ratings of produced summaries
type FeedbackRepository struct {
	db *database.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *database.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create inserts one feedback entry
func (r *FeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	if feedback.ID == "" {
		feedback.ID = uuid.New().String()
	}

	query := `
		INSERT INTO feedback (id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		feedback.ID,
		feedback.UserID,
		feedback.Rating,
		feedback.Comment,
	).Scan(&feedback.CreatedAt)
	if err != nil {
		return database.WrapError(err)
	}
	return nil
}

// List returns the newest feedback entries, most recent first
func (r *FeedbackRepository) List(ctx context.Context, limit int) ([]domain.Feedback, error) {
	query := `
		SELECT id, user_id, rating, comment, created_at
		FROM feedback
		ORDER BY created_at DESC
		LIMIT $1
	`
	var entries []domain.Feedback
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, database.WrapError(err)
	}
	return entries, nil
}

// AverageRating returns the mean rating across all feedback, 0 when empty
func (r *FeedbackRepository) AverageRating(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.GetContext(ctx, &avg,
		`SELECT COALESCE(AVG(rating), 0) FROM feedback`)
	if err != nil {
		return 0, database.WrapError(err)
	}
	return avg, nil
}
