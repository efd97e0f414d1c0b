package service

import (
	"context"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	apperrors "github.com/insideimaging/insideimaging-backend/pkg/errors"
	"github.com/insideimaging/insideimaging-backend/pkg/logger"
	"github.com/insideimaging/insideimaging-backend/pkg/messaging"
)

// FeedbackStore persists user feedback
type FeedbackStore interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
	List(ctx context.Context, limit int) ([]domain.Feedback, error)
	AverageRating(ctx context.Context) (float64, error)
}

// StatsProvider aggregates anonymized report events
type StatsProvider interface {
	GetStats(ctx context.Context) (*domain.UsageStats, error)
}

// FeedbackService handles feedback submission and the usage dashboard
type FeedbackService struct {
	feedback  FeedbackStore
	stats     StatsProvider
	publisher Publisher
	log       *logger.Logger
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(feedback FeedbackStore, stats StatsProvider, publisher Publisher, log *logger.Logger) *FeedbackService {
	return &FeedbackService{
		feedback:  feedback,
		stats:     stats,
		publisher: publisher,
		log:       log,
	}
}

// Submit stores one rating and publishes the submission event
func (s *FeedbackService) Submit(ctx context.Context, rating int, comment string, userID *string) (*domain.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.Validation(map[string]string{
			"rating": "rating must be between 1 and 5",
		})
	}

	feedback := &domain.Feedback{
		UserID:  userID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return nil, err
	}

	event := messaging.FeedbackSubmittedEvent{
		FeedbackID: feedback.ID,
		Rating:     feedback.Rating,
	}
	if userID != nil {
		event.UserID = *userID
	}
	if err := s.publisher.Publish(ctx, messaging.EventFeedbackSubmitted, event); err != nil {
		s.log.Warn().Err(err).Str("feedback_id", feedback.ID).Msg("failed to publish feedback event")
	}

	return feedback, nil
}

// Recent returns the newest feedback entries
func (s *FeedbackService) Recent(ctx context.Context, limit int) ([]domain.Feedback, error) {
	return s.feedback.List(ctx, limit)
}

// Stats returns the usage dashboard aggregates plus the mean rating
func (s *FeedbackService) Stats(ctx context.Context) (*domain.UsageStats, float64, error) {
	stats, err := s.stats.GetStats(ctx)
	if err != nil {
		return nil, 0, err
	}
	avg, err := s.feedback.AverageRating(ctx)
	if err != nil {
		return nil, 0, err
	}
	return stats, avg, nil
}
