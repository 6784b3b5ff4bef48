package review

import (
	"clasi/internal/apperrors"
	"clasi/internal/model"
	"context"
	"fmt"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"strings"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Store is the reviews collaborator used by the detail view.
type Store interface {
	ListReviews(ctx context.Context, courseID string) ([]model.Review, error)
	SubmitReview(ctx context.Context, courseID string, rating int, text string) (model.Submission, error)
}

// Lister provides the reviews shown under a course.
type Lister interface {
	ListReviews(ctx context.Context, courseID string) ([]model.Review, error)
}

// Notifier forwards a submission to whoever reviews it.
type Notifier interface {
	NotifyReview(ctx context.Context, s model.Submission) error
}

type Service struct {
	lister   Lister
	notifier Notifier
	strict   bool
	now      func() time.Time
}

type Option func(*Service)

// WithNotifier forwards every accepted submission to n.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithStrictValidation rejects ratings outside 1..5 and blank text.
func WithStrictValidation(strict bool) Option {
	return func(s *Service) { s.strict = strict }
}

func NewService(lister Lister, opts ...Option) *Service {
	s := &Service{lister: lister, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) ListReviews(ctx context.Context, courseID string) ([]model.Review, error) {
	reviews, err := s.lister.ListReviews(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("listing reviews for course %s: %w", courseID, err)
	}
	return reviews, nil
}

// SubmitReview emits the submission. Nothing is stored.
func (s *Service) SubmitReview(ctx context.Context, courseID string, rating int, text string) (model.Submission, error) {
	if s.strict {
		if err := Validate(rating, text); err != nil {
			return model.Submission{}, err
		}
	}

	sub := model.Submission{
		ID:          uuid.NewString(),
		CourseID:    courseID,
		Rating:      rating,
		Text:        text,
		SubmittedAt: s.now().UTC(),
	}

	log.WithFields(log.Fields{
		"submission_id": sub.ID,
		"course_id":     courseID,
		"rating":        rating,
		"text":          text,
	}).Info("review submitted")

	if s.notifier != nil {
		if err := s.notifier.NotifyReview(ctx, sub); err != nil {
			return sub, fmt.Errorf("notifying reviewer of %s: %w: %w", sub.ID, apperrors.ErrSubmissionFailed, err)
		}
	}

	return sub, nil
}

// Validate checks a submission the way strict mode does.
func Validate(rating int, text string) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating %d not in %d..%d: %w", rating, MinRating, MaxRating, apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("review text is empty: %w", apperrors.ErrValidationFailed)
	}
	return nil
}
