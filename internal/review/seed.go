package review

import (
	"clasi/internal/model"
	"context"
)

type static struct {
	reviews []model.Review
}

// NewStatic returns the same seed reviews for every course.
func NewStatic(reviews []model.Review) Lister {
	return &static{reviews: reviews}
}

func (s *static) ListReviews(_ context.Context, _ string) ([]model.Review, error) {
	out := make([]model.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}

func SeedReviews() []model.Review {
	return []model.Review{
		{
			ID:      1,
			Author:  "John D.",
			Rating:  5,
			Date:    "March 15, 2024",
			Comment: "Excellent course! Professor explains concepts clearly and assignments are challenging but fair.",
		},
		{
			ID:      2,
			Author:  "Sarah M.",
			Rating:  4,
			Date:    "March 10, 2024",
			Comment: "Great content but heavy workload. Be prepared to spend a lot of time on assignments.",
		},
	}
}
