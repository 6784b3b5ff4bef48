package review

import (
	"clasi/internal/apperrors"
	"clasi/internal/model"
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

type stubNotifier struct {
	sent []model.Submission
	err  error
}

func (n *stubNotifier) NotifyReview(_ context.Context, s model.Submission) error {
	n.sent = append(n.sent, s)
	return n.err
}

func TestListReviewsReturnsSeedOrder(t *testing.T) {
	svc := NewService(NewStatic(SeedReviews()))

	reviews, err := svc.ListReviews(context.Background(), "201")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "John D.", reviews[0].Author)
	assert.Equal(t, "Sarah M.", reviews[1].Author)
}

func TestSubmitReviewIsPermissiveByDefault(t *testing.T) {
	n := &stubNotifier{}
	svc := NewService(NewStatic(nil), WithNotifier(n))
	svc.now = func() time.Time { return time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC) }

	sub, err := svc.SubmitReview(context.Background(), "202", 0, "")
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "202", sub.CourseID)
	assert.Equal(t, time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC), sub.SubmittedAt)
	require.Len(t, n.sent, 1)
	assert.Equal(t, sub, n.sent[0])
}

func TestSubmitReviewStrictRejects(t *testing.T) {
	n := &stubNotifier{}
	svc := NewService(NewStatic(nil), WithNotifier(n), WithStrictValidation(true))

	_, err := svc.SubmitReview(context.Background(), "202", 6, "fine")
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	_, err = svc.SubmitReview(context.Background(), "202", 4, "   ")
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	_, err = svc.SubmitReview(context.Background(), "202", 4, "solid course")
	assert.NoError(t, err)
	assert.Len(t, n.sent, 1)
}

func TestSubmitReviewNotifierFailure(t *testing.T) {
	cause := errors.New("mailbox down")
	n := &stubNotifier{err: cause}
	svc := NewService(NewStatic(nil), WithNotifier(n))

	sub, err := svc.SubmitReview(context.Background(), "203", 3, "ok")
	assert.True(t, errors.Is(err, apperrors.ErrSubmissionFailed))
	assert.True(t, errors.Is(err, cause))
	assert.NotEmpty(t, sub.ID)
}
