package view

import (
	"clasi/internal/model"
	"clasi/internal/review"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

var ErrRatingOutOfRange = errors.New("rating out of range")

// DetailState is the pending review form of one detail page.
type DetailState struct {
	CourseID string
	Rating   int
	Text     string
}

func NewDetailState(courseID string) DetailState {
	return DetailState{CourseID: courseID}
}

// SetRating picks a star in 1..5. Other values leave the state unchanged.
func (s *DetailState) SetRating(star int) error {
	if star < review.MinRating || star > review.MaxRating {
		return fmt.Errorf("star %d: %w", star, ErrRatingOutOfRange)
	}
	s.Rating = star
	return nil
}

func (s *DetailState) SetReviewText(text string) {
	s.Text = text
}

// Stars reports which of the five stars are lit: star i (1-based) is lit
// when i <= Rating.
func (s DetailState) Stars() []bool {
	return starRow(s.Rating)
}

// SubmitReview hands the pending review to store and clears the form. The
// form is cleared even when store fails.
func (s *DetailState) SubmitReview(ctx context.Context, store review.Store) (model.Submission, error) {
	rating, text := s.Rating, s.Text
	s.Rating = 0
	s.Text = ""
	return store.SubmitReview(ctx, s.CourseID, rating, text)
}

func (s DetailState) Encode() url.Values {
	v := url.Values{}
	if s.Rating != 0 {
		v.Set(paramRating, strconv.Itoa(s.Rating))
	}
	if s.Text != "" {
		v.Set(paramReview, s.Text)
	}
	return v
}

// DecodeDetailState reads the pending form from query or form values. A
// rating that is not a star in 1..5 is dropped.
func DecodeDetailState(courseID string, v url.Values) DetailState {
	s := NewDetailState(courseID)
	if n, err := strconv.Atoi(v.Get(paramRating)); err == nil {
		_ = s.SetRating(n)
	}
	s.SetReviewText(v.Get(paramReview))
	return s
}

func starRow(rating int) []bool {
	stars := make([]bool, review.MaxRating)
	for i := range stars {
		stars[i] = i+1 <= rating
	}
	return stars
}

type StarView struct {
	Value  int
	Filled bool
}

type ReviewView struct {
	Review model.Review
	Stars  []bool
}

type DetailPage struct {
	Label     string
	Course    model.Course
	Known     bool
	CourseID  string
	Stars     []StarView
	Rating    int
	Text      string
	Reviews   []ReviewView
	BackURL   string
	FormURL   string
	SubmitURL string
	Submitted bool
}

// BuildDetailPage lays out a course page. The heading carries the requested
// id verbatim, whether or not the catalog knows it.
func BuildDetailPage(s DetailState, course model.Course, known bool, reviews []model.Review) DetailPage {
	page := DetailPage{
		Label:     fmt.Sprintf("%s %s", course.Department, s.CourseID),
		Course:    course,
		Known:     known,
		CourseID:  s.CourseID,
		Rating:    s.Rating,
		Text:      s.Text,
		BackURL:   catalogPath,
		FormURL:   DetailPath(s.CourseID),
		SubmitURL: DetailPath(s.CourseID) + "/reviews",
	}

	for i, lit := range s.Stars() {
		page.Stars = append(page.Stars, StarView{Value: i + 1, Filled: lit})
	}

	for _, r := range reviews {
		page.Reviews = append(page.Reviews, ReviewView{Review: r, Stars: starRow(r.Rating)})
	}

	return page
}
