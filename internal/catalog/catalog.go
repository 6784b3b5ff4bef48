package catalog

import (
	"clasi/internal/apperrors"
	"clasi/internal/model"
	"context"
	"fmt"
)

// Catalog is the read-only source of courses behind both views.
type Catalog interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	GetCourse(ctx context.Context, id int) (model.Course, error)
	ListDepartments(ctx context.Context) ([]string, error)
	SuggestInstructors(ctx context.Context, query string) ([]string, error)
}

type static struct {
	courses []model.Course
}

// NewStatic serves courses from memory. The slice is copied.
func NewStatic(courses []model.Course) Catalog {
	cp := make([]model.Course, len(courses))
	copy(cp, courses)
	return &static{courses: cp}
}

func (s *static) ListCourses(_ context.Context) ([]model.Course, error) {
	out := make([]model.Course, len(s.courses))
	copy(out, s.courses)
	return out, nil
}

func (s *static) GetCourse(_ context.Context, id int) (model.Course, error) {
	for _, c := range s.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Course{}, fmt.Errorf("no course found with id %d: %w", id, apperrors.ErrCourseNotFound)
}

func (s *static) ListDepartments(_ context.Context) ([]string, error) {
	return Departments(s.courses), nil
}

func (s *static) SuggestInstructors(_ context.Context, query string) ([]string, error) {
	return MatchInstructors(s.courses, query), nil
}
