package catalog

import (
	"clasi/internal/apperrors"
	"clasi/internal/model"
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func ids(t *testing.T, courses []model.Course) []int {
	t.Helper()
	var out []int
	for _, c := range courses {
		out = append(out, c.ID)
	}
	return out
}

func TestSeedCoursesIDsAndTimes(t *testing.T) {
	courses := SeedCourses()
	require.Len(t, courses, 6)
	for i, c := range courses {
		assert.Equal(t, 201+i, c.ID)
		assert.Equal(t, TimeSlots[i%len(TimeSlots)], c.Time)
	}
}

func TestStaticGetCourse(t *testing.T) {
	c := NewStatic(SeedCourses())

	course, err := c.GetCourse(context.Background(), 203)
	require.NoError(t, err)
	assert.Equal(t, "Discrete Mathematics", course.Title)

	_, err = c.GetCourse(context.Background(), 999)
	assert.True(t, errors.Is(err, apperrors.ErrCourseNotFound))
}

func TestToggleParity(t *testing.T) {
	var s SelectedFilters
	for n := 1; n <= 6; n++ {
		s.Toggle("4.5+")
		assert.Equal(t, n%2 == 1, s.Has("4.5+"), "after %d toggles", n)
	}
}

func TestToggleKeepsOrder(t *testing.T) {
	var s SelectedFilters
	s.Toggle("Basic")
	s.Toggle("8:30 AM")
	s.Toggle("4.0+")
	s.Toggle("8:30 AM")
	s.Toggle("8:30 AM")

	assert.Equal(t, []string{"Basic", "4.0+", "8:30 AM"}, s.Labels())
}

func TestToggledDoesNotAlias(t *testing.T) {
	s := NewSelectedFilters("Basic", "None")
	next := s.Toggled("Basic")

	assert.Equal(t, []string{"Basic", "None"}, s.Labels())
	assert.Equal(t, []string{"None"}, next.Labels())
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	courses := SeedCourses()

	got := Filter(courses, DefaultCategories(), SelectedFilters{}, "sarah")
	assert.Equal(t, []int{201, 205}, ids(t, got))

	got = Filter(courses, DefaultCategories(), SelectedFilters{}, "DATABASE")
	assert.Equal(t, []int{206}, ids(t, got))

	got = Filter(courses, DefaultCategories(), SelectedFilters{}, "cs 204")
	assert.Equal(t, []int{204}, ids(t, got))

	got = Filter(courses, DefaultCategories(), SelectedFilters{}, "cs")
	assert.Len(t, got, 6)
}

func TestFilterOrWithinAndAcross(t *testing.T) {
	courses := SeedCourses()
	cats := DefaultCategories()

	got := Filter(courses, cats, NewSelectedFilters("8:30 AM", "10:05 AM"), "")
	assert.Equal(t, []int{201, 202}, ids(t, got))

	got = Filter(courses, cats, NewSelectedFilters("8:30 AM", "10:05 AM", "Tuesday/Thursday"), "")
	assert.Equal(t, []int{202}, ids(t, got))

	got = Filter(courses, cats, NewSelectedFilters("4.5+"), "")
	assert.Equal(t, []int{203}, ids(t, got))

	got = Filter(courses, cats, NewSelectedFilters("500+"), "")
	assert.Empty(t, got)

	got = Filter(courses, cats, NewSelectedFilters("100-200"), "")
	assert.Len(t, got, 6)
}

func TestFilterPrerequisites(t *testing.T) {
	courses := SeedCourses()
	cats := DefaultCategories()

	assert.Equal(t, []int{203}, ids(t, Filter(courses, cats, NewSelectedFilters("None"), "")))
	assert.Equal(t, []int{205}, ids(t, Filter(courses, cats, NewSelectedFilters("Advanced"), "")))
	assert.Equal(t, []int{201, 202, 204, 206}, ids(t, Filter(courses, cats, NewSelectedFilters("Basic"), "")))
}

func TestSelectorCosmeticIgnoresSelection(t *testing.T) {
	s := Selector{Categories: DefaultCategories(), Mode: ModeCosmetic}

	got := s.Select(SeedCourses(), NewSelectedFilters("500+"), "nothing matches this", SortRelevant)
	assert.Len(t, got, 6)
}

func TestSelectorSorts(t *testing.T) {
	s := Selector{Categories: DefaultCategories(), Mode: ModeNarrow}

	got := s.Select(SeedCourses(), SelectedFilters{}, "", SortRating)
	assert.Equal(t, 203, got[0].ID)

	got = s.Select(SeedCourses(), SelectedFilters{}, "", SortEasiest)
	assert.Equal(t, 204, got[0].ID)

	assert.Equal(t, SortRelevant, ParseSort("bogus"))
}

func TestParseMode(t *testing.T) {
	m, ok := ParseMode("Cosmetic")
	assert.True(t, ok)
	assert.Equal(t, ModeCosmetic, m)

	m, ok = ParseMode("")
	assert.True(t, ok)
	assert.Equal(t, ModeNarrow, m)

	_, ok = ParseMode("fuzzy")
	assert.False(t, ok)
}

func TestLoadCategories(t *testing.T) {
	cats, err := LoadCategories("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCategories(), cats)

	dir := t.TempDir()
	path := filepath.Join(dir, "filters.yaml")
	content := "categories:\n  - name: Rating\n    options: [\"4.8+\"]\n  - name: Days\n    options: [\"Tuesday/Thursday\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cats, err = LoadCategories(path)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Rating", cats[0].Name)
	assert.True(t, IsOption(cats, "4.8+"))
	assert.False(t, IsOption(cats, "4.5+"))

	dup := filepath.Join(dir, "dup.yaml")
	content = "categories:\n  - name: A\n    options: [x]\n  - name: B\n    options: [x]\n"
	require.NoError(t, os.WriteFile(dup, []byte(content), 0o600))
	_, err = LoadCategories(dup)
	assert.Error(t, err)
}

func TestDepartmentsAndInstructors(t *testing.T) {
	courses := SeedCourses()
	courses = append(courses, model.Course{ID: 301, Department: "MATH", Number: 301, Instructor: "Maria Lopez"})
	c := NewStatic(courses)

	depts, err := c.ListDepartments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"CS", "MATH"}, depts)

	profs, err := c.SuggestInstructors(context.Background(), "AR")
	require.NoError(t, err)
	assert.Equal(t, []string{"James Carter", "Maria Lopez", "Sarah Johnson"}, profs)

	profs, err = c.SuggestInstructors(context.Background(), "  ")
	require.NoError(t, err)
	assert.Empty(t, profs)
}

func TestByDepartmentAndInstructor(t *testing.T) {
	courses := append(SeedCourses(), model.Course{ID: 301, Department: "MATH", Number: 301, Instructor: "Maria Lopez"})

	assert.Equal(t, []int{301}, ids(t, ByDepartment(courses, "math")))
	assert.Len(t, ByDepartment(courses, ""), 7)
	assert.Equal(t, []int{203, 301}, ids(t, ByInstructor(courses, "lopez")))
}
