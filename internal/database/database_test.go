package database

import (
	"clasi/internal/apperrors"
	"context"
	"database/sql"
	"errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"regexp"
	"testing"
)

var courseRowColumns = []string{"id", "department", "number", "title", "instructor", "days", "meeting_time",
	"prerequisites", "instructor_rating", "course_rating", "difficulty", "term", "credits", "description", "tags"}

func setupMock(t *testing.T) (*client, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return &client{db: db}, mock
}

func TestListCourses(t *testing.T) {
	c, mock := setupMock(t)

	rows := sqlmock.NewRows(courseRowColumns).
		AddRow(201, "CS", 201, "Data Structures & Algorithms", "Sarah Johnson", "Monday/Wednesday/Friday",
			"8:30 AM - 9:45 AM", `{"CS 101"}`, 4.5, 4.2, 3.8, "Spring 2024", 3, "desc", `{"Core Course"}`).
		AddRow(203, "CS", 203, "Discrete Mathematics", "Maria Lopez", "Monday/Wednesday/Friday",
			"11:45 AM - 1:00 PM", `{}`, 4.7, 4.6, 2.9, "Spring 2024", 3, "desc", `{}`)
	mock.ExpectQuery(regexp.QuoteMeta("FROM courses ORDER BY id")).WillReturnRows(rows)

	courses, err := c.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, []string{"CS 101"}, courses[0].Prerequisites)
	assert.Equal(t, []string{"Core Course"}, courses[0].Tags)
	assert.Empty(t, courses[1].Prerequisites)
	assert.Equal(t, "CS 203", courses[1].Code())
}

func TestGetCourseNotFound(t *testing.T) {
	c, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM courses WHERE id = $1")).
		WithArgs(999).
		WillReturnError(sql.ErrNoRows)

	_, err := c.GetCourse(context.Background(), 999)
	assert.True(t, errors.Is(err, apperrors.ErrCourseNotFound))
}

func TestGetCourseQueryError(t *testing.T) {
	c, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM courses WHERE id = $1")).
		WithArgs(201).
		WillReturnError(errors.New("connection reset"))

	_, err := c.GetCourse(context.Background(), 201)
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrCourseNotFound))
}

func TestListReviews(t *testing.T) {
	c, mock := setupMock(t)

	rows := sqlmock.NewRows([]string{"id", "course_id", "author", "rating", "comment", "posted_on"}).
		AddRow(1, 201, "John D.", 5, "Excellent course!", "March 15, 2024").
		AddRow(2, 201, "Sarah M.", 4, "Heavy workload.", "March 10, 2024")
	mock.ExpectQuery(regexp.QuoteMeta("FROM reviews WHERE course_id = $1")).
		WithArgs(201).
		WillReturnRows(rows)

	reviews, err := c.ListReviews(context.Background(), "201")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "John D.", reviews[0].Author)
	assert.Equal(t, 4, reviews[1].Rating)
}

func TestListReviewsNonNumericID(t *testing.T) {
	c, _ := setupMock(t)

	reviews, err := c.ListReviews(context.Background(), "intro")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestListDepartments(t *testing.T) {
	c, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT department FROM courses ORDER BY department")).
		WillReturnRows(sqlmock.NewRows([]string{"department"}).AddRow("CS").AddRow("MATH"))

	depts, err := c.ListDepartments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"CS", "MATH"}, depts)
}

func TestSuggestInstructors(t *testing.T) {
	c, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT instructor FROM courses WHERE instructor ILIKE $1")).
		WithArgs(`%50\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"instructor"}).AddRow("Sarah Johnson"))

	profs, err := c.SuggestInstructors(context.Background(), " 50% ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sarah Johnson"}, profs)
}

func TestSuggestInstructorsBlankQuery(t *testing.T) {
	c, _ := setupMock(t)

	profs, err := c.SuggestInstructors(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, profs)
}
