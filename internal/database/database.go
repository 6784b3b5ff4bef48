package database

import (
	"clasi/internal/apperrors"
	"clasi/internal/model"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	"strconv"
	"strings"
)

// Client is the PostgreSQL-backed course catalog. It is read-only.
type Client interface {
	Close()
	Ping(ctx context.Context) error
	ListCourses(ctx context.Context) ([]model.Course, error)
	GetCourse(ctx context.Context, id int) (model.Course, error)
	ListDepartments(ctx context.Context) ([]string, error)
	SuggestInstructors(ctx context.Context, query string) ([]string, error)
	ListReviews(ctx context.Context, courseID string) ([]model.Review, error)
}

type client struct {
	db *sql.DB
}

func NewClient(connStr string) (Client, error) {
	db, err := sql.Open("postgres", connStr)

	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return &client{db: db}, nil
}

func (c *client) Close() {
	err := c.db.Close()
	if err != nil {
		log.Errorf("closing database: %v", err)
	}
}

func (c *client) Ping(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}

const courseColumns = `id, department, number, title, instructor, days, meeting_time, prerequisites,
	instructor_rating, course_rating, difficulty, term, credits, description, tags`

func scanCourse(row interface{ Scan(...any) error }, course *model.Course) error {
	return row.Scan(
		&course.ID,
		&course.Department,
		&course.Number,
		&course.Title,
		&course.Instructor,
		&course.Days,
		&course.Time,
		pq.Array(&course.Prerequisites),
		&course.InstructorRating,
		&course.CourseRating,
		&course.Difficulty,
		&course.Term,
		&course.Credits,
		&course.Description,
		pq.Array(&course.Tags),
	)
}

func (c *client) ListCourses(ctx context.Context) ([]model.Course, error) {
	rows, err := c.db.QueryContext(ctx, "SELECT "+courseColumns+" FROM courses ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var course model.Course
		if err := scanCourse(rows, &course); err != nil {
			return nil, fmt.Errorf("scanning course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}

	return courses, nil
}

func (c *client) GetCourse(ctx context.Context, id int) (model.Course, error) {
	query := "SELECT " + courseColumns + " FROM courses WHERE id = $1"
	var course model.Course
	err := scanCourse(c.db.QueryRowContext(ctx, query, id), &course)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Course{}, fmt.Errorf("no course found with id %v: %w", id, apperrors.ErrCourseNotFound)
		}
		return model.Course{}, fmt.Errorf("querying for course by id: %w", err)
	}

	return course, nil
}

func (c *client) ListDepartments(ctx context.Context) ([]string, error) {
	return c.queryStrings(ctx, "SELECT DISTINCT department FROM courses ORDER BY department")
}

// SuggestInstructors matches instructors by substring, ignoring case. A
// blank query suggests nobody.
func (c *client) SuggestInstructors(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}

	pattern := "%" + likeEscaper.Replace(query) + "%"
	return c.queryStrings(ctx, "SELECT DISTINCT instructor FROM courses WHERE instructor ILIKE $1 ORDER BY instructor", pattern)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func (c *client) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %q: %w", query, err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scanning value: %w", err)
		}
		out = append(out, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating values: %w", err)
	}

	return out, nil
}

// ListReviews returns the reviews of a course, oldest id first. Ids that
// are not numbers have no reviews.
func (c *client) ListReviews(ctx context.Context, courseID string) ([]model.Review, error) {
	id, err := strconv.Atoi(courseID)
	if err != nil {
		return []model.Review{}, nil
	}

	query := `SELECT id, course_id, author, rating, comment, posted_on FROM reviews WHERE course_id = $1 ORDER BY id`
	rows, err := c.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("querying reviews: %w", err)
	}
	defer rows.Close()

	reviews := []model.Review{}
	for rows.Next() {
		var r model.Review
		if err := rows.Scan(&r.ID, &r.CourseID, &r.Author, &r.Rating, &r.Comment, &r.Date); err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		reviews = append(reviews, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reviews: %w", err)
	}

	return reviews, nil
}
