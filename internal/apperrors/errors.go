package apperrors

import "errors"

var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrSubmissionFailed = errors.New("review submission failed")
)
