package main

import "clasi/internal/model"

type SubmitReviewRequest struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

type SubmitReviewResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type CourseListResponse struct {
	Count   int            `json:"count"`
	Filters []string       `json:"filters"`
	Courses []model.Course `json:"courses"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
