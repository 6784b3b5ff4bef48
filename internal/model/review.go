package model

import "time"

type Review struct {
	ID       int    `json:"id"`
	CourseID int    `json:"course_id"`
	Author   string `json:"author"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}

// Submission is a review captured from the form. It is emitted to the
// reviewing collaborator and never stored.
type Submission struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"course_id"`
	Rating      int       `json:"rating"`
	Text        string    `json:"text"`
	SubmittedAt time.Time `json:"submitted_at"`
}
