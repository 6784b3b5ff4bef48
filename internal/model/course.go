package model

import "fmt"

type Course struct {
	ID               int      `json:"id"`
	Department       string   `json:"department"`
	Number           int      `json:"number"`
	Title            string   `json:"title"`
	Instructor       string   `json:"instructor"`
	Days             string   `json:"days"`
	Time             string   `json:"time"`
	Prerequisites    []string `json:"prerequisites"`
	InstructorRating float64  `json:"instructor_rating"`
	CourseRating     float64  `json:"course_rating"`
	Difficulty       float64  `json:"difficulty"`
	Term             string   `json:"term"`
	Credits          int      `json:"credits"`
	Description      string   `json:"description"`
	Tags             []string `json:"tags"`
}

// Code is the display label, e.g. "CS 201".
func (c Course) Code() string {
	return fmt.Sprintf("%s %d", c.Department, c.Number)
}
