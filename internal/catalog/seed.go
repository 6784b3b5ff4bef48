package catalog

import "clasi/internal/model"

const (
	mwf = "Monday/Wednesday/Friday"
	tth = "Tuesday/Thursday"
)

// TimeSlots are the meeting blocks offered each day, in order.
var TimeSlots = []string{
	"8:30 AM - 9:45 AM",
	"10:05 AM - 11:20 AM",
	"11:45 AM - 1:00 PM",
	"1:25 PM - 2:40 PM",
	"3:05 PM - 4:20 PM",
	"4:40 PM - 5:55 PM",
	"6:15 PM - 7:30 PM",
}

// FirstCourseID is the id of the first card in the listing; card i links to FirstCourseID+i.
const FirstCourseID = 201

// SeedCourses returns the built-in catalog.
func SeedCourses() []model.Course {
	type row struct {
		title      string
		instructor string
		days       string
		prereqs    []string
		profRating float64
		rating     float64
		difficulty float64
		tags       []string
		desc       string
	}

	rows := []row{
		{"Data Structures & Algorithms", "Sarah Johnson", mwf, []string{"CS 101"}, 4.5, 4.2, 3.8, []string{"Core Course"},
			"An introduction to fundamental data structures and algorithms, with an emphasis on practical implementation and theoretical analysis. Topics include lists, stacks, queues, trees, hash tables, graphs, sorting, searching, and basic algorithmic analysis."},
		{"Computer Organization", "David Kim", tth, []string{"CS 201"}, 4.1, 3.9, 3.5, []string{"Core Course"},
			"How programs execute on real hardware: data representation, assembly language, memory hierarchy, and pipelining."},
		{"Discrete Mathematics", "Maria Lopez", mwf, nil, 4.7, 4.6, 2.9, []string{"Core Course"},
			"Logic, proofs, sets, relations, combinatorics, and graph theory for computer scientists."},
		{"Software Design", "James Carter", tth, []string{"CS 201"}, 3.6, 3.7, 2.4, []string{"Elective"},
			"Object-oriented design, testing, version control, and team projects on a shared codebase."},
		{"Operating Systems", "Sarah Johnson", mwf, []string{"CS 202", "CS 310"}, 4.3, 4.0, 4.4, []string{"Elective"},
			"Processes, threads, scheduling, virtual memory, file systems, and concurrency primitives."},
		{"Database Systems", "Alan Wu", tth, []string{"CS 201"}, 3.9, 3.4, 3.1, []string{"Elective"},
			"Relational modelling, SQL, indexing, query processing, and transactions."},
	}

	courses := make([]model.Course, 0, len(rows))
	for i, r := range rows {
		courses = append(courses, model.Course{
			ID:               FirstCourseID + i,
			Department:       "CS",
			Number:           FirstCourseID + i,
			Title:            r.title,
			Instructor:       r.instructor,
			Days:             r.days,
			Time:             TimeSlots[i%len(TimeSlots)],
			Prerequisites:    r.prereqs,
			InstructorRating: r.profRating,
			CourseRating:     r.rating,
			Difficulty:       r.difficulty,
			Term:             "Spring 2024",
			Credits:          3,
			Description:      r.desc,
			Tags:             r.tags,
		})
	}
	return courses
}

// Placeholder stands in for a course id that the catalog does not know.
// The first seed course is reused with the caller's number.
func Placeholder(id int) model.Course {
	c := SeedCourses()[0]
	c.ID = id
	c.Number = id
	return c
}
