package catalog

import (
	"clasi/internal/model"
	"sort"
	"strings"
)

// Departments returns the distinct department codes, sorted.
func Departments(courses []model.Course) []string {
	return distinctSorted(courses, func(c model.Course) (string, bool) {
		return c.Department, c.Department != ""
	})
}

// MatchInstructors returns the distinct instructors whose name contains
// query, ignoring case. A blank query suggests nobody.
func MatchInstructors(courses []model.Course, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []string{}
	}
	return distinctSorted(courses, func(c model.Course) (string, bool) {
		return c.Instructor, strings.Contains(strings.ToLower(c.Instructor), query)
	})
}

// ByDepartment keeps the courses of one department. An empty department
// keeps everything.
func ByDepartment(courses []model.Course, department string) []model.Course {
	department = strings.TrimSpace(department)
	if department == "" {
		return courses
	}
	out := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if strings.EqualFold(c.Department, department) {
			out = append(out, c)
		}
	}
	return out
}

// ByInstructor keeps the courses whose instructor contains name, ignoring case.
func ByInstructor(courses []model.Course, name string) []model.Course {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return courses
	}
	out := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Instructor), name) {
			out = append(out, c)
		}
	}
	return out
}

func distinctSorted(courses []model.Course, pick func(model.Course) (string, bool)) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, c := range courses {
		v, ok := pick(c)
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
