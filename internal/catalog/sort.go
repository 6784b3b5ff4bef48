package catalog

import (
	"clasi/internal/model"
	"sort"
)

type SortOption string

const (
	SortRelevant SortOption = "relevant"
	SortRating   SortOption = "rating"
	SortEasiest  SortOption = "easiest"
)

// SortOptions lists the choices of the sort dropdown with their labels.
var SortOptions = []struct {
	Value SortOption
	Label string
}{
	{SortRelevant, "Most Relevant"},
	{SortRating, "Highest Rated"},
	{SortEasiest, "Easiest Courses"},
}

// ParseSort maps unknown values to SortRelevant.
func ParseSort(s string) SortOption {
	for _, o := range SortOptions {
		if string(o.Value) == s {
			return o.Value
		}
	}
	return SortRelevant
}

// Sort orders courses in place. Relevance keeps catalog order.
func Sort(courses []model.Course, by SortOption) {
	switch by {
	case SortRating:
		sort.SliceStable(courses, func(i, j int) bool { return courses[i].CourseRating > courses[j].CourseRating })
	case SortEasiest:
		sort.SliceStable(courses, func(i, j int) bool { return courses[i].Difficulty < courses[j].Difficulty })
	}
}

// Selector applies the configured Mode on top of Filter and Sort.
type Selector struct {
	Categories []model.FilterCategory
	Mode       Mode
}

func (s Selector) Select(courses []model.Course, selected SelectedFilters, query string, by SortOption) []model.Course {
	var out []model.Course
	if s.Mode == ModeCosmetic {
		out = make([]model.Course, len(courses))
		copy(out, courses)
	} else {
		out = Filter(courses, s.Categories, selected, query)
	}
	Sort(out, by)
	return out
}
