package catalog

import (
	"clasi/internal/model"
	"strconv"
	"strings"
)

// Mode decides whether the selection narrows the course set.
type Mode string

const (
	// ModeNarrow applies search text and facets to the course set.
	ModeNarrow Mode = "narrow"
	// ModeCosmetic keeps the selection as UI state only; every course is shown.
	ModeCosmetic Mode = "cosmetic"
)

func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeNarrow, "":
		return ModeNarrow, true
	case ModeCosmetic:
		return ModeCosmetic, true
	}
	return "", false
}

type facetMatcher func(c model.Course, option string) bool

var facets = map[string]facetMatcher{
	CategoryLevel:         matchLevel,
	CategoryTime:          matchTime,
	CategoryDays:          matchDays,
	CategoryPrerequisites: matchPrerequisites,
	CategoryRating:        matchRating,
}

// Filter narrows courses to those matching query and every category that
// has a selected option. Options inside one category are alternatives.
// Categories without a known matcher never exclude a course.
func Filter(courses []model.Course, categories []model.FilterCategory, selected SelectedFilters, query string) []model.Course {
	query = strings.ToLower(strings.TrimSpace(query))

	active := make(map[string][]string)
	for _, cat := range categories {
		for _, o := range cat.Options {
			if selected.Has(o) {
				active[cat.Name] = append(active[cat.Name], o)
			}
		}
	}

	out := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if query != "" && !matchQuery(c, query) {
			continue
		}
		if matchFacets(c, active) {
			out = append(out, c)
		}
	}
	return out
}

func matchQuery(c model.Course, query string) bool {
	fields := []string{c.Title, c.Instructor, c.Department, c.Code()}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func matchFacets(c model.Course, active map[string][]string) bool {
	for name, options := range active {
		match, ok := facets[name]
		if !ok {
			continue
		}
		matched := false
		for _, o := range options {
			if match(c, o) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// matchLevel understands "100-200" (100 through 299) and "500+".
func matchLevel(c model.Course, option string) bool {
	if strings.HasSuffix(option, "+") {
		lo, err := strconv.Atoi(strings.TrimSuffix(option, "+"))
		return err == nil && c.Number >= lo
	}
	parts := strings.SplitN(option, "-", 2)
	if len(parts) != 2 {
		return false
	}
	lo, err1 := strconv.Atoi(parts[0])
	hi, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return false
	}
	return c.Number >= lo && c.Number <= hi+99
}

func matchTime(c model.Course, option string) bool {
	return strings.HasPrefix(c.Time, option+" ")
}

func matchDays(c model.Course, option string) bool {
	return c.Days == option
}

const advancedPrerequisite = 300

func matchPrerequisites(c model.Course, option string) bool {
	switch option {
	case "None":
		return len(c.Prerequisites) == 0
	case "Basic":
		return len(c.Prerequisites) > 0 && !hasAdvancedPrerequisite(c)
	case "Advanced":
		return hasAdvancedPrerequisite(c)
	}
	return false
}

func hasAdvancedPrerequisite(c model.Course) bool {
	for _, p := range c.Prerequisites {
		fields := strings.Fields(p)
		if len(fields) == 0 {
			continue
		}
		n, err := strconv.Atoi(fields[len(fields)-1])
		if err == nil && n >= advancedPrerequisite {
			return true
		}
	}
	return false
}

func matchRating(c model.Course, option string) bool {
	threshold, err := strconv.ParseFloat(strings.TrimSuffix(option, "+"), 64)
	return err == nil && c.CourseRating >= threshold
}
