package catalog

import (
	"clasi/internal/model"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
)

const (
	CategoryLevel         = "Course Level"
	CategoryTime          = "Time"
	CategoryDays          = "Days"
	CategoryPrerequisites = "Prerequisites"
	CategoryRating        = "Rating"
)

// DefaultCategories returns the filter panel in display order.
func DefaultCategories() []model.FilterCategory {
	return []model.FilterCategory{
		{Name: CategoryLevel, Options: []string{"100-200", "300-400", "500+"}},
		{Name: CategoryTime, Options: []string{"8:30 AM", "10:05 AM", "11:45 AM", "1:25 PM", "3:05 PM", "4:40 PM", "6:15 PM"}},
		{Name: CategoryDays, Options: []string{mwf, tth}},
		{Name: CategoryPrerequisites, Options: []string{"None", "Basic", "Advanced"}},
		{Name: CategoryRating, Options: []string{"4.5+", "4.0+", "3.5+"}},
	}
}

type categoriesFile struct {
	Categories []model.FilterCategory `yaml:"categories"`
}

// LoadCategories reads filter categories from a YAML file. An empty path
// yields the defaults.
func LoadCategories(path string) ([]model.FilterCategory, error) {
	if path == "" {
		return DefaultCategories(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading filters file: %w", err)
	}

	var f categoriesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing filters file: %w", err)
	}

	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("filters file %s defines no categories", path)
	}

	seen := map[string]string{}
	for _, c := range f.Categories {
		if c.Name == "" {
			return nil, fmt.Errorf("filters file %s: category without a name", path)
		}
		for _, o := range c.Options {
			if prev, ok := seen[o]; ok {
				return nil, fmt.Errorf("filters file %s: option %q appears in both %q and %q", path, o, prev, c.Name)
			}
			seen[o] = c.Name
		}
	}

	return f.Categories, nil
}

// IsOption reports whether label belongs to any category.
func IsOption(categories []model.FilterCategory, label string) bool {
	for _, c := range categories {
		for _, o := range c.Options {
			if o == label {
				return true
			}
		}
	}
	return false
}
