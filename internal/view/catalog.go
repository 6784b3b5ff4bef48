// Package view holds the transient UI state of the catalog and detail pages
// and turns it into the data the templates render. State lives in the URL:
// it is decoded when a page is requested and dropped once the response is
// written.
package view

import (
	"clasi/internal/catalog"
	"clasi/internal/model"
	"net/url"
	"strconv"
)

const (
	paramQuery   = "q"
	paramFilter  = "f"
	paramPanel   = "filters"
	paramSort    = "sort"
	paramRating  = "rating"
	paramReview  = "text"
	catalogPath  = "/"
	detailPrefix = "/course/"
)

type CatalogState struct {
	SearchQuery string
	ShowFilters bool
	Selected    catalog.SelectedFilters
	Sort        catalog.SortOption

	categories []model.FilterCategory
}

func NewCatalogState(categories []model.FilterCategory) CatalogState {
	return CatalogState{Sort: catalog.SortRelevant, categories: categories}
}

func (s *CatalogState) SetSearchQuery(text string) {
	s.SearchQuery = text
}

// ToggleFilter flips label in the selection. Labels that are not options
// of any category are ignored and reported as false.
func (s *CatalogState) ToggleFilter(label string) bool {
	if !catalog.IsOption(s.categories, label) {
		return false
	}
	s.Selected.Toggle(label)
	return true
}

func (s *CatalogState) ToggleFilterPanelVisibility() {
	s.ShowFilters = !s.ShowFilters
}

func (s *CatalogState) SetSort(option string) {
	s.Sort = catalog.ParseSort(option)
}

// SelectCourse returns the path of the detail page for id.
func (s CatalogState) SelectCourse(id string) string {
	return DetailPath(id)
}

func DetailPath(id string) string {
	return detailPrefix + url.PathEscape(id)
}

func (s CatalogState) Encode() url.Values {
	v := url.Values{}
	if s.SearchQuery != "" {
		v.Set(paramQuery, s.SearchQuery)
	}
	for _, l := range s.Selected.Labels() {
		v.Add(paramFilter, l)
	}
	if s.ShowFilters {
		v.Set(paramPanel, "1")
	}
	if s.Sort != "" && s.Sort != catalog.SortRelevant {
		v.Set(paramSort, string(s.Sort))
	}
	return v
}

// URL is the catalog page link that reproduces this state.
func (s CatalogState) URL() string {
	if q := s.Encode().Encode(); q != "" {
		return catalogPath + "?" + q
	}
	return catalogPath
}

// DecodeCatalogState rebuilds catalog state from query parameters. Repeated
// f parameters give the toggle order; unknown or repeated labels are dropped.
func DecodeCatalogState(v url.Values, categories []model.FilterCategory) CatalogState {
	s := NewCatalogState(categories)
	s.SetSearchQuery(v.Get(paramQuery))
	for _, l := range v[paramFilter] {
		if !s.Selected.Has(l) {
			s.ToggleFilter(l)
		}
	}
	s.ShowFilters, _ = strconv.ParseBool(v.Get(paramPanel))
	s.SetSort(v.Get(paramSort))
	return s
}

type OptionView struct {
	Label     string
	Checked   bool
	ToggleURL string
}

type CategoryView struct {
	Name    string
	Options []OptionView
}

type ChipView struct {
	Label     string
	RemoveURL string
}

type SortView struct {
	Value    string
	Label    string
	Selected bool
}

type CardView struct {
	Course    model.Course
	Code      string
	DetailURL string
}

type CatalogPage struct {
	Query          string
	ShowFilters    bool
	PanelToggleURL string
	Categories     []CategoryView
	ActiveFilters  []ChipView
	SortOptions    []SortView
	ResultCount    int
	Cards          []CardView
}

// BuildCatalogPage selects the visible courses and lays out every control
// with the link that applies its action to the current state.
func BuildCatalogPage(s CatalogState, courses []model.Course, sel catalog.Selector) CatalogPage {
	visible := sel.Select(courses, s.Selected, s.SearchQuery, s.Sort)

	toggledPanel := s
	toggledPanel.ToggleFilterPanelVisibility()

	page := CatalogPage{
		Query:          s.SearchQuery,
		ShowFilters:    s.ShowFilters,
		PanelToggleURL: toggledPanel.URL(),
		ResultCount:    len(visible),
	}

	for _, cat := range s.categories {
		cv := CategoryView{Name: cat.Name}
		for _, o := range cat.Options {
			cv.Options = append(cv.Options, OptionView{
				Label:     o,
				Checked:   s.Selected.Has(o),
				ToggleURL: s.withToggled(o).URL(),
			})
		}
		page.Categories = append(page.Categories, cv)
	}

	for _, l := range s.Selected.Labels() {
		page.ActiveFilters = append(page.ActiveFilters, ChipView{Label: l, RemoveURL: s.withToggled(l).URL()})
	}

	for _, o := range catalog.SortOptions {
		page.SortOptions = append(page.SortOptions, SortView{
			Value:    string(o.Value),
			Label:    o.Label,
			Selected: o.Value == s.Sort,
		})
	}

	for _, c := range visible {
		page.Cards = append(page.Cards, CardView{
			Course:    c,
			Code:      c.Code(),
			DetailURL: s.SelectCourse(strconv.Itoa(c.ID)),
		})
	}

	return page
}

func (s CatalogState) withToggled(label string) CatalogState {
	next := s
	next.Selected = s.Selected.Toggled(label)
	return next
}
