package catalog

// SelectedFilters is a set of option labels that remembers toggle order.
// Matching only looks at membership; the order is kept for the chips.
type SelectedFilters struct {
	labels []string
}

func NewSelectedFilters(labels ...string) SelectedFilters {
	var s SelectedFilters
	for _, l := range labels {
		if !s.Has(l) {
			s.labels = append(s.labels, l)
		}
	}
	return s
}

func (s SelectedFilters) Has(label string) bool {
	return s.index(label) >= 0
}

// Toggle removes label if present and appends it otherwise.
func (s *SelectedFilters) Toggle(label string) {
	if i := s.index(label); i >= 0 {
		s.labels = append(s.labels[:i:i], s.labels[i+1:]...)
		return
	}
	s.labels = append(s.labels[:len(s.labels):len(s.labels)], label)
}

// Toggled returns a copy with label flipped, leaving s untouched.
func (s SelectedFilters) Toggled(label string) SelectedFilters {
	cp := SelectedFilters{labels: s.Labels()}
	cp.Toggle(label)
	return cp
}

// Labels returns the members in toggle order.
func (s SelectedFilters) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

func (s SelectedFilters) Len() int {
	return len(s.labels)
}

func (s SelectedFilters) index(label string) int {
	for i, l := range s.labels {
		if l == label {
			return i
		}
	}
	return -1
}
