package skills

import "sort"

// Set holds normalized skill names. Ordering for display is always an
// explicit Sorted call, never implied by the container.
type Set map[string]struct{}

func (s Set) Add(name string) {
	s[name] = struct{}{}
}

func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the names in lexicographic order. The result is never
// nil so it always serializes as a JSON array.
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Intersect returns the names present in both sets.
func (s Set) Intersect(other Set) Set {
	result := make(Set)
	for name := range s {
		if other.Has(name) {
			result.Add(name)
		}
	}

	return result
}

// Diff returns the names present in s but not in other.
func (s Set) Diff(other Set) Set {
	result := make(Set)
	for name := range s {
		if !other.Has(name) {
			result.Add(name)
		}
	}

	return result
}
