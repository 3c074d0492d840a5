// Package fileset provides an insertion-ordered set of file paths.
//
// A Set never holds the same path twice. Iteration order is the order in which
// paths were first added; removing a path keeps the relative order of the rest.
package fileset

// Set is an insertion-ordered collection of unique path strings.
// The zero value is an empty set ready to use.
type Set struct {
	order []string
	index map[string]int
}

// New creates a Set containing the given paths, in order, without duplicates.
func New(paths ...string) *Set {
	s := &Set{}
	s.Add(paths...)
	return s
}

// Add inserts each path not already present and returns how many were new.
// Empty strings are ignored.
func (s *Set) Add(paths ...string) int {
	if s.index == nil {
		s.index = make(map[string]int)
	}

	added := 0
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, ok := s.index[p]; ok {
			continue
		}
		s.index[p] = len(s.order)
		s.order = append(s.order, p)
		added++
	}
	return added
}

// Remove deletes the given paths and returns how many were present.
func (s *Set) Remove(paths ...string) int {
	removed := 0
	for _, p := range paths {
		if _, ok := s.index[p]; !ok {
			continue
		}
		delete(s.index, p)
		removed++
	}
	if removed == 0 {
		return 0
	}

	// Compact the order slice and rebuild positions
	kept := s.order[:0]
	for _, p := range s.order {
		if _, ok := s.index[p]; ok {
			s.index[p] = len(kept)
			kept = append(kept, p)
		}
	}
	clear(s.order[len(kept):])
	s.order = kept
	return removed
}

// Contains reports whether path is in the set.
func (s *Set) Contains(path string) bool {
	_, ok := s.index[path]
	return ok
}

// Len returns the number of paths in the set.
func (s *Set) Len() int {
	return len(s.order)
}

// Clear empties the set.
func (s *Set) Clear() {
	s.order = nil
	s.index = nil
}

// Paths returns a copy of the paths in insertion order.
func (s *Set) Paths() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Replace swaps the contents of s with those of other.
// other is left empty.
func (s *Set) Replace(other *Set) {
	s.order, other.order = other.order, nil
	s.index, other.index = other.index, nil
}
