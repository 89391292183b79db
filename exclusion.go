package vellum

// ExclusionSet tracks reserved rectangular regions within a layout surface.
// Text flow routes around these. The set is an approximation, not a strict
// partition: a new rectangle fully contained in an existing one is dropped, a
// new rectangle fully containing an existing one replaces it in place, and
// anything else is appended even if it partially overlaps earlier entries.
//
// Iteration order is insertion order, and queries return the first hit; both
// are observable behavior the flow layout depends on.
type ExclusionSet struct {
	regions []Region
}

// Add inserts a rectangle into the set, absorbing or being absorbed by an
// existing entry where possible. An empty rectangle is a contract violation
// and panics.
func (s *ExclusionSet) Add(rect Region) {
	if rect.Dimensions().IsEmpty() {
		panic("vellum: empty exclusion rect")
	}
	for i, existing := range s.regions {
		if rect.In(existing) {
			// Already have an encompassing region.
			return
		}
		if existing.In(rect) {
			// The new region swallows the old; replace it.
			s.regions[i] = rect
			return
		}
	}
	s.regions = append(s.regions, rect)
}

// FindIntersecting returns the first stored rectangle intersecting the query,
// in insertion order. Only the first hit matters to callers: layout retries
// until no intersection remains.
func (s *ExclusionSet) FindIntersecting(rect Region) (Region, bool) {
	for _, existing := range s.regions {
		if rect.Intersects(existing) {
			return existing, true
		}
	}
	return Region{}, false
}

// Len returns the number of stored rectangles.
func (s *ExclusionSet) Len() int {
	return len(s.regions)
}

// Clear removes all stored rectangles, keeping the backing storage.
func (s *ExclusionSet) Clear() {
	s.regions = s.regions[:0]
}

// Regions returns the stored rectangles in insertion order. The returned
// slice MUST NOT be mutated.
func (s *ExclusionSet) Regions() []Region {
	return s.regions
}
