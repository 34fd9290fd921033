// Package focus provides the selection state machine used for keyboard and
// controller navigation.
package focus

// Change reports a focus transition so callers can emit leave and enter
// events.
type Change[K comparable] struct {
	Previous    K
	HasPrevious bool
	Current     K
	HasCurrent  bool
}

// Changed reports whether focus moved.
func (c Change[K]) Changed() bool {
	if c.HasPrevious != c.HasCurrent {
		return true
	}
	return c.HasCurrent && c.Previous != c.Current
}

// Selection tracks which keys can be focused, in traversal order, and which
// one currently is.
//
// The candidate list is rebuilt on every layout pass with Begin and Add. Next
// and Prev do not wrap: stepping past either end clears focus.
type Selection[K comparable] struct {
	candidates []K
	current    K
	hasCurrent bool
	locked     bool

	// MenuAccessibility marks that the interface is being driven through
	// focus navigation rather than a pointer.
	MenuAccessibility bool
}

// Begin clears the candidate list ahead of a rebuild.
func (s *Selection[K]) Begin() {
	s.candidates = s.candidates[:0]
}

// Add appends a candidate in traversal order.
func (s *Selection[K]) Add(k K) {
	s.candidates = append(s.candidates, k)
}

// Candidates returns the current candidate list. The slice is reused by the
// next rebuild.
func (s *Selection[K]) Candidates() []K {
	return s.candidates
}

// Current returns the focused key.
func (s *Selection[K]) Current() (K, bool) {
	return s.current, s.hasCurrent
}

// Locked reports whether Next and Prev are suppressed.
func (s *Selection[K]) Locked() bool {
	return s.locked
}

// Lock suppresses Next and Prev.
func (s *Selection[K]) Lock() {
	s.locked = true
}

// Unlock re-enables Next and Prev.
func (s *Selection[K]) Unlock() {
	s.locked = false
}

// IsCandidate reports whether k is in the candidate list.
func (s *Selection[K]) IsCandidate(k K) bool {
	return s.indexOf(k) >= 0
}

// Next focuses the candidate after the current one. With no focus it picks
// the first candidate; from the last candidate, or from a key no longer in
// the list, focus is cleared.
func (s *Selection[K]) Next() Change[K] {
	if s.locked {
		return s.unchanged()
	}
	return s.move(1)
}

// Prev focuses the candidate before the current one. With no focus it picks
// the last candidate; from the first candidate, or from a key no longer in
// the list, focus is cleared.
func (s *Selection[K]) Prev() Change[K] {
	if s.locked {
		return s.unchanged()
	}
	return s.move(-1)
}

func (s *Selection[K]) move(delta int) Change[K] {
	ch := s.unchanged()
	if !s.hasCurrent {
		if len(s.candidates) == 0 {
			return ch
		}
		idx := 0
		if delta < 0 {
			idx = len(s.candidates) - 1
		}
		s.set(s.candidates[idx], true)
		return s.complete(ch)
	}

	idx := s.indexOf(s.current)
	next := idx + delta
	if idx < 0 || next < 0 || next >= len(s.candidates) {
		s.clear()
		return s.complete(ch)
	}
	s.set(s.candidates[next], true)
	return s.complete(ch)
}

// Select focuses k. Without force, k must be a candidate, otherwise focus is
// cleared.
func (s *Selection[K]) Select(k K, force bool) Change[K] {
	ch := s.unchanged()
	if force || s.IsCandidate(k) {
		s.set(k, true)
	} else {
		s.clear()
	}
	return s.complete(ch)
}

// Clear removes focus.
func (s *Selection[K]) Clear() Change[K] {
	ch := s.unchanged()
	s.clear()
	return s.complete(ch)
}

func (s *Selection[K]) unchanged() Change[K] {
	return Change[K]{
		Previous:    s.current,
		HasPrevious: s.hasCurrent,
		Current:     s.current,
		HasCurrent:  s.hasCurrent,
	}
}

func (s *Selection[K]) complete(ch Change[K]) Change[K] {
	ch.Current, ch.HasCurrent = s.current, s.hasCurrent
	return ch
}

func (s *Selection[K]) set(k K, ok bool) {
	s.current, s.hasCurrent = k, ok
}

func (s *Selection[K]) clear() {
	var zero K
	s.set(zero, false)
}

func (s *Selection[K]) indexOf(k K) int {
	for i, c := range s.candidates {
		if c == k {
			return i
		}
	}
	return -1
}
