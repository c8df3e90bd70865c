package timeline

import (
	"fmt"
	"sync"
)

// Store holds the ordered caption timeline for one loaded video. It is
// the sole source of truth for caption content: display layers read
// from it, they never keep their own copies.
//
// Order is fixed at Load time (the recognition engine emits segments in
// start order); text edits never reorder or retime. Overlapping
// segments are tolerated, lookup resolves them deterministically.
//
// All methods are safe for concurrent use and atomic: readers never
// observe a partially applied mutation.
type Store struct {
	mu       sync.RWMutex
	segments []Segment
}

// NewStore returns an empty timeline.
func NewStore() *Store {
	return &Store{}
}

// Load replaces the entire timeline with the given candidates,
// assigning sequential ids 0..n-1 in input order. If any candidate has
// start >= end or start < 0, Load fails with ErrInvalidSegment and the
// previous timeline is left untouched.
func (s *Store) Load(candidates []Candidate) error {
	segments := make([]Segment, len(candidates))
	for i, c := range candidates {
		if c.Start < 0 || c.Start >= c.End {
			return fmt.Errorf("%w: segment %d has start=%g end=%g", ErrInvalidSegment, i, c.Start, c.End)
		}
		segments[i] = Segment{ID: i, Start: c.Start, End: c.End, Text: c.Text}
	}

	s.mu.Lock()
	s.segments = segments
	s.mu.Unlock()
	return nil
}

// UpdateText replaces the text of the segment with the given id,
// leaving ordering and timing untouched. Unknown ids fail with
// ErrNotFound.
func (s *Store) UpdateText(id int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.segments {
		if s.segments[i].ID == id {
			s.segments[i].Text = text
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// All returns the full timeline in order. The returned slice is a copy;
// mutating it does not affect the store.
func (s *Store) All() []Segment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Len reports the number of segments.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.segments)
}

// ActiveAt returns the caption active at playback time t, if any.
// See the ActiveAt function for the tie-break rule.
func (s *Store) ActiveAt(t float64) (Segment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ActiveAt(s.segments, t)
}
