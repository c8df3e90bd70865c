package timeline

// ActiveAt returns the first segment in timeline order with
// start <= t <= end, or false when no segment covers t.
//
// When overlapping segments both cover t, the earliest in timeline
// order wins. The recognition engine may emit overlaps; this rule keeps
// playback lookup deterministic without imposing a merge policy.
//
// Linear scan: timelines are bounded by the upload size cap and stay
// small. The contract allows swapping in a start-sorted interval index
// later without changing callers.
func ActiveAt(segments []Segment, t float64) (Segment, bool) {
	for _, seg := range segments {
		if seg.Start <= t && t <= seg.End {
			return seg, true
		}
	}
	return Segment{}, false
}
