package timeline

// Segment is one timed caption line.
//
// ID is stable for the lifetime of a load generation and is never
// reused within it. Start and End are seconds from the beginning of the
// media, 0 <= Start < End. Text may be empty.
type Segment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Candidate is an unvalidated segment as emitted by the recognition
// engine, before the store assigns ids.
type Candidate struct {
	Start float64
	End   float64
	Text  string
}
