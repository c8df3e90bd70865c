package renderer

// State describes where the pipeline is in a burn.
//
// Transitions: Idle -> Loading -> Transcoding -> Idle on success;
// a failure passes through Failed on the way back to Idle so the
// session is immediately ready for a retry. The last failure stays
// observable through LastError.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateTranscoding
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateTranscoding:
		return "transcoding"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
