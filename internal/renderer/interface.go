package renderer

import "context"

// Renderer burns subtitle text into a source video and returns the
// resulting artifact. At most one burn is in flight at a time; a second
// call while one is outstanding fails fast with ErrBurnInProgress.
type Renderer interface {
	Burn(ctx context.Context, sourcePath, subtitleText string, style Style) (*Artifact, error)
	State() State
	LastError() error
}

// Artifact is the finished deliverable: a single video byte stream
// tagged with its media type. It is immutable once returned.
type Artifact struct {
	Name string
	MIME string
	Data []byte
}
