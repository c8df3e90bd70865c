package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/vibesync/internal/timeline"
)

// Transcriber turns a media file into timed caption candidates using
// the local recognition engine. A call is one long-running unit of
// work: callers observe only pending, complete, or failed.
type Transcriber interface {
	Transcribe(ctx context.Context, mediaPath string) ([]timeline.Candidate, error)
}
