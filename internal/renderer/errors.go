package renderer

import "errors"

var (
	// ErrBurnInProgress reports a burn attempt while another is in
	// flight. Nothing is staged and no engine invocation happens.
	ErrBurnInProgress = errors.New("burn already in progress")

	// ErrTranscodeFailed wraps an engine-level failure. The timeline
	// and source media are untouched, so the operation can be retried.
	ErrTranscodeFailed = errors.New("transcode failed")
)
