package executor

import "context"

// Executor defines the interface for executing external commands
// (ffmpeg, whisper.cpp).
//
// ExecuteInDir exists because the ffmpeg subtitles filter parses its
// argument as filter syntax: running inside the job directory lets
// callers pass a bare relative filename instead of an escaped absolute
// path.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
}
