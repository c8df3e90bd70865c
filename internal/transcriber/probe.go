package transcriber

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// probeDuration returns the media duration in seconds via ffprobe.
func (t *implTranscriber) probeDuration(ctx context.Context, mediaPath string) (float64, error) {
	out, err := t.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		mediaPath,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe output %q: %w", out, err)
	}
	return duration, nil
}
