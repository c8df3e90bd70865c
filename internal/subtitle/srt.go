package subtitle

import (
	"fmt"
	"math"
	"strings"

	"github.com/nguyentantai21042004/vibesync/internal/timeline"
)

// Render serializes the timeline to SubRip (SRT) text.
//
// One block per segment in timeline order:
//
//	1
//	00:00:00,000 --> 00:00:02,500
//	Hello world
//
//	2
//	...
//
// Block indices are positional and 1-based, independent of segment ids.
// Empty caption text yields a block with an empty text line, which is
// valid SRT. Render is pure: the same timeline always produces
// byte-identical output.
func Render(segments []timeline.Segment) string {
	var b strings.Builder
	for i, seg := range segments {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n",
			i+1,
			FormatTimestamp(seg.Start),
			FormatTimestamp(seg.End),
			seg.Text,
		)
	}
	return b.String()
}

// FormatTimestamp renders seconds as a zero-padded SRT timestamp,
// HH:MM:SS,mmm with a comma millisecond separator.
//
// Values of 24 hours or more wrap modulo 24 hours (86400s renders as
// 00:00:00,000). A capped upload cannot reach that in practice, but the
// wrap is deliberate rather than a silent truncation.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	total := int64(math.Round(seconds * 1000))
	total %= 24 * 3600 * 1000

	ms := total % 1000
	total /= 1000
	h := total / 3600
	total %= 3600
	m := total / 60
	s := total % 60

	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
