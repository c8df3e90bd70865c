package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/vibesync/internal/timeline"
)

var timingLine = regexp.MustCompile(
	`^(\d{2,}):(\d{2}):(\d{2})[,.](\d{3})\s+-->\s+(\d{2,}):(\d{2}):(\d{2})[,.](\d{3})`)

// Parse reads SRT text into load candidates. whisper.cpp's -osrt output
// is the expected input, so the parser is tolerant: CRLF line endings,
// missing trailing blank line, and dot millisecond separators are all
// accepted. Multi-line cues are joined with a newline.
func Parse(r io.Reader) ([]timeline.Candidate, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var out []timeline.Candidate
	var cur *timeline.Candidate
	var text []string

	flush := func() {
		if cur == nil {
			return
		}
		cur.Text = strings.TrimSpace(strings.Join(text, "\n"))
		out = append(out, *cur)
		cur = nil
		text = nil
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			flush()
			continue
		}

		if m := timingLine.FindStringSubmatch(trimmed); m != nil {
			flush()
			cur = &timeline.Candidate{
				Start: timestampSeconds(m[1], m[2], m[3], m[4]),
				End:   timestampSeconds(m[5], m[6], m[7], m[8]),
			}
			continue
		}

		// A bare number directly before a timing line is the block index
		if cur == nil {
			if _, err := strconv.Atoi(trimmed); err == nil {
				continue
			}
			return nil, fmt.Errorf("unexpected line outside cue: %q", trimmed)
		}

		text = append(text, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}
	flush()

	return out, nil
}

func timestampSeconds(h, m, s, ms string) float64 {
	hh, _ := strconv.Atoi(h)
	mm, _ := strconv.Atoi(m)
	ss, _ := strconv.Atoi(s)
	mmm, _ := strconv.Atoi(ms)
	return float64(hh)*3600 + float64(mm)*60 + float64(ss) + float64(mmm)/1000
}
