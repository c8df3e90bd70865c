package subtitle

import (
	"strings"
	"testing"

	"github.com/nguyentantai21042004/vibesync/internal/timeline"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "00:00:00,000"},
		{"sub-second", 0.5, "00:00:00,500"},
		{"mixed", 3661.5, "01:01:01,500"},
		{"last millisecond of day", 86399.999, "23:59:59,999"},
		{"wraps at 24h", 86400, "00:00:00,000"},
		{"wraps past 24h", 86400 + 3661.5, "01:01:01,500"},
		{"negative clamps to zero", -1, "00:00:00,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.seconds); got != tt.want {
				t.Errorf("FormatTimestamp(%g) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	segments := []timeline.Segment{
		{ID: 0, Start: 0, End: 2.5, Text: "Hello world"},
		{ID: 1, Start: 2.5, End: 5, Text: "Second line"},
	}

	want := "1\n00:00:00,000 --> 00:00:02,500\nHello world\n\n" +
		"2\n00:00:02,500 --> 00:00:05,000\nSecond line\n\n"

	if got := Render(segments); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderIndicesArePositional(t *testing.T) {
	// Segment ids deliberately do not match position
	segments := []timeline.Segment{
		{ID: 7, Start: 0, End: 1, Text: "a"},
		{ID: 3, Start: 1, End: 2, Text: "b"},
		{ID: 9, Start: 2, End: 3, Text: "c"},
	}

	out := Render(segments)
	blocks := strings.Split(strings.TrimSuffix(out, "\n\n"), "\n\n")
	if len(blocks) != 3 {
		t.Fatalf("block count = %d, want 3", len(blocks))
	}
	for i, block := range blocks {
		lines := strings.SplitN(block, "\n", 2)
		want := []string{"1", "2", "3"}[i]
		if lines[0] != want {
			t.Errorf("block %d index = %q, want %q", i, lines[0], want)
		}
	}
}

func TestRenderEmptyText(t *testing.T) {
	segments := []timeline.Segment{{ID: 0, Start: 0, End: 1, Text: ""}}

	want := "1\n00:00:00,000 --> 00:00:01,000\n\n\n"
	if got := Render(segments); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderIdempotent(t *testing.T) {
	segments := []timeline.Segment{
		{ID: 0, Start: 1.25, End: 2.75, Text: "same"},
		{ID: 1, Start: 3, End: 4, Text: "again"},
	}

	if a, b := Render(segments), Render(segments); a != b {
		t.Errorf("Render() not idempotent:\n%q\n%q", a, b)
	}
}

func TestRenderEmptyTimeline(t *testing.T) {
	if got := Render(nil); got != "" {
		t.Errorf("Render(nil) = %q, want empty", got)
	}
}

func TestParse(t *testing.T) {
	in := "1\n00:00:00,000 --> 00:00:02,500\nHello world\n\n" +
		"2\n00:00:02,500 --> 00:00:05,000\nSecond line\n\n"

	got, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []timeline.Candidate{
		{Start: 0, End: 2.5, Text: "Hello world"},
		{Start: 2.5, End: 5, Text: "Second line"},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseTolerant(t *testing.T) {
	// CRLF line endings, multi-line cue, no trailing blank line
	in := "1\r\n00:00:01,000 --> 00:00:02,000\r\nline one\r\nline two\r\n\r\n" +
		"2\r\n00:00:03,000 --> 00:00:04,000\r\nlast"

	got, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Text != "line one\nline two" {
		t.Errorf("multi-line text = %q", got[0].Text)
	}
	if got[1].Text != "last" {
		t.Errorf("final cue text = %q", got[1].Text)
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	store := timeline.NewStore()
	if err := store.Load([]timeline.Candidate{
		{Start: 0.5, End: 2, Text: "round"},
		{Start: 2, End: 3.25, Text: "trip"},
	}); err != nil {
		t.Fatal(err)
	}

	out := Render(store.All())
	got, err := Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(got) != 2 || got[0].Text != "round" || got[1].Start != 2 || got[1].End != 3.25 {
		t.Errorf("round trip = %+v", got)
	}
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse(strings.NewReader("this is not srt at all"))
	if err == nil {
		t.Error("Parse() should reject non-SRT input")
	}
}
