package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nguyentantai21042004/vibesync/internal/logger"
	"github.com/nguyentantai21042004/vibesync/internal/renderer"
	"github.com/nguyentantai21042004/vibesync/internal/timeline"
)

type fakeTranscriber struct {
	candidates []timeline.Candidate
	err        error
	calls      int
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, mediaPath string) ([]timeline.Candidate, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

type fakeRenderer struct {
	artifact *renderer.Artifact
	err      error
	lastSRT  string
	lastPath string
	calls    int
}

func (f *fakeRenderer) Burn(ctx context.Context, sourcePath, subtitleText string, style renderer.Style) (*renderer.Artifact, error) {
	f.calls++
	f.lastPath = sourcePath
	f.lastSRT = subtitleText
	if f.err != nil {
		return nil, f.err
	}
	return f.artifact, nil
}

func (f *fakeRenderer) State() renderer.State { return renderer.StateIdle }
func (f *fakeRenderer) LastError() error      { return f.err }

func writeSource(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("video"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newLoaded(t *testing.T) (*Session, *fakeTranscriber, *fakeRenderer) {
	t.Helper()
	tr := &fakeTranscriber{candidates: []timeline.Candidate{
		{Start: 0, End: 1, Text: "one"},
		{Start: 1, End: 2, Text: "two"},
	}}
	rd := &fakeRenderer{artifact: &renderer.Artifact{Name: "vibesync.mp4", MIME: "video/mp4", Data: []byte("v")}}
	s := New(tr, rd, logger.New("error"))
	if err := s.Upload(context.Background(), "clip.mp4", writeSource(t, "clip.mp4")); err != nil {
		t.Fatal(err)
	}
	return s, tr, rd
}

func TestUploadLoadsTimeline(t *testing.T) {
	s, _, _ := newLoaded(t)

	segments, err := s.Segments()
	if err != nil {
		t.Fatalf("Segments() error = %v", err)
	}
	if len(segments) != 2 || segments[0].ID != 0 || segments[1].ID != 1 {
		t.Errorf("segments = %+v", segments)
	}

	name, err := s.SourceName()
	if err != nil || name != "clip.mp4" {
		t.Errorf("SourceName() = %q, %v", name, err)
	}
}

func TestUploadReplacesSession(t *testing.T) {
	s, tr, _ := newLoaded(t)

	if err := s.UpdateText(0, "edited"); err != nil {
		t.Fatal(err)
	}

	tr.candidates = []timeline.Candidate{{Start: 5, End: 6, Text: "fresh"}}
	if err := s.Upload(context.Background(), "other.mp4", writeSource(t, "other.mp4")); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	segments, _ := s.Segments()
	want := []timeline.Segment{{ID: 0, Start: 5, End: 6, Text: "fresh"}}
	if !reflect.DeepEqual(segments, want) {
		t.Errorf("segments after replace = %+v, want %+v", segments, want)
	}
}

func TestUploadFailureKeepsPreviousSession(t *testing.T) {
	s, tr, _ := newLoaded(t)

	tr.err = errors.New("engine failure")
	badPath := writeSource(t, "bad.mp4")
	if err := s.Upload(context.Background(), "bad.mp4", badPath); err == nil {
		t.Fatal("Upload() should fail")
	}

	// Previous timeline intact
	segments, err := s.Segments()
	if err != nil || len(segments) != 2 {
		t.Errorf("previous session lost: %+v, %v", segments, err)
	}
	name, _ := s.SourceName()
	if name != "clip.mp4" {
		t.Errorf("SourceName() = %q, want clip.mp4", name)
	}

	// Rejected upload is cleaned up
	if _, err := os.Stat(badPath); !os.IsNotExist(err) {
		t.Errorf("rejected upload %s not removed", badPath)
	}
}

func TestOperationsBeforeUpload(t *testing.T) {
	s := New(&fakeTranscriber{}, &fakeRenderer{}, logger.New("error"))

	if _, err := s.Segments(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Segments() error = %v, want ErrNoSession", err)
	}
	if err := s.UpdateText(0, "x"); !errors.Is(err, ErrNoSession) {
		t.Errorf("UpdateText() error = %v, want ErrNoSession", err)
	}
	if _, err := s.RenderSRT(); !errors.Is(err, ErrNoSession) {
		t.Errorf("RenderSRT() error = %v, want ErrNoSession", err)
	}
	if _, err := s.Burn(context.Background(), renderer.Style{}); !errors.Is(err, ErrNoSession) {
		t.Errorf("Burn() error = %v, want ErrNoSession", err)
	}
	if _, _, err := s.ActiveAt(1); !errors.Is(err, ErrNoSession) {
		t.Errorf("ActiveAt() error = %v, want ErrNoSession", err)
	}
}

func TestBurnUsesCurrentTimeline(t *testing.T) {
	s, _, rd := newLoaded(t)

	if err := s.UpdateText(1, "edited before burn"); err != nil {
		t.Fatal(err)
	}

	artifact, err := s.Burn(context.Background(), renderer.Style{FontSize: 24, PrimaryColour: "&HFFFFFF&"})
	if err != nil {
		t.Fatalf("Burn() error = %v", err)
	}
	if artifact.MIME != "video/mp4" {
		t.Errorf("MIME = %q", artifact.MIME)
	}

	want, _ := s.RenderSRT()
	if rd.lastSRT != want {
		t.Errorf("burned SRT = %q, want current render %q", rd.lastSRT, want)
	}
}

func TestBurnFailureLeavesTimelineIntact(t *testing.T) {
	s, _, rd := newLoaded(t)

	before, _ := s.Segments()
	rd.err = renderer.ErrTranscodeFailed
	if _, err := s.Burn(context.Background(), renderer.Style{}); !errors.Is(err, renderer.ErrTranscodeFailed) {
		t.Fatalf("Burn() error = %v, want ErrTranscodeFailed", err)
	}

	after, _ := s.Segments()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("timeline changed across failed burn: %+v -> %+v", before, after)
	}
}

func TestActiveAt(t *testing.T) {
	s, _, _ := newLoaded(t)

	seg, ok, err := s.ActiveAt(0.5)
	if err != nil || !ok || seg.Text != "one" {
		t.Errorf("ActiveAt(0.5) = %+v, %v, %v", seg, ok, err)
	}
	if _, ok, _ := s.ActiveAt(10); ok {
		t.Error("ActiveAt(10) should find nothing")
	}
}
