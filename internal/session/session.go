// Package session owns the state of the single editing session: the
// uploaded source media, its caption timeline, and the handles to the
// recognition and transcoding pipelines. The HTTP layer is a pure
// read/dispatch surface over it; no caption data lives anywhere else.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/nguyentantai21042004/vibesync/internal/logger"
	"github.com/nguyentantai21042004/vibesync/internal/renderer"
	"github.com/nguyentantai21042004/vibesync/internal/subtitle"
	"github.com/nguyentantai21042004/vibesync/internal/timeline"
	"github.com/nguyentantai21042004/vibesync/internal/transcriber"
)

// ErrNoSession reports an operation before any video has been loaded.
var ErrNoSession = errors.New("no video loaded")

// Session is safe for concurrent use. Timeline mutations apply in the
// order received; a burn works from the subtitle snapshot taken when it
// started, so edits issued mid-burn land in the store immediately and
// affect the next burn.
type Session struct {
	transcriber transcriber.Transcriber
	renderer    renderer.Renderer
	logger      logger.Logger

	mu         sync.Mutex
	store      *timeline.Store
	sourcePath string
	sourceName string
}

// New creates an empty session around the injected pipeline handles.
func New(tr transcriber.Transcriber, rd renderer.Renderer, log logger.Logger) *Session {
	return &Session{
		transcriber: tr,
		renderer:    rd,
		logger:      log,
	}
}

// Upload replaces the whole session with a new source video: the file
// is transcribed and a fresh timeline is loaded from the result. The
// session takes ownership of the file at path. On failure the previous
// session state is left intact and the new file is removed.
func (s *Session) Upload(ctx context.Context, name, path string) error {
	candidates, err := s.transcriber.Transcribe(ctx, path)
	if err != nil {
		os.Remove(path)
		return err
	}

	store := timeline.NewStore()
	if err := store.Load(candidates); err != nil {
		os.Remove(path)
		return fmt.Errorf("load timeline: %w", err)
	}

	s.mu.Lock()
	old := s.sourcePath
	s.store = store
	s.sourcePath = path
	s.sourceName = name
	s.mu.Unlock()

	if old != "" && old != path {
		if err := os.Remove(old); err != nil {
			s.logger.Warn(ctx, "Failed to remove replaced source %s: %v", old, err)
		}
	}

	s.logger.Info(ctx, "Session loaded: %s (%d segments)", name, store.Len())
	return nil
}

func (s *Session) current() (*timeline.Store, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		return nil, "", ErrNoSession
	}
	return s.store, s.sourcePath, nil
}

// Segments returns the ordered caption timeline.
func (s *Session) Segments() ([]timeline.Segment, error) {
	store, _, err := s.current()
	if err != nil {
		return nil, err
	}
	return store.All(), nil
}

// UpdateText edits one caption's text.
func (s *Session) UpdateText(id int, text string) error {
	store, _, err := s.current()
	if err != nil {
		return err
	}
	return store.UpdateText(id, text)
}

// ActiveAt returns the caption to display at playback time t.
func (s *Session) ActiveAt(t float64) (timeline.Segment, bool, error) {
	store, _, err := s.current()
	if err != nil {
		return timeline.Segment{}, false, err
	}
	seg, ok := store.ActiveAt(t)
	return seg, ok, nil
}

// RenderSRT serializes the current timeline to SRT text.
func (s *Session) RenderSRT() (string, error) {
	store, _, err := s.current()
	if err != nil {
		return "", err
	}
	return subtitle.Render(store.All()), nil
}

// Burn overlays the current captions onto the source video and returns
// the downloadable artifact. The subtitle text is snapshotted here;
// concurrent edits do not tear the burn.
func (s *Session) Burn(ctx context.Context, style renderer.Style) (*renderer.Artifact, error) {
	store, sourcePath, err := s.current()
	if err != nil {
		return nil, err
	}
	return s.renderer.Burn(ctx, sourcePath, subtitle.Render(store.All()), style)
}

// SourceName returns the original filename of the loaded video.
func (s *Session) SourceName() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		return "", ErrNoSession
	}
	return s.sourceName, nil
}

// State reports the render pipeline state for status displays.
func (s *Session) State() renderer.State {
	return s.renderer.State()
}

// LastRenderError reports the most recent burn failure, if any.
func (s *Session) LastRenderError() error {
	return s.renderer.LastError()
}
