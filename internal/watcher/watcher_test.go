package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"clip.mp4", true},
		{"CLIP.MP4", true},
		{"movie.mkv", true},
		{"clip.webm", true},
		{"notes.txt", false},
		{"subs.srt", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := isVideoFile(tt.path); got != tt.want {
			t.Errorf("isVideoFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWaitForStableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, []byte("stable"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := waitForStableFile(context.Background(), path); err != nil {
		t.Errorf("waitForStableFile() error = %v", err)
	}
}

func TestWaitForStableFileMissing(t *testing.T) {
	if err := waitForStableFile(context.Background(), filepath.Join(t.TempDir(), "missing.mp4")); err == nil {
		t.Error("waitForStableFile() should fail for a missing file")
	}
}
