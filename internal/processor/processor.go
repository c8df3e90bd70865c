package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/vibesync/internal/renderer"
	"github.com/nguyentantai21042004/vibesync/internal/subtitle"
	"github.com/nguyentantai21042004/vibesync/internal/timeline"
)

// Process runs the whole pipeline for one file in watch mode:
// transcribe, serialize, burn, deliver to the output folder, archive
// the original. There is no edit step; the engine's captions are burned
// as emitted.
func (p *implProcessor) Process(ctx context.Context, videoPath string) error {
	startTime := time.Now()
	base := filepath.Base(videoPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	p.logger.Info(ctx, "Processing video: %s", videoPath)

	candidates, err := p.transcriber.Transcribe(ctx, videoPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	store := timeline.NewStore()
	if err := store.Load(candidates); err != nil {
		return fmt.Errorf("load timeline: %w", err)
	}
	srt := subtitle.Render(store.All())

	srtPath := filepath.Join(p.cfg.Paths.Output, stem+".srt")
	if err := os.WriteFile(srtPath, []byte(srt), 0644); err != nil {
		return fmt.Errorf("write subtitles: %w", err)
	}

	style := renderer.Style{
		FontSize:      p.cfg.Style.FontSize,
		PrimaryColour: p.cfg.Style.PrimaryColour,
	}
	artifact, err := p.renderer.Burn(ctx, videoPath, srt, style)
	if err != nil {
		return fmt.Errorf("burn subtitles: %w", err)
	}

	videosDir := filepath.Join(p.cfg.Paths.Output, "videos")
	if err := os.MkdirAll(videosDir, 0755); err != nil {
		return fmt.Errorf("create videos dir: %w", err)
	}
	outputPath := filepath.Join(videosDir, base)
	if err := os.WriteFile(outputPath, artifact.Data, 0644); err != nil {
		return fmt.Errorf("write output video: %w", err)
	}

	if err := p.archive(ctx, videoPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive original: %v", err)
	}

	p.logger.Info(ctx, "Processed %s in %s (%d segments, %d bytes)",
		base, time.Since(startTime).Round(time.Millisecond), store.Len(), len(artifact.Data))
	return nil
}

// archive moves the original out of the input folder so it is not
// picked up again.
func (p *implProcessor) archive(ctx context.Context, videoPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}
	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(videoPath))

	if err := os.Rename(videoPath, dest); err != nil {
		// Cross-device moves fall back to copy+remove
		data, readErr := os.ReadFile(videoPath)
		if readErr != nil {
			return fmt.Errorf("move original: %w", err)
		}
		if err := os.WriteFile(dest, data, 0644); err != nil {
			return fmt.Errorf("copy original: %w", err)
		}
		if err := os.Remove(videoPath); err != nil {
			return fmt.Errorf("remove original: %w", err)
		}
	}

	p.logger.Debug(ctx, "Archived original: %s", dest)
	return nil
}
