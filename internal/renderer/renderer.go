package renderer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	subtitleFile = "subs.srt"
	outputFile   = "output.mp4"

	// artifactName is the fixed download filename for burned videos.
	artifactName = "vibesync.mp4"
	artifactMIME = "video/mp4"
)

// Burn stages the serialized subtitles into a private per-job
// workspace, overlays them onto the source video, and returns the
// result as a downloadable artifact.
//
// Each job gets its own burn-<uuid> directory, so the at-most-one-burn
// rule is a safety property and not an accident of fixed filenames. On
// any failure the source and the caller's timeline are untouched and
// the pipeline returns to idle, ready for a retry.
func (r *implRenderer) Burn(ctx context.Context, sourcePath, subtitleText string, style Style) (*Artifact, error) {
	if !r.inflight.TryLock() {
		return nil, ErrBurnInProgress
	}
	defer r.inflight.Unlock()
	defer r.setState(StateIdle)

	artifact, err := r.burn(ctx, sourcePath, subtitleText, style)
	if err != nil {
		r.setState(StateFailed)
		r.setLastError(err)
		return nil, err
	}

	r.setLastError(nil)
	return artifact, nil
}

func (r *implRenderer) burn(ctx context.Context, sourcePath, subtitleText string, style Style) (*Artifact, error) {
	r.setState(StateLoading)

	jobID := uuid.NewString()
	jobDir := filepath.Join(r.cfg.Paths.Work, "burn-"+jobID)
	if err := os.MkdirAll(jobDir, 0755); err != nil {
		return nil, fmt.Errorf("create job workspace: %w", err)
	}
	defer os.RemoveAll(jobDir)

	if err := os.WriteFile(filepath.Join(jobDir, subtitleFile), []byte(subtitleText), 0644); err != nil {
		return nil, fmt.Errorf("stage subtitles: %w", err)
	}

	absSource, err := filepath.Abs(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("resolve source path: %w", err)
	}

	r.logger.Info(ctx, "Burning subtitles into video (job %s): %s", jobID, sourcePath)
	r.setState(StateTranscoding)

	// Run in the job directory so the subtitles filter sees a bare
	// relative filename; absolute paths break ffmpeg's filter parsing.
	filter := fmt.Sprintf("subtitles=%s:force_style='%s'", subtitleFile, style.forceStyle())

	args := []string{
		"-y",
		"-i", absSource,
		"-vf", filter,
		"-c:v", r.cfg.FFmpeg.Encoder,
		"-preset", r.cfg.FFmpeg.Preset,
		"-c:a", r.cfg.FFmpeg.AudioCodec,
		outputFile,
	}

	if _, err := r.executor.ExecuteInDir(ctx, jobDir, "ffmpeg", args...); err != nil {
		// Hardware encoders fail on unsupported inputs; retry in
		// software before giving up.
		if r.cfg.FFmpeg.Encoder == softwareEncoder {
			return nil, fmt.Errorf("%w: %v", ErrTranscodeFailed, err)
		}
		r.logger.Warn(ctx, "Encoder %s failed, retrying with %s: %v", r.cfg.FFmpeg.Encoder, softwareEncoder, err)
		if err := r.burnSoftware(ctx, jobDir, absSource, filter); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTranscodeFailed, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(jobDir, outputFile))
	if err != nil {
		return nil, fmt.Errorf("%w: read engine output: %v", ErrTranscodeFailed, err)
	}

	r.logger.Info(ctx, "Burn complete (job %s): %d bytes", jobID, len(data))
	return &Artifact{Name: artifactName, MIME: artifactMIME, Data: data}, nil
}

const softwareEncoder = "libx264"

// burnSoftware is the libx264 fallback path.
func (r *implRenderer) burnSoftware(ctx context.Context, jobDir, absSource, filter string) error {
	args := []string{
		"-y",
		"-i", absSource,
		"-vf", filter,
		"-c:v", softwareEncoder,
		"-preset", r.cfg.FFmpeg.Preset,
		"-crf", "23",
		"-c:a", "copy",
		outputFile,
	}

	if _, err := r.executor.ExecuteInDir(ctx, jobDir, "ffmpeg", args...); err != nil {
		return fmt.Errorf("software encoder: %w", err)
	}
	return nil
}
