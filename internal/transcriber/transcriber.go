package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nguyentantai21042004/vibesync/internal/subtitle"
	"github.com/nguyentantai21042004/vibesync/internal/timeline"
)

// Transcribe runs the full recognition path: ceiling checks, audio
// extraction, whisper.cpp invocation, SRT parse. The ceiling checks
// happen before any engine invocation so oversized inputs cost nothing.
func (t *implTranscriber) Transcribe(ctx context.Context, mediaPath string) ([]timeline.Candidate, error) {
	info, err := os.Stat(mediaPath)
	if err != nil {
		return nil, fmt.Errorf("stat source: %w", err)
	}
	if limit := t.cfg.Limits.MaxUploadBytes; info.Size() > limit {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrInputTooLarge, info.Size(), limit)
	}
	if max := t.cfg.Limits.MaxDurationSeconds; max > 0 {
		duration, err := t.probeDuration(ctx, mediaPath)
		if err != nil {
			return nil, fmt.Errorf("probe duration: %w", err)
		}
		if duration > max {
			return nil, fmt.Errorf("%w: %.1fs, limit %.1fs", ErrInputTooLarge, duration, max)
		}
	}

	workDir, err := os.MkdirTemp(t.cfg.Paths.Work, "transcribe-*")
	if err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	audioPath, err := t.extractAudio(ctx, mediaPath, workDir)
	if err != nil {
		return nil, fmt.Errorf("extract audio: %w", err)
	}

	srtPath, err := t.runWhisper(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	f, err := os.Open(srtPath)
	if err != nil {
		return nil, fmt.Errorf("open engine output: %w", err)
	}
	defer f.Close()

	candidates, err := subtitle.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse engine output: %w", err)
	}

	t.logger.Info(ctx, "Transcription produced %d segments: %s", len(candidates), mediaPath)
	return candidates, nil
}

// extractAudio converts the source to 16kHz mono WAV, the input format
// whisper.cpp works best with.
func (t *implTranscriber) extractAudio(ctx context.Context, mediaPath, workDir string) (string, error) {
	audioPath := filepath.Join(workDir, "audio.wav")

	t.logger.Info(ctx, "Extracting audio: %s", mediaPath)

	args := []string{
		"-i", mediaPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	return audioPath, nil
}

// runWhisper invokes whisper.cpp with SRT output next to the audio file.
func (t *implTranscriber) runWhisper(ctx context.Context, audioPath string) (string, error) {
	outputPrefix := audioPath[:len(audioPath)-len(filepath.Ext(audioPath))]

	t.logger.Info(ctx, "Starting transcription with %d threads: %s", t.cfg.Whisper.Threads, audioPath)

	args := []string{
		"-m", t.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-osrt",
		"-l", t.cfg.Whisper.Language,
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
		"--output-file", outputPrefix,
	}
	if t.cfg.Whisper.Prompt != "" {
		args = append(args, "--prompt", t.cfg.Whisper.Prompt)
	}

	if _, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	return outputPrefix + ".srt", nil
}
