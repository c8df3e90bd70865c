package config

import "fmt"

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Limits  LimitsConfig  `yaml:"limits"`
	Whisper WhisperConfig `yaml:"whisper"`
	FFmpeg  FFmpegConfig  `yaml:"ffmpeg"`
	Style   StyleConfig   `yaml:"style"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LimitsConfig struct {
	// MaxUploadBytes is the hard ceiling on source media size. Uploads
	// above it are rejected before any engine invocation.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
	// MaxDurationSeconds caps probed media duration; 0 disables the check.
	MaxDurationSeconds float64 `yaml:"max_duration_seconds"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	Encoder    string `yaml:"encoder"`
	Preset     string `yaml:"preset"`
	AudioCodec string `yaml:"audio_codec"`
}

// StyleConfig is the single style directive passed through to the
// subtitles overlay filter (force_style).
type StyleConfig struct {
	FontSize      int    `yaml:"font_size"`
	PrimaryColour string `yaml:"primary_colour"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Work     string `yaml:"work"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Limits.MaxUploadBytes == 0 {
		c.Limits.MaxUploadBytes = 100_000_000
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.FFmpeg.Encoder == "" {
		c.FFmpeg.Encoder = "libx264"
	}
	if c.FFmpeg.Preset == "" {
		// Turnaround time over quality for interactive burns
		c.FFmpeg.Preset = "ultrafast"
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "copy"
	}
	if c.Style.FontSize == 0 {
		c.Style.FontSize = 24
	}
	if c.Style.PrimaryColour == "" {
		c.Style.PrimaryColour = "&HFFFFFF&"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Work == "" {
		c.Paths.Work = "data/work"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
