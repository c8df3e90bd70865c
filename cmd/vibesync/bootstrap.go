package main

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/vibesync/internal/config"
	"github.com/nguyentantai21042004/vibesync/internal/logger"
	"github.com/nguyentantai21042004/vibesync/internal/renderer"
	"github.com/nguyentantai21042004/vibesync/internal/transcriber"
	"github.com/nguyentantai21042004/vibesync/pkg/executor"
)

// pipeline bundles the shared handles both commands build on. The
// executor is the single injected engine handle; nothing else spawns
// ffmpeg or whisper directly.
type pipeline struct {
	cfg         *config.Config
	log         logger.Logger
	transcriber transcriber.Transcriber
	renderer    renderer.Renderer
}

func buildPipeline(configPath string) (*pipeline, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Logging.Level)

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	exec := executor.New()
	return &pipeline{
		cfg:         cfg,
		log:         log,
		transcriber: transcriber.New(cfg, exec, log),
		renderer:    renderer.New(cfg, exec, log),
	}, nil
}

// ensureDirectories creates the working directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Work,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
