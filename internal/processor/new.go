package processor

import (
	"github.com/nguyentantai21042004/vibesync/internal/config"
	"github.com/nguyentantai21042004/vibesync/internal/logger"
	"github.com/nguyentantai21042004/vibesync/internal/renderer"
	"github.com/nguyentantai21042004/vibesync/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	renderer    renderer.Renderer
	logger      logger.Logger
}

// New creates a new Processor instance sharing the pipeline handles
// used by the interactive session.
func New(cfg *config.Config, tr transcriber.Transcriber, rd renderer.Renderer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		transcriber: tr,
		renderer:    rd,
		logger:      log,
	}
}
