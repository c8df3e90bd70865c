package renderer

import (
	"sync"

	"github.com/nguyentantai21042004/vibesync/internal/config"
	"github.com/nguyentantai21042004/vibesync/internal/logger"
	"github.com/nguyentantai21042004/vibesync/pkg/executor"
)

type implRenderer struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger

	// inflight is the sole mutual exclusion for the engine workspace:
	// TryLock makes a concurrent burn fail fast instead of queueing.
	inflight sync.Mutex

	mu      sync.Mutex
	state   State
	lastErr error
}

// New creates a new Renderer instance. The executor is the injected
// handle to the transcoding engine; the renderer never owns its
// lifecycle.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Renderer {
	return &implRenderer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
		state:    StateIdle,
	}
}

func (r *implRenderer) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}

// State reports the current pipeline state.
func (r *implRenderer) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// LastError returns the most recent burn failure, nil after a success.
func (r *implRenderer) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

func (r *implRenderer) setLastError(err error) {
	r.mu.Lock()
	r.lastErr = err
	r.mu.Unlock()
}
