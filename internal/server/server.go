// Package server is the HTTP read/dispatch surface over the session.
// It holds no caption state of its own: every handler reads from or
// dispatches to the session and translates typed core errors into
// status codes.
package server

import (
	"net/http"

	"github.com/nguyentantai21042004/vibesync/internal/config"
	"github.com/nguyentantai21042004/vibesync/internal/logger"
	"github.com/nguyentantai21042004/vibesync/internal/session"
)

type Server struct {
	cfg     *config.Config
	logger  logger.Logger
	session *session.Session
}

// New creates the HTTP layer around an existing session.
func New(cfg *config.Config, log logger.Logger, sess *session.Session) *Server {
	return &Server{
		cfg:     cfg,
		logger:  log,
		session: sess,
	}
}

// Routes builds the request mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("GET /captions", s.handleCaptions)
	mux.HandleFunc("PUT /captions/{id}", s.handleUpdateCaption)
	mux.HandleFunc("GET /captions/active", s.handleActiveCaption)
	mux.HandleFunc("GET /subtitles.srt", s.handleSubtitles)
	mux.HandleFunc("POST /burn", s.handleBurn)
	mux.HandleFunc("GET /transcript.docx", s.handleTranscript)
	mux.HandleFunc("GET /status", s.handleStatus)
	return mux
}
