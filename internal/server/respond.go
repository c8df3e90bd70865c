package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nguyentantai21042004/vibesync/internal/renderer"
	"github.com/nguyentantai21042004/vibesync/internal/session"
	"github.com/nguyentantai21042004/vibesync/internal/timeline"
	"github.com/nguyentantai21042004/vibesync/internal/transcriber"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps typed core errors onto status codes; the core never
// decides presentation, only the tag.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, timeline.ErrInvalidSegment),
		errors.Is(err, transcriber.ErrInputTooLarge):
		status = http.StatusBadRequest
	case errors.Is(err, timeline.ErrNotFound),
		errors.Is(err, session.ErrNoSession):
		status = http.StatusNotFound
	case errors.Is(err, renderer.ErrBurnInProgress):
		status = http.StatusConflict
	case errors.Is(err, renderer.ErrTranscodeFailed):
		status = http.StatusBadGateway
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
