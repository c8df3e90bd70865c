package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/vibesync/internal/export"
	"github.com/nguyentantai21042004/vibesync/internal/renderer"
)

// handleUpload receives the source video (multipart field "video"),
// stores it in the work namespace, and replaces the session with it.
// The byte ceiling itself is enforced by the transcription adapter; the
// request body limit only stops a runaway stream one byte past it.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	limit := s.cfg.Limits.MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, limit+(64<<10)) // headroom for multipart framing

	file, header, err := r.FormFile("video")
	if err != nil {
		writeError(w, fmt.Errorf("read upload: %w", err))
		return
	}
	defer file.Close()

	path := filepath.Join(s.cfg.Paths.Work, "upload-"+uuid.NewString()+filepath.Ext(header.Filename))
	dst, err := os.Create(path)
	if err != nil {
		writeError(w, fmt.Errorf("stage upload: %w", err))
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(path)
		writeError(w, fmt.Errorf("stage upload: %w", err))
		return
	}
	dst.Close()

	if err := s.session.Upload(r.Context(), header.Filename, path); err != nil {
		writeError(w, err)
		return
	}

	segments, err := s.session.Segments()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"source":   header.Filename,
		"segments": segments,
	})
}

func (s *Server) handleCaptions(w http.ResponseWriter, r *http.Request) {
	segments, err := s.session.Segments()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"segments": segments})
}

func (s *Server) handleUpdateCaption(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, fmt.Errorf("invalid caption id %q", r.PathValue("id")))
		return
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	if err := s.session.UpdateText(id, body.Text); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"id": id, "text": body.Text})
}

func (s *Server) handleActiveCaption(w http.ResponseWriter, r *http.Request) {
	t, err := strconv.ParseFloat(r.URL.Query().Get("t"), 64)
	if err != nil {
		writeError(w, fmt.Errorf("invalid timestamp %q", r.URL.Query().Get("t")))
		return
	}

	seg, ok, err := s.session.ActiveAt(t)
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{"active": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"active": seg})
}

func (s *Server) handleSubtitles(w http.ResponseWriter, r *http.Request) {
	srt, err := s.session.RenderSRT()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/x-subrip")
	w.Header().Set("Content-Disposition", `attachment; filename="subtitles.srt"`)
	io.WriteString(w, srt)
}

func (s *Server) handleBurn(w http.ResponseWriter, r *http.Request) {
	style := renderer.Style{
		FontSize:      s.cfg.Style.FontSize,
		PrimaryColour: s.cfg.Style.PrimaryColour,
	}
	if r.ContentLength > 0 {
		var body struct {
			FontSize      *int    `json:"font_size"`
			PrimaryColour *string `json:"primary_colour"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, err)
			return
		}
		if body.FontSize != nil {
			style.FontSize = *body.FontSize
		}
		if body.PrimaryColour != nil {
			style.PrimaryColour = *body.PrimaryColour
		}
	}

	artifact, err := s.session.Burn(r.Context(), style)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", artifact.MIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	w.Write(artifact.Data)
}

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	segments, err := s.session.Segments()
	if err != nil {
		writeError(w, err)
		return
	}
	name, err := s.session.SourceName()
	if err != nil {
		writeError(w, err)
		return
	}

	path := filepath.Join(s.cfg.Paths.Work, "transcript-"+uuid.NewString()+".docx")
	defer os.Remove(path)
	if err := export.WriteTranscript(name, segments, path); err != nil {
		writeError(w, fmt.Errorf("write transcript: %w", err))
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		writeError(w, fmt.Errorf("read transcript: %w", err))
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", `attachment; filename="transcript.docx"`)
	w.Write(data)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"state": s.session.State().String(),
	}
	if name, err := s.session.SourceName(); err == nil {
		status["source"] = name
	}
	if segments, err := s.session.Segments(); err == nil {
		status["segments"] = len(segments)
	}
	if err := s.session.LastRenderError(); err != nil {
		status["last_error"] = err.Error()
	}
	writeJSON(w, http.StatusOK, status)
}
