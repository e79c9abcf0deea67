// Package uploads accepts icon files over multipart form data and serves
// them back as static content. Filenames are timestamp-prefixed and
// sanitized; nothing here touches the record store.
package uploads

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

const maxUploadBytes = 5 << 20 // 5 MB

type Handler struct {
	dir string
	log *slog.Logger
}

func NewHandler(dir string, log *slog.Logger) *Handler {
	return &Handler{
		dir: dir,
		log: log.With("component", "uploads_handler"),
	}
}

// Upload handles POST /api/v1/uploads (multipart/form-data, field "file").
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid multipart")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitize(header.Filename))

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		h.log.Error("failed to create upload dir", "dir", h.dir, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store file")
		return
	}

	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		h.log.Error("failed to create upload file", "name", name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		h.log.Error("failed to write upload", "name", name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to store file")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"data":    map[string]string{"url": "/uploads/" + name},
	})
}

// ServeFile handles GET /uploads/{filename}.
func (h *Handler) ServeFile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	cleaned := filepath.Clean(name)
	if cleaned != filepath.Base(cleaned) || strings.Contains(cleaned, "..") {
		writeError(w, http.StatusBadRequest, "invalid filename")
		return
	}
	path := filepath.Join(h.dir, cleaned)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}

// sanitize keeps the character set the frontend expects in icon URLs.
func sanitize(name string) string {
	base := filepath.Base(name)
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   map[string]string{"message": message},
	})
}
