// Package server exposes the caption pipeline as an upload form over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/user/memegen/pkg/orchestrator"
	"github.com/user/memegen/pkg/ports"
)

// Form field names of the upload form.
const (
	fieldFile   = "file"
	fieldTop    = "topText"
	fieldBottom = "bottomText"
)

// Error kinds passed to the index page through the error query parameter.
const (
	kindCorrupt = "corrupt"
	kindFormat  = "format"
	kindSize    = "size"
	kindGeneric = "generic"
)

var errorMessages = map[string]string{
	kindCorrupt: "Gif doesn't contain metadata, might be corrupted",
	kindFormat:  "Must be a gif, png, jpg or jpeg file",
	kindSize:    "File size exceeded",
	kindGeneric: "Something went wrong",
}

var errTooLarge = errors.New("upload exceeds size limit")

// Processor runs a caption request.
type Processor interface {
	Process(ctx context.Context, req orchestrator.Request) (orchestrator.Result, error)
}

// Options configures the HTTP listener.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server handles meme uploads.
type Server struct {
	processor      Processor
	maxUploadBytes int64
	logger         ports.Logger
	started        time.Time
	mux            *http.ServeMux
}

// New creates a new Server. Uploads larger than maxUploadBytes are rejected.
func New(processor Processor, maxUploadBytes int64, logger ports.Logger) *Server {
	s := &Server{
		processor:      processor,
		maxUploadBytes: maxUploadBytes,
		logger:         logger.WithComponent("server"),
		started:        time.Now(),
		mux:            http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /{$}", s.handleUpload)
	s.mux.HandleFunc("GET /health", s.handleHealth)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Run listens on opts.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, opts Options) error {
	srv := &http.Server{
		Addr:         opts.Addr,
		Handler:      s,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening on %s", opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := RenderIndex(PageVars{
		Title:      "memegen",
		Error:      errorMessages[r.URL.Query().Get("error")],
		MaxUpload:  formatBytes(s.maxUploadBytes),
		Extensions: ".gif,.png,.jpg,.jpeg",
	})
	if err != nil {
		s.logger.Error("Failed to render index: %v", err)
		http.Error(w, errorMessages[kindGeneric], http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > s.maxUploadBytes {
		s.fail(w, r, errTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.fail(w, r, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(fieldFile)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	// The result is buffered so a failure midway can still redirect.
	var buf bytes.Buffer
	result, err := s.processor.Process(r.Context(), orchestrator.Request{
		Filename: header.Filename,
		Data:     data,
		Captions: ports.Captions{
			Top:    r.FormValue(fieldTop),
			Bottom: r.FormValue(fieldBottom),
		},
		Output: &buf,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename="+result.Filename)
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn("Failed to write response: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "alive",
		"uptime": int64(time.Since(s.started).Seconds()),
	})
}

// fail redirects to the index page with the error kind of err.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	kind := errorKind(err)
	s.logger.Warn("Upload failed (%s): %v", kind, err)
	http.Redirect(w, r, "/?error="+kind, http.StatusSeeOther)
}

// errorKind classifies err into one of the messages shown on the index page.
func errorKind(err error) string {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.Is(err, ports.ErrCorruptAnimation):
		return kindCorrupt
	case errors.Is(err, ports.ErrUnsupportedFormat):
		return kindFormat
	case errors.Is(err, errTooLarge),
		errors.Is(err, multipart.ErrMessageTooLarge),
		errors.As(err, &maxBytes):
		return kindSize
	default:
		return kindGeneric
	}
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
