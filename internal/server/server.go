// Package server exposes the shareable snapshot view: a link created from a
// finalized brief renders the document projection for anyone holding it.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-briefwizard/pkg/i18n"
	"github.com/goliatone/go-briefwizard/pkg/projection"
)

// Server renders shared briefs over HTTP.
type Server struct {
	locale i18n.Locale
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLocale sets the rendering language.
func WithLocale(locale i18n.Locale) Option {
	return func(s *Server) { s.locale = locale }
}

// WithLogger routes request outcomes through the given logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the render timestamp source. Tests use this.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}

// New builds a Server.
func New(options ...Option) *Server {
	s := &Server{
		locale: i18n.DefaultLocale,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Get("/brief/view", s.handleView)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

// handleView decodes and validates the snapshot token. Any failure renders
// the not-found state; partial data never reaches the page.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("data")
	if token == "" {
		s.renderNotFound(w)
		return
	}

	record, err := projection.DecodeSnapshot(token)
	if err != nil {
		var decodeErr *projection.DecodeError
		if errors.As(err, &decodeErr) {
			s.logger.Info("rejected snapshot token", "stage", decodeErr.Stage)
		}
		s.renderNotFound(w)
		return
	}

	doc, err := projection.RenderDocument(record, s.locale, s.now())
	if err != nil {
		s.logger.Error("document render failed", "brief_id", record.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc.HTML))
}

func (s *Server) renderNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(notFoundPage(s.locale)))
}

func notFoundPage(locale i18n.Locale) string {
	title := "Brief no encontrado"
	body := "El enlace no contiene un brief válido."
	if locale == i18n.LocaleEN {
		title = "Brief not found"
		body = "The link does not contain a valid brief."
	}
	return `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>` + title + `</title></head>
<body>
  <h1>` + title + `</h1>
  <p>` + body + `</p>
</body>
</html>
`
}
