// Package server implements the HTTP surface of the name tag generator: the
// six-slot form page, the PDF endpoint and a JSON layout preview.
package server

import (
	"context"
	_ "embed"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/chtl/nametags/internal/middleware"
	"github.com/chtl/nametags/layout"
)

//go:embed form.html
var formHTML string

var formPage = template.Must(template.New("form").Parse(formHTML))

// SheetGenerator defines the generation operations the handlers depend on.
// *nametags.Generator satisfies it; tests inject a fake.
type SheetGenerator interface {
	Generate(ctx context.Context, w io.Writer, entries []layout.TagEntry, background bool) error
	Layout(entries []layout.TagEntry) ([]layout.TagPlacement, error)
	HasTemplate() bool
}

// Server holds the handler dependencies.
type Server struct {
	gen     SheetGenerator
	logo    []byte
	log     *slog.Logger
	maxBody int64
}

// New constructs a Server. logo is served at /logo.png for the form page.
func New(gen SheetGenerator, logo []byte, log *slog.Logger, maxBody int64) *Server {
	return &Server{gen: gen, logo: logo, log: log, maxBody: maxBody}
}

// Routes returns the router with all middleware applied.
// Middleware order: RequestID, RealIP, request logger, Recoverer, body limit.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(s.log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewMaxBodySizeHandler(s.maxBody))

	r.Get("/", s.handleForm)
	r.Get("/logo.png", s.handleLogo)
	r.Get("/healthz", s.handleHealth)
	r.Post("/sheet.pdf", s.handleSheet)
	r.Post("/api/layout", s.handleLayout)
	return r
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Slots       []int
		HasTemplate bool
	}{
		Slots:       make([]int, layout.Slots),
		HasTemplate: s.gen.HasTemplate(),
	}
	for i := range data.Slots {
		data.Slots[i] = i
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := formPage.Execute(w, data); err != nil {
		s.log.ErrorContext(r.Context(), "rendering form page", "error", err)
	}
}

func (s *Server) handleLogo(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(s.logo)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
