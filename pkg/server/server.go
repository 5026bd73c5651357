// Package server exposes the layout engine over HTTP for display runtimes:
// REST endpoints for board state, per-slide layouts and previews, plus a
// websocket that pushes fresh layouts when the board files change on disk.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/askoeller/menuboard/pkg/board"
	"github.com/askoeller/menuboard/pkg/buildinfo"
	"github.com/askoeller/menuboard/pkg/catalog"
	"github.com/askoeller/menuboard/pkg/errors"
	"github.com/askoeller/menuboard/pkg/pipeline"
)

const (
	// DefaultAddr is the listen address when none is configured.
	DefaultAddr = ":8080"

	maxBodyBytes    = 1 << 20 // 1 MB request body cap
	shutdownTimeout = 5 * time.Second
)

// Config holds the server configuration.
type Config struct {
	Addr         string
	TemplatePath string
	CatalogPath  string
	Watch        bool // reload and broadcast when board files change
	Logger       *log.Logger
}

// Server serves board layouts to display runtimes. The loaded board is
// swapped atomically under the mutex when files change.
type Server struct {
	cfg    Config
	runner *pipeline.Runner
	logger *log.Logger
	hub    *hub

	mu       sync.RWMutex
	template *board.Template
	catalog  *catalog.Catalog
}

// New creates a server and loads the initial board from disk. A nil runner
// gets a cacheless default.
func New(cfg Config, runner *pipeline.Runner) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}

	s := &Server{
		cfg:    cfg,
		runner: runner,
		logger: cfg.Logger,
		hub:    newHub(cfg.Logger),
	}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Run serves HTTP until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.hub.run(ctx)
	if s.cfg.Watch {
		go func() {
			if err := s.watchFiles(ctx); err != nil {
				s.logger.Error("file watcher stopped", "error", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// Handler builds the route tree. Exposed for tests.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(s.logger))
	r.Use(Recoverer(s.logger))
	r.Use(RequestBodyLimit(maxBodyBytes))

	r.Get("/healthz", s.handleHealth)
	r.Get("/ws", s.handleWS)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/board", s.handleBoard)
		r.Get("/schema", s.handleSchema)
		r.Get("/slides/{slideID}/layout", s.handleSlideLayout)
		r.Get("/slides/{slideID}/preview.svg", s.handleSlidePreview)
		r.Post("/layout", s.handleComputeLayout)
	})

	return r
}

// reload re-reads and validates the board files.
func (s *Server) reload() error {
	t, cat, err := s.runner.Load(pipeline.Options{
		TemplatePath: s.cfg.TemplatePath,
		CatalogPath:  s.cfg.CatalogPath,
		Logger:       s.logger,
	})
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.template, s.catalog = t, cat
	s.mu.Unlock()
	return nil
}

// board returns the currently loaded documents.
func (s *Server) board() (*board.Template, *catalog.Catalog) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.template, s.catalog
}

// =============================================================================
// Handlers
// =============================================================================

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type boardResponse struct {
	Template *board.Template  `json:"template"`
	Catalog  *catalog.Catalog `json:"catalog"`
}

// layoutRequest is the POST /api/v1/layout body: an ad-hoc template to lay
// out, optionally against a caller-supplied catalog.
type layoutRequest struct {
	Template    *board.Template  `json:"template"`
	Catalog     *catalog.Catalog `json:"catalog,omitempty"`
	SlideID     string           `json:"slide_id,omitempty"`
	ScreenWidth float64          `json:"screen_width,omitempty"`
	Style       string           `json:"style,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, healthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	t, cat := s.board()
	writeJSON(w, boardResponse{Template: t, Catalog: cat})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	data, err := board.SchemaJSON()
	if err != nil {
		writeErr(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (s *Server) handleSlideLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := queryOptions(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	opts.Template, opts.Catalog = s.board()
	opts.SlideID = chi.URLParam(r, "slideID")
	opts.Formats = []string{pipeline.FormatJSON}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(result.Artifacts[pipeline.FormatJSON])
}

func (s *Server) handleSlidePreview(w http.ResponseWriter, r *http.Request) {
	opts, err := queryOptions(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	opts.Template, opts.Catalog = s.board()
	opts.SlideID = chi.URLParam(r, "slideID")
	opts.Formats = []string{pipeline.FormatSVG}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(result.Artifacts[pipeline.FormatSVG])
}

func (s *Server) handleComputeLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "invalid request body: "+err.Error(),
			string(errors.ErrCodeInvalidInput), http.StatusBadRequest)
		return
	}
	if req.Template == nil {
		writeError(w, r, "template is required",
			string(errors.ErrCodeInvalidInput), http.StatusBadRequest)
		return
	}
	cat := req.Catalog
	if cat == nil {
		_, cat = s.board()
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Template:    req.Template,
		Catalog:     cat,
		SlideID:     req.SlideID,
		ScreenWidth: req.ScreenWidth,
		Style:       req.Style,
		Formats:     []string{pipeline.FormatJSON},
	})
	if err != nil {
		writeErr(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(result.Artifacts[pipeline.FormatJSON])
}

// queryOptions parses the shared layout query parameters.
func queryOptions(r *http.Request) (pipeline.Options, error) {
	opts := pipeline.Options{}
	if v := r.URL.Query().Get("width"); v != "" {
		width, err := strconv.ParseFloat(v, 64)
		if err != nil || width <= 0 {
			return opts, errors.New(errors.ErrCodeInvalidWidth, "invalid width %q", v)
		}
		opts.ScreenWidth = width
	}
	if v := r.URL.Query().Get("style"); v != "" {
		if err := pipeline.ValidateStyle(v); err != nil {
			return opts, err
		}
		opts.Style = v
	}
	opts.Refresh = r.URL.Query().Get("refresh") == "true"
	return opts, nil
}
