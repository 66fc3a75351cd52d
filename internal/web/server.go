// Package web serves the browser UI and its htmx fragment endpoints.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/runoshun/issue-drafter/internal/infra/markdown"
	"github.com/runoshun/issue-drafter/internal/usecase"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Deps holds the use cases and helpers the server needs.
// Fields are ordered to minimize memory padding.
type Deps struct {
	GenerateIssue    *usecase.GenerateIssue
	ShowIssue        *usecase.ShowIssue
	ListIssues       *usecase.ListIssues
	AddRepository    *usecase.AddRepository
	ListRepositories *usecase.ListRepositories
	DeleteRepository *usecase.DeleteRepository
	Renderer         *markdown.Renderer
	Logger           *zap.Logger
}

// Server is the HTTP front end.
type Server struct {
	deps    Deps
	tmpl    *template.Template
	logger  *zap.Logger
	handler http.Handler
}

// New parses the embedded templates and builds the route table.
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Renderer == nil {
		deps.Renderer = markdown.NewRenderer()
	}

	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		deps:   deps,
		tmpl:   tmpl,
		logger: deps.Logger,
	}
	s.handler = s.routes()
	return s, nil
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /history", s.handleHistory)
	mux.HandleFunc("GET /settings", s.handleSettings)
	mux.HandleFunc("GET /preview/{issue_id}", s.handlePreview)
	mux.HandleFunc("GET /preview/{issue_id}/markdown", s.handlePreviewMarkdown)
	mux.HandleFunc("POST /api/requests", s.handleCreateRequest)
	mux.HandleFunc("POST /api/repos", s.handleAddRepo)
	mux.HandleFunc("DELETE /api/repos/{id}", s.handleDeleteRepo)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.recoverer(s.logRequests(mux))
}

// Run listens on addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts
// down gracefully. In-flight requests get shutdownTimeout to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          zap.NewStdLog(s.logger),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("server listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

var templateFuncs = template.FuncMap{
	"fmtTime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Local().Format("2006-01-02 15:04")
	},
}
