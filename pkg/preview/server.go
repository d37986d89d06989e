package preview

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mizushino/lit-builder/internal/dev"
	"github.com/mizushino/lit-builder/pkg/template"
)

// tracerName identifies the preview tracer.
const tracerName = "lit-builder"

// Config configures the preview server.
type Config struct {
	// Host and Port form the listen address.
	Host string
	Port int

	// Source compiles the current descriptor tree. Called once per
	// request so edits are picked up without restart.
	Source func() (*template.Result, error)

	// Title, Lang and StyleSheets feed the document shell.
	Title       string
	Lang        string
	StyleSheets []string

	// LiveReload injects the reload client and serves its websocket.
	LiveReload bool

	// Registry receives the preview metrics. A private registry is
	// created when nil.
	Registry *prometheus.Registry
}

// Server serves a compiled descriptor tree over HTTP for development.
type Server struct {
	config  Config
	router  chi.Router
	reload  *dev.ReloadServer
	metrics *metrics
	tracer  trace.Tracer
}

// NewServer creates a preview server for the given configuration.
func NewServer(config Config) *Server {
	registry := config.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	s := &Server{
		config: config,
		reload: dev.NewReloadServer(),
		tracer: otel.Tracer(tracerName),
	}
	s.metrics = newMetrics(registry, s.reload.ClientCount)

	r := chi.NewRouter()
	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP)
	if config.LiveReload {
		r.Get("/_reload/ws", s.reload.HandleWebSocket)
	}
	s.router = r

	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// ListenAndServe runs the server until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Addr(),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// NotifyChange recompiles the source and pushes the outcome to connected
// browsers: a reload on success, the error text on failure.
func (s *Server) NotifyChange(path string) {
	if _, err := s.config.Source(); err != nil {
		s.reload.NotifyError(err.Error())
		return
	}
	s.reload.ClearError()
	s.reload.NotifyReload(path)
}

// handleIndex compiles and renders the descriptor tree.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "preview.render")
	defer span.End()

	start := time.Now()
	res, err := s.config.Source()
	if err != nil {
		s.metrics.buildsTotal.WithLabelValues("error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page := template.PageData{
		Body:        res,
		Title:       s.config.Title,
		Lang:        s.config.Lang,
		StyleSheets: s.config.StyleSheets,
	}
	if s.config.LiveReload {
		page.InlineScripts = []string{dev.ClientScript}
	}

	var buf bytes.Buffer
	renderer := template.NewRenderer(template.RendererConfig{})
	if err := renderer.RenderPage(&buf, page); err != nil {
		s.metrics.buildsTotal.WithLabelValues("error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.metrics.buildsTotal.WithLabelValues("ok").Inc()
	s.metrics.buildDuration.Observe(time.Since(start).Seconds())
	span.SetAttributes(
		attribute.Int("preview.bytes", buf.Len()),
		attribute.Int("preview.values", len(res.Values)),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}
