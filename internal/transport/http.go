package transport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpggio/hireboard/internal/dashboard"
	"github.com/rpggio/hireboard/internal/domain/activity"
	"github.com/rpggio/hireboard/internal/domain/pipeline"
	"github.com/rpggio/hireboard/internal/render"
)

// RefreshNoticeHeader carries the transient confirmation shown after a refresh.
const RefreshNoticeHeader = "X-Refresh-Notice"

// Dashboard is the subset of the dashboard service the HTTP routes need.
type Dashboard interface {
	RefreshActivities(ctx context.Context, count *int) (activity.Batch, error)
	RecentActivity(ctx context.Context, limit *int) (activity.View, error)
	AllActivity(ctx context.Context) activity.View
	MarkAllRead(ctx context.Context) int
	UnreadCount(ctx context.Context) int
	Pipeline(ctx context.Context) pipeline.Snapshot
	Now() time.Time
}

// Options wires the router's collaborators. Metrics and MCP are optional.
type Options struct {
	Dashboard Dashboard
	Renderer  *render.Renderer
	Metrics   http.Handler
	MCP       http.Handler
	Logger    *slog.Logger
}

// Server holds the HTTP handlers.
type Server struct {
	dashboard Dashboard
	renderer  *render.Renderer
	logger    *slog.Logger
}

// NewServer creates an HTTP server router with middleware.
func NewServer(opts Options) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	srv := &Server{
		dashboard: opts.Dashboard,
		renderer:  opts.Renderer,
		logger:    logger,
	}

	r.Get("/health", srv.handleHealth)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}
	if opts.MCP != nil {
		r.Handle("/mcp", opts.MCP)
	}

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/activities", srv.handleRecentActivities)
		r.Get("/activities/all", srv.handleAllActivities)
		r.Get("/activities/unread", srv.handleUnreadBadge)
		r.Post("/activities/refresh", srv.handleRefreshActivities)
		r.Post("/activities/read", srv.handleMarkAllRead)
		r.Get("/pipeline", srv.handlePipeline)
	})
	r.Get("/api/activities", srv.handleActivitiesJSON)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRecentActivities(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit")
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.renderRecent(w, r, limit)
}

func (s *Server) handleAllActivities(w http.ResponseWriter, r *http.Request) {
	view := s.dashboard.AllActivity(r.Context())
	s.writeHTML(w, func(buf io.Writer) error {
		return s.renderer.ActivityModal(buf, view.Records, view.Unread, s.dashboard.Now())
	})
}

// handleUnreadBadge renders the header badge alone, for polling.
func (s *Server) handleUnreadBadge(w http.ResponseWriter, r *http.Request) {
	unread := s.dashboard.UnreadCount(r.Context())
	s.writeHTML(w, func(buf io.Writer) error {
		return s.renderer.UnreadBadge(buf, render.UnreadBadgeID, unread)
	})
}

func (s *Server) handleRefreshActivities(w http.ResponseWriter, r *http.Request) {
	count, err := intQuery(r, "count")
	if err != nil {
		s.writeError(w, err)
		return
	}
	if _, err := s.dashboard.RefreshActivities(r.Context(), count); err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set(RefreshNoticeHeader, dashboard.RefreshNotice)
	s.renderRecent(w, r, nil)
}

func (s *Server) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	s.dashboard.MarkAllRead(r.Context())
	s.renderRecent(w, r, nil)
}

func (s *Server) handlePipeline(w http.ResponseWriter, r *http.Request) {
	snap := s.dashboard.Pipeline(r.Context())
	s.writeHTML(w, func(buf io.Writer) error {
		return s.renderer.Pipeline(buf, snap)
	})
}

type activitiesResponse struct {
	BatchID    string            `json:"batch_id"`
	Activities []activity.Record `json:"activities"`
	Total      int               `json:"total"`
	Unread     int               `json:"unread"`
}

func (s *Server) handleActivitiesJSON(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit")
	if err != nil {
		s.writeError(w, err)
		return
	}
	view, err := s.dashboard.RecentActivity(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	records := view.Records
	if records == nil {
		records = []activity.Record{}
	}
	writeJSON(w, http.StatusOK, activitiesResponse{
		BatchID:    view.Batch.ID,
		Activities: records,
		Total:      view.Total,
		Unread:     view.Unread,
	})
}

func (s *Server) renderRecent(w http.ResponseWriter, r *http.Request, limit *int) {
	view, err := s.dashboard.RecentActivity(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeHTML(w, func(buf io.Writer) error {
		return s.renderer.ActivityList(buf, view.Records, view.Unread, s.dashboard.Now())
	})
}

// writeHTML renders into a buffer first so a template failure still yields a clean 500.
func (s *Server) writeHTML(w http.ResponseWriter, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	if isInvalidArgument(err) {
		writeErrorJSON(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}
	s.logger.Error("request failed", "error", err)
	writeErrorJSON(w, http.StatusInternalServerError, "INTERNAL", "internal error")
}

var errBadQuery = errors.New("invalid query parameter")

// intQuery reads an optional integer query parameter. Absent means nil.
func intQuery(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Join(errBadQuery, err)
	}
	return &n, nil
}

func isInvalidArgument(err error) bool {
	return errors.Is(err, errBadQuery) ||
		errors.Is(err, activity.ErrInvalidArgument) ||
		errors.Is(err, pipeline.ErrInvalidArgument)
}
