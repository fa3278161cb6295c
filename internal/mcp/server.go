package mcp

import (
	"context"
	"io"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/hireboard/internal/domain/activity"
	"github.com/rpggio/hireboard/internal/domain/pipeline"
	"github.com/rpggio/hireboard/internal/metrics"
)

// ServerName is reported to clients during initialization.
const ServerName = "hireboard"

// DashboardService defines dashboard operations needed by MCP.
type DashboardService interface {
	RefreshActivities(ctx context.Context, count *int) (activity.Batch, error)
	RecentActivity(ctx context.Context, limit *int) (activity.View, error)
	AllActivity(ctx context.Context) activity.View
	MarkAllRead(ctx context.Context) int
	UnreadCount(ctx context.Context) int
	FeedBatch(ctx context.Context) activity.Batch
	RefreshPipeline(ctx context.Context, count *int) (string, error)
	Pipeline(ctx context.Context) pipeline.Snapshot
	Now() time.Time
}

// Config contains server configuration.
type Config struct {
	Dashboard DashboardService
	Metrics   *metrics.Recorder
	Logger    *slog.Logger
	Version   string
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Version == "" {
		cfg.Version = "0.1.0"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    ServerName,
		Version: cfg.Version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)
	tools := registerTools(server, cfg.Dashboard)
	server.AddReceivingMiddleware(toolCallMiddleware(cfg.Dashboard, cfg.Metrics, cfg.Logger, tools))

	return server
}
