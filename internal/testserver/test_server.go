// Package testserver starts the full HTTP stack on an httptest server.
package testserver

import (
	"math/rand/v2"
	"net/http/httptest"
	"testing"

	"github.com/rpggio/hireboard/internal/dashboard"
	"github.com/rpggio/hireboard/internal/domain/activity"
	"github.com/rpggio/hireboard/internal/domain/pipeline"
	"github.com/rpggio/hireboard/internal/mcp"
	"github.com/rpggio/hireboard/internal/metrics"
	"github.com/rpggio/hireboard/internal/render"
	"github.com/rpggio/hireboard/internal/transport"
	"github.com/stretchr/testify/require"
)

// Sizes used to seed the dashboard.
const (
	FeedSize     = 20
	RecentLimit  = 5
	PipelineSize = 20
)

type TestServer struct {
	Server    *httptest.Server
	Dashboard *dashboard.Service
	Metrics   *metrics.Recorder
}

// New seeds a dashboard from seed and serves it with the MCP endpoint mounted.
func New(t *testing.T, seed uint64) *TestServer {
	t.Helper()

	rec := metrics.New()
	feed := activity.NewStore(activity.Options{Source: rand.New(rand.NewPCG(seed, 1))})
	board := pipeline.NewBoard(pipeline.Options{Source: rand.New(rand.NewPCG(seed, 2))})
	dash := dashboard.NewService(feed, board, rec, dashboard.Config{
		FeedSize:     FeedSize,
		RecentLimit:  RecentLimit,
		PipelineSize: PipelineSize,
	}, nil)
	require.NoError(t, dash.Seed(t.Context()))

	renderer, err := render.New()
	require.NoError(t, err)

	mcpServer := mcp.NewServer(mcp.Config{Dashboard: dash, Metrics: rec})
	server := httptest.NewServer(transport.NewServer(transport.Options{
		Dashboard: dash,
		Renderer:  renderer,
		Metrics:   rec.Handler(),
		MCP:       mcp.NewHTTPHandler(mcpServer),
	}))
	t.Cleanup(server.Close)

	return &TestServer{
		Server:    server,
		Dashboard: dash,
		Metrics:   rec,
	}
}

// URL joins path onto the server's base URL.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}
