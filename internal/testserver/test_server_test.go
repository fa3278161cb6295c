package testserver_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/hireboard/internal/testserver"
	"github.com/stretchr/testify/require"
)

func connectHTTP(t *testing.T, ts *testserver.TestServer) *sdkmcp.ClientSession {
	t.Helper()
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	cs, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{
		Endpoint:   ts.URL("/mcp"),
		MaxRetries: -1,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestStack_SeededOnStartup(t *testing.T) {
	ts := testserver.New(t, 7)

	require.Len(t, ts.Dashboard.AllActivity(t.Context()).Records, testserver.FeedSize)
	require.Equal(t, testserver.FeedSize, ts.Dashboard.UnreadCount(t.Context()))

	status, body := get(t, ts.URL("/dashboard/activities"))
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, testserver.RecentLimit, strings.Count(body, "data-activity-id="))
}

func TestStack_MCPOverHTTPSharesState(t *testing.T) {
	ts := testserver.New(t, 11)
	cs := connectHTTP(t, ts)

	res, err := cs.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: "mark_all_read"})
	require.NoError(t, err)
	require.False(t, res.IsError)

	status, body := get(t, ts.URL("/api/activities"))
	require.Equal(t, http.StatusOK, status)

	var payload struct {
		Activities []struct {
			ID     string `json:"id"`
			IsRead bool   `json:"is_read"`
		} `json:"activities"`
		Unread int `json:"unread"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.Zero(t, payload.Unread)
	require.Len(t, payload.Activities, testserver.RecentLimit)
	for _, a := range payload.Activities {
		require.True(t, a.IsRead, a.ID)
	}
}

func TestStack_MetricsExposed(t *testing.T) {
	ts := testserver.New(t, 3)

	resp, err := http.Post(ts.URL("/dashboard/activities/refresh"), "", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	status, body := get(t, ts.URL("/metrics"))
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "hireboard_activity_generations_total 2")
	require.Contains(t, body, "hireboard_pipeline_generations_total 1")
}
