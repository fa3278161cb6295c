package mcp

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/hireboard/internal/metrics"
)

const methodCallTool = "tools/call"

// unknownTool labels calls to names that were never registered, keeping the
// metric's label set bounded.
const unknownTool = "unknown"

// toolCallMiddleware counts every tools/call by tool and outcome, and logs it
// together with the feed generation it ran against.
func toolCallMiddleware(svc DashboardService, rec *metrics.Recorder, logger *slog.Logger, tools toolSet) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			call, ok := req.(*sdkmcp.CallToolRequest)
			if method != methodCallTool || !ok || call.Params == nil {
				logger.DebugContext(ctx, "mcp request", "method", method)
				return next(ctx, method, req)
			}

			name := call.Params.Name
			if !tools[name] {
				name = unknownTool
			}

			start := time.Now()
			result, err := next(ctx, method, req)
			failed := err != nil
			if res, ok := result.(*sdkmcp.CallToolResult); ok && res != nil && res.IsError {
				failed = true
			}
			rec.ToolCalled(name, failed)

			attrs := []any{
				"tool", call.Params.Name,
				"batch_id", svc.FeedBatch(ctx).ID,
				"failed", failed,
				"duration", time.Since(start),
			}
			if err != nil {
				attrs = append(attrs, "error", err)
			}
			logger.InfoContext(ctx, "tool call", attrs...)
			return result, err
		}
	}
}
