package mcp

import (
	"net/http"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// SessionTimeout closes streamable HTTP sessions idle for longer than this.
const SessionTimeout = 30 * time.Minute

// NewHTTPHandler serves server over the streamable HTTP transport.
func NewHTTPHandler(server *sdkmcp.Server) http.Handler {
	return sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{SessionTimeout: SessionTimeout},
	)
}
