package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/hireboard/internal/config"
	"github.com/rpggio/hireboard/internal/dashboard"
	"github.com/rpggio/hireboard/internal/domain/activity"
	"github.com/rpggio/hireboard/internal/domain/pipeline"
	"github.com/rpggio/hireboard/internal/mcp"
	"github.com/rpggio/hireboard/internal/metrics"
	"github.com/rpggio/hireboard/internal/render"
	"github.com/rpggio/hireboard/internal/transport"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == config.ModeStdio {
		logWriter = os.Stderr
	}
	if cfg.Log.Path != "" {
		fileWriter, file, err := newLogFileWriter(cfg.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	unread, err := activity.ParseUnreadPolicy(cfg.Feed.UnreadPolicy)
	if err != nil {
		logger.Error("invalid unread policy", "error", err)
		os.Exit(1)
	}

	rec := metrics.New()
	feed := activity.NewStore(activity.Options{
		Source: newSource(cfg.Seed, 0),
		Unread: unread,
		Logger: logger,
	})
	board := pipeline.NewBoard(pipeline.Options{
		Source: newSource(cfg.Seed, 1),
		Logger: logger,
	})
	dashSvc := dashboard.NewService(feed, board, rec, dashboard.Config{
		FeedSize:     cfg.Feed.Size,
		RecentLimit:  cfg.Feed.RecentLimit,
		PipelineSize: cfg.Pipeline.Size,
	}, logger)

	if err := dashSvc.Seed(context.Background()); err != nil {
		logger.Error("failed to seed dashboard", "error", err)
		os.Exit(1)
	}

	mcpServer := mcp.NewServer(mcp.Config{
		Dashboard: dashSvc,
		Metrics:   rec,
		Logger:    logger,
		Version:   version,
	})

	if cfg.Transport.Mode == config.ModeStdio {
		runStdioMode(logger, mcpServer)
		return
	}

	renderer, err := render.New()
	if err != nil {
		logger.Error("failed to load templates", "error", err)
		os.Exit(1)
	}
	runHTTPMode(logger, cfg.Server, transport.Options{
		Dashboard: dashSvc,
		Renderer:  renderer,
		Metrics:   rec.Handler(),
		MCP:       mcp.NewHTTPHandler(mcpServer),
		Logger:    logger,
	})
}

// newSource derives one generator source per component from the configured seed.
func newSource(seed, offset uint64) activity.Source {
	if seed == 0 {
		return activity.NewSource(0)
	}
	return activity.NewSource(seed + offset)
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, server config.ServerConfig, opts transport.Options) {
	addr := fmt.Sprintf("%s:%d", server.Host, server.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           transport.NewServer(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

const (
	maxLogSizeBytes  = 6 * 1024 * 1024
	keepLogSizeBytes = 5 * 1024 * 1024
)

type logFileWriter struct {
	path string
	file *os.File
	mu   sync.Mutex
}

func newLogFileWriter(path string) (*logFileWriter, *os.File, error) {
	if err := ensureLogDir(path); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	writer := &logFileWriter{path: path, file: file}
	if err := writer.truncateIfNeeded(); err != nil {
		return nil, nil, err
	}
	return writer, file, nil
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (w *logFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := w.file.Write(p)
	if err != nil {
		return n, err
	}
	if err := w.truncateIfNeeded(); err != nil {
		return n, err
	}
	return n, nil
}

func (w *logFileWriter) truncateIfNeeded() error {
	info, err := w.file.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	if size <= maxLogSizeBytes {
		return nil
	}

	buf := make([]byte, keepLogSizeBytes)
	if _, err := w.file.Seek(size-keepLogSizeBytes, io.SeekStart); err != nil {
		return err
	}
	n, err := w.file.Read(buf)
	if err != nil && err != io.EOF {
		return err
	}
	buf = buf[:n]

	if err := w.file.Truncate(0); err != nil {
		return err
	}
	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := w.file.Write(buf); err != nil {
		return err
	}
	_, err = w.file.Seek(0, io.SeekEnd)
	return err
}
