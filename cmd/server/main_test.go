package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	require.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	require.Equal(t, slog.LevelError, parseLogLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	require.Equal(t, slog.LevelInfo, parseLogLevel(""))
}

func TestNewSource(t *testing.T) {
	a, b := newSource(9, 0), newSource(9, 0)
	for range 10 {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}

	feed, board := newSource(9, 0), newSource(9, 1)
	same := true
	for range 10 {
		if feed.Int64N(1<<40) != board.Int64N(1<<40) {
			same = false
		}
	}
	require.False(t, same)
}

func TestLogFileWriterTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "hireboard.log")
	w, file, err := newLogFileWriter(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })

	chunk := []byte(strings.Repeat("x", 1024*1024))
	for range 6 {
		_, err := w.Write(chunk)
		require.NoError(t, err)
	}
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(maxLogSizeBytes), info.Size(), "at the cap nothing is dropped")

	tail := []byte(strings.Repeat("y", 1024))
	_, err = w.Write(tail)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, keepLogSizeBytes)
	require.True(t, strings.HasSuffix(string(data), string(tail)))
}
