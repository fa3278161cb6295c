// Package dashboard composes the activity feed and the candidate pipeline
// behind the operations the MCP tools and HTTP routes expose.
package dashboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rpggio/hireboard/internal/domain/activity"
	"github.com/rpggio/hireboard/internal/domain/pipeline"
	"github.com/rpggio/hireboard/internal/metrics"
)

// RefreshNotice is the transient confirmation shown after the feed is regenerated.
const RefreshNotice = "Activities refreshed"

// Config sets the default sizes used when a caller leaves them unset.
type Config struct {
	FeedSize     int
	RecentLimit  int
	PipelineSize int
}

// Service handles dashboard operations.
type Service struct {
	feed    *activity.Store
	board   *pipeline.Board
	metrics *metrics.Recorder
	cfg     Config
	now     func() time.Time
	logger  *slog.Logger
}

// NewService creates a dashboard service. rec and logger may be nil.
func NewService(feed *activity.Store, board *pipeline.Board, rec *metrics.Recorder, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		feed:    feed,
		board:   board,
		metrics: rec,
		cfg:     cfg,
		now:     time.Now,
		logger:  logger,
	}
}

// Seed populates the feed and the board with their default sizes.
func (s *Service) Seed(ctx context.Context) error {
	if _, err := s.RefreshActivities(ctx, nil); err != nil {
		return err
	}
	if _, err := s.RefreshPipeline(ctx, nil); err != nil {
		return err
	}
	return nil
}

// RefreshActivities regenerates the feed. A nil count uses the configured size.
func (s *Service) RefreshActivities(ctx context.Context, count *int) (activity.Batch, error) {
	n := s.cfg.FeedSize
	if count != nil {
		n = *count
	}
	batch, err := s.feed.Generate(n)
	if err != nil {
		return activity.Batch{}, fmt.Errorf("refreshing activities: %w", err)
	}
	s.metrics.FeedGenerated(batch.Unread)
	s.logger.InfoContext(ctx, "activities refreshed", "batch_id", batch.ID, "count", batch.Size)
	return batch, nil
}

// RecentActivity returns the newest records with the feed totals.
// A nil limit uses the configured one.
func (s *Service) RecentActivity(_ context.Context, limit *int) (activity.View, error) {
	n := s.cfg.RecentLimit
	if limit != nil {
		n = *limit
	}
	view, err := s.feed.View(n)
	if err != nil {
		return activity.View{}, fmt.Errorf("listing recent activity: %w", err)
	}
	return view, nil
}

// AllActivity returns the whole feed, newest first.
func (s *Service) AllActivity(_ context.Context) activity.View {
	return s.feed.ViewAll()
}

// MarkAllRead marks every feed record read and returns how many changed.
func (s *Service) MarkAllRead(ctx context.Context) int {
	marked := s.feed.MarkAllRead()
	s.metrics.FeedMarkedRead()
	s.logger.InfoContext(ctx, "activities marked read", "marked", marked)
	return marked
}

// UnreadCount returns the number of unread feed records.
func (s *Service) UnreadCount(_ context.Context) int {
	return s.feed.UnreadCount()
}

// FeedBatch describes the current feed generation.
func (s *Service) FeedBatch(_ context.Context) activity.Batch {
	return s.feed.Batch()
}

// RefreshPipeline regenerates the board. A nil count uses the configured size.
func (s *Service) RefreshPipeline(ctx context.Context, count *int) (string, error) {
	n := s.cfg.PipelineSize
	if count != nil {
		n = *count
	}
	batchID, err := s.board.Generate(n)
	if err != nil {
		return "", fmt.Errorf("refreshing pipeline: %w", err)
	}
	s.metrics.PipelineGenerated()
	s.logger.InfoContext(ctx, "pipeline refreshed", "batch_id", batchID, "count", n)
	return batchID, nil
}

// Pipeline returns a consistent view of the board.
func (s *Service) Pipeline(_ context.Context) pipeline.Snapshot {
	return s.board.Snapshot()
}

// Now is the reference instant for relative-time labels.
func (s *Service) Now() time.Time {
	return s.now()
}
