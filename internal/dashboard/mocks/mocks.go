package mocks

import (
	"context"
	"time"

	"github.com/rpggio/hireboard/internal/domain/activity"
	"github.com/rpggio/hireboard/internal/domain/pipeline"
	"github.com/stretchr/testify/mock"
)

// Dashboard is a mock for the dashboard service consumed by the MCP and HTTP layers.
type Dashboard struct {
	mock.Mock
}

func (m *Dashboard) RefreshActivities(ctx context.Context, count *int) (activity.Batch, error) {
	args := m.Called(ctx, count)
	return args.Get(0).(activity.Batch), args.Error(1)
}

func (m *Dashboard) RecentActivity(ctx context.Context, limit *int) (activity.View, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).(activity.View), args.Error(1)
}

func (m *Dashboard) AllActivity(ctx context.Context) activity.View {
	args := m.Called(ctx)
	return args.Get(0).(activity.View)
}

func (m *Dashboard) MarkAllRead(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func (m *Dashboard) UnreadCount(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func (m *Dashboard) FeedBatch(ctx context.Context) activity.Batch {
	args := m.Called(ctx)
	return args.Get(0).(activity.Batch)
}

func (m *Dashboard) RefreshPipeline(ctx context.Context, count *int) (string, error) {
	args := m.Called(ctx, count)
	return args.String(0), args.Error(1)
}

func (m *Dashboard) Pipeline(ctx context.Context) pipeline.Snapshot {
	args := m.Called(ctx)
	return args.Get(0).(pipeline.Snapshot)
}

func (m *Dashboard) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}
