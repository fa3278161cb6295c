package activity_test

import (
	"testing"
	"time"

	"github.com/rpggio/hireboard/internal/domain/activity"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	secs := func(n int64) time.Time { return now.Add(-time.Duration(n) * time.Second) }

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"same instant", now, "just now"},
		{"30 seconds", secs(30), "just now"},
		{"59 seconds", secs(59), "just now"},
		{"one minute", secs(60), "1 minute ago"},
		{"90 seconds", secs(90), "1 minute ago"},
		{"three minutes", secs(3 * 60), "3 minutes ago"},
		{"one hour", secs(3600), "1 hour ago"},
		{"two hours", secs(2 * 3600), "2 hours ago"},
		{"25 hours", secs(90000), "yesterday"},
		{"two days", secs(2 * 86400), "2 days ago"},
		{"29 days", secs(29 * 86400), "29 days ago"},
		{"one month", secs(2592000), "1 month ago"},
		{"five months", secs(5 * 2592000), "5 months ago"},
		{"one year", secs(31536000), "1 year ago"},
		{"two years", secs(31536000 * 2), "2 years ago"},
		{"sub-second", now.Add(-999 * time.Millisecond), "just now"},
		{"future", now.Add(time.Hour), "just now"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, activity.FormatTimeAgo(tt.ts, now))
		})
	}
}
