package activity

import (
	"fmt"
	"time"
)

var timeAgoUnits = []struct {
	seconds  int64
	plural   string
	singular string
}{
	{31536000, "%d years ago", "1 year ago"},
	{2592000, "%d months ago", "1 month ago"},
	{86400, "%d days ago", "yesterday"},
	{3600, "%d hours ago", "1 hour ago"},
	{60, "%d minutes ago", "1 minute ago"},
}

// FormatTimeAgo labels the time elapsed between ts and now, largest unit first.
// Timestamps at or after now read "just now".
func FormatTimeAgo(ts, now time.Time) string {
	elapsed := int64(now.Sub(ts) / time.Second)
	for _, unit := range timeAgoUnits {
		interval := elapsed / unit.seconds
		if interval > 1 {
			return fmt.Sprintf(unit.plural, interval)
		}
		if interval == 1 {
			return unit.singular
		}
	}
	return "just now"
}
