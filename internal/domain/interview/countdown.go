// Package interview formats scheduled-interview times for the dashboard.
package interview

import (
	"fmt"
	"strings"
	"time"
)

// DueLabel is shown once the interview time has passed.
const DueLabel = "Interview time!"

// RefreshInterval is how often a displayed countdown should be recomputed.
const RefreshInterval = time.Minute

// Countdown is the remaining time until an interview.
type Countdown struct {
	Label string `json:"label"`
	Due   bool   `json:"due"`
}

// CountdownTo computes the countdown label for an interview at at.
func CountdownTo(at, now time.Time) Countdown {
	remaining := at.Sub(now)
	if remaining < 0 {
		return Countdown{Label: DueLabel, Due: true}
	}

	days := int64(remaining / (24 * time.Hour))
	hours := int64(remaining % (24 * time.Hour) / time.Hour)
	minutes := int64(remaining % time.Hour / time.Minute)

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd ", days)
	}
	if hours > 0 || days > 0 {
		fmt.Fprintf(&b, "%dh ", hours)
	}
	fmt.Fprintf(&b, "%dm", minutes)
	return Countdown{Label: b.String()}
}

// FormatDate renders a date as "January 2, 2006".
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
