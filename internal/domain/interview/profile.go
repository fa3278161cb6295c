package interview

import (
	"fmt"
	"strings"
)

// ApplicationStatusBadge maps an application status to its badge classes.
// Matching ignores case; unknown statuses get bg-secondary.
func ApplicationStatusBadge(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "submitted":
		return "bg-info"
	case "under review":
		return "bg-primary"
	case "interview scheduled":
		return "bg-warning text-dark"
	case "offer extended":
		return "bg-success"
	case "rejected":
		return "bg-danger"
	default:
		return "bg-secondary"
	}
}

// SkillLevelBadge picks the progress-bar class for a skill level in percent.
func SkillLevelBadge(level int) string {
	switch {
	case level < 30:
		return "bg-danger"
	case level < 70:
		return "bg-warning"
	default:
		return "bg-success"
	}
}

// CheckSkillLevel rejects levels outside 0..100.
func CheckSkillLevel(level int) error {
	if level < 0 || level > 100 {
		return fmt.Errorf("%w: skill level must be within 0..100, got %d", ErrInvalidArgument, level)
	}
	return nil
}
