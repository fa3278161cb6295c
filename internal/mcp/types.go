package mcp

import (
	"time"

	"github.com/rpggio/hireboard/internal/domain/activity"
	"github.com/rpggio/hireboard/internal/domain/pipeline"
)

type PingOutput struct {
	Message string `json:"message"`
}

type RefreshActivitiesParams struct {
	Count *int `json:"count,omitempty" jsonschema:"Number of records to generate. Omit for the configured feed size."`
}

type RefreshActivitiesResult struct {
	BatchID     string    `json:"batch_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Count       int       `json:"count"`
	Unread      int       `json:"unread"`
	Notice      string    `json:"notice"`
}

type ListRecentActivityParams struct {
	Limit *int `json:"limit,omitempty" jsonschema:"Maximum number of records. Omit for the configured dashboard limit."`
}

type ActivityView struct {
	ID          string        `json:"id"`
	Type        activity.Kind `json:"type"`
	Icon        string        `json:"icon"`
	Color       string        `json:"color"`
	Candidate   string        `json:"candidate"`
	Position    string        `json:"position"`
	Description string        `json:"description"`
	Timestamp   time.Time     `json:"timestamp"`
	TimeAgo     string        `json:"time_ago"`
	IsRead      bool          `json:"is_read"`
}

type ActivityListResult struct {
	BatchID    string         `json:"batch_id"`
	Activities []ActivityView `json:"activities"`
	Total      int            `json:"total"`
	Unread     int            `json:"unread"`
}

type MarkAllReadResult struct {
	Marked int `json:"marked"`
}

type UnreadCountResult struct {
	Unread int `json:"unread"`
}

type FormatTimeAgoParams struct {
	Timestamp time.Time  `json:"timestamp" jsonschema:"Instant to describe, RFC 3339."`
	Now       *time.Time `json:"now,omitempty" jsonschema:"Reference instant, RFC 3339. Defaults to the server clock."`
}

type FormatTimeAgoResult struct {
	Label string `json:"label"`
}

type RefreshPipelineParams struct {
	Count *int `json:"count,omitempty" jsonschema:"Number of candidates to generate. Omit for the configured pipeline size."`
}

type StageView struct {
	Stage    pipeline.Stage `json:"stage"`
	Slug     string         `json:"slug"`
	Count    int            `json:"count"`
	Progress float64        `json:"progress"`
	Badge    string         `json:"badge"`
}

type CandidateView struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Position    string         `json:"position"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Score       int            `json:"score"`
	ScoreBadge  string         `json:"score_badge"`
	Stage       pipeline.Stage `json:"status"`
	StatusBadge string         `json:"status_badge"`
	AppliedDate string         `json:"applied_date"`
	LastUpdated time.Time      `json:"last_updated"`
}

type PipelineResult struct {
	BatchID    string          `json:"batch_id"`
	Stages     []StageView     `json:"stages"`
	Candidates []CandidateView `json:"candidates"`
}

type InterviewCountdownParams struct {
	At  time.Time  `json:"at" jsonschema:"Scheduled interview time, RFC 3339."`
	Now *time.Time `json:"now,omitempty" jsonschema:"Reference instant, RFC 3339. Defaults to the server clock."`
}

type InterviewCountdownResult struct {
	Label string `json:"label"`
	Due   bool   `json:"due"`
	Date  string `json:"date"`
	// RefreshSeconds is how long the label stays accurate. Zero once due.
	RefreshSeconds int `json:"refresh_seconds"`
}

type SkillLevel struct {
	Name  string `json:"name"`
	Level int    `json:"level" jsonschema:"Skill level in percent, 0 to 100."`
}

type CandidateProfileBadgesParams struct {
	Status string       `json:"status,omitempty" jsonschema:"Application status, e.g. Under Review. Case is ignored."`
	Skills []SkillLevel `json:"skills,omitempty"`
}

type SkillBadge struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Badge string `json:"badge"`
}

type CandidateProfileBadgesResult struct {
	StatusBadge string       `json:"status_badge"`
	Skills      []SkillBadge `json:"skills"`
}
