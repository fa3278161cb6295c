package mcp

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/hireboard/internal/dashboard"
	"github.com/rpggio/hireboard/internal/domain/activity"
	"github.com/rpggio/hireboard/internal/domain/interview"
	"github.com/rpggio/hireboard/internal/domain/pipeline"
)

// toolSet holds the names of the registered tools.
type toolSet map[string]bool

func registerTools(server *sdkmcp.Server, svc DashboardService) toolSet {
	tools := toolSet{}
	addTool(server, tools, &sdkmcp.Tool{
		Name:        "ping",
		Description: "Check that the dashboard server is reachable",
	}, func(context.Context, *sdkmcp.CallToolRequest, struct{}) (*sdkmcp.CallToolResult, PingOutput, error) {
		return nil, PingOutput{Message: "pong"}, nil
	})

	addTool(server, tools, &sdkmcp.Tool{
		Name:        "refresh_activities",
		Description: "Replace the activity feed with freshly generated records",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in RefreshActivitiesParams) (*sdkmcp.CallToolResult, RefreshActivitiesResult, error) {
		batch, err := svc.RefreshActivities(ctx, in.Count)
		if err != nil {
			return nil, RefreshActivitiesResult{}, err
		}
		return nil, RefreshActivitiesResult{
			BatchID:     batch.ID,
			GeneratedAt: batch.GeneratedAt,
			Count:       batch.Size,
			Unread:      batch.Unread,
			Notice:      dashboard.RefreshNotice,
		}, nil
	})

	addTool(server, tools, &sdkmcp.Tool{
		Name:        "list_recent_activity",
		Description: "List the newest activity records, as shown on the dashboard panel",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListRecentActivityParams) (*sdkmcp.CallToolResult, ActivityListResult, error) {
		view, err := svc.RecentActivity(ctx, in.Limit)
		if err != nil {
			return nil, ActivityListResult{}, err
		}
		return nil, activityList(view, svc.Now()), nil
	})

	addTool(server, tools, &sdkmcp.Tool{
		Name:        "list_activity",
		Description: "List the whole activity feed, newest first",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, ActivityListResult, error) {
		return nil, activityList(svc.AllActivity(ctx), svc.Now()), nil
	})

	addTool(server, tools, &sdkmcp.Tool{
		Name:        "mark_all_read",
		Description: "Mark every activity record as read",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, MarkAllReadResult, error) {
		return nil, MarkAllReadResult{Marked: svc.MarkAllRead(ctx)}, nil
	})

	addTool(server, tools, &sdkmcp.Tool{
		Name:        "get_unread_count",
		Description: "Count unread activity records",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, UnreadCountResult, error) {
		return nil, UnreadCountResult{Unread: svc.UnreadCount(ctx)}, nil
	})

	addTool(server, tools, &sdkmcp.Tool{
		Name:        "format_time_ago",
		Description: "Describe how long ago an instant was (e.g. \"3 minutes ago\", \"yesterday\")",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in FormatTimeAgoParams) (*sdkmcp.CallToolResult, FormatTimeAgoResult, error) {
		now := svc.Now()
		if in.Now != nil {
			now = *in.Now
		}
		return nil, FormatTimeAgoResult{Label: activity.FormatTimeAgo(in.Timestamp, now)}, nil
	})

	addTool(server, tools, &sdkmcp.Tool{
		Name:        "refresh_pipeline",
		Description: "Replace the candidate pipeline with freshly generated candidates",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in RefreshPipelineParams) (*sdkmcp.CallToolResult, PipelineResult, error) {
		if _, err := svc.RefreshPipeline(ctx, in.Count); err != nil {
			return nil, PipelineResult{}, err
		}
		return nil, pipelineResult(svc.Pipeline(ctx)), nil
	})

	addTool(server, tools, &sdkmcp.Tool{
		Name:        "get_pipeline",
		Description: "Get candidate counts per pipeline stage and the candidate table",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, PipelineResult, error) {
		return nil, pipelineResult(svc.Pipeline(ctx)), nil
	})

	addTool(server, tools, &sdkmcp.Tool{
		Name:        "interview_countdown",
		Description: "Time remaining until a scheduled interview",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in InterviewCountdownParams) (*sdkmcp.CallToolResult, InterviewCountdownResult, error) {
		now := svc.Now()
		if in.Now != nil {
			now = *in.Now
		}
		cd := interview.CountdownTo(in.At, now)
		out := InterviewCountdownResult{
			Label: cd.Label,
			Due:   cd.Due,
			Date:  interview.FormatDate(in.At),
		}
		if !cd.Due {
			out.RefreshSeconds = int(interview.RefreshInterval / time.Second)
		}
		return nil, out, nil
	})

	addTool(server, tools, &sdkmcp.Tool{
		Name:        "candidate_profile_badges",
		Description: "Badge classes for a candidate profile: application status and skill-level bars",
	}, func(_ context.Context, _ *sdkmcp.CallToolRequest, in CandidateProfileBadgesParams) (*sdkmcp.CallToolResult, CandidateProfileBadgesResult, error) {
		out := CandidateProfileBadgesResult{
			StatusBadge: interview.ApplicationStatusBadge(in.Status),
			Skills:      make([]SkillBadge, 0, len(in.Skills)),
		}
		for _, skill := range in.Skills {
			if err := interview.CheckSkillLevel(skill.Level); err != nil {
				return nil, CandidateProfileBadgesResult{}, fmt.Errorf("skill %q: %w", skill.Name, err)
			}
			out.Skills = append(out.Skills, SkillBadge{
				Name:  skill.Name,
				Level: skill.Level,
				Badge: interview.SkillLevelBadge(skill.Level),
			})
		}
		return nil, out, nil
	})

	return tools
}

// addTool registers a typed tool that maps domain errors to API errors.
func addTool[In, Out any](server *sdkmcp.Server, tools toolSet, tool *sdkmcp.Tool, h sdkmcp.ToolHandlerFor[In, Out]) {
	tools[tool.Name] = true
	sdkmcp.AddTool(server, tool, func(ctx context.Context, req *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, Out, error) {
		res, out, err := h(ctx, req, in)
		if err != nil {
			return res, out, mapError(err)
		}
		return res, out, nil
	})
}

func activityList(view activity.View, now time.Time) ActivityListResult {
	views := make([]ActivityView, 0, len(view.Records))
	for _, r := range view.Records {
		views = append(views, ActivityView{
			ID:          r.ID,
			Type:        r.Kind,
			Icon:        r.Kind.Icon(),
			Color:       r.Kind.Color(),
			Candidate:   r.CandidateName,
			Position:    r.Position,
			Description: r.Description,
			Timestamp:   r.Timestamp,
			TimeAgo:     activity.FormatTimeAgo(r.Timestamp, now),
			IsRead:      r.IsRead,
		})
	}
	return ActivityListResult{
		BatchID:    view.Batch.ID,
		Activities: views,
		Total:      view.Total,
		Unread:     view.Unread,
	}
}

func pipelineResult(snap pipeline.Snapshot) PipelineResult {
	out := PipelineResult{
		BatchID:    snap.BatchID,
		Stages:     make([]StageView, 0, len(snap.Counts)),
		Candidates: make([]CandidateView, 0, len(snap.Candidates)),
	}
	for _, sc := range snap.Counts {
		out.Stages = append(out.Stages, StageView{
			Stage:    sc.Stage,
			Slug:     sc.Stage.Slug(),
			Count:    sc.Count,
			Progress: snap.ProgressOf(sc.Count),
			Badge:    pipeline.StatusBadge(sc.Stage),
		})
	}
	for _, c := range snap.Candidates {
		out.Candidates = append(out.Candidates, CandidateView{
			ID:          c.ID,
			Name:        c.Name,
			Position:    c.Position,
			Email:       c.Email,
			Phone:       c.Phone,
			Score:       c.Score,
			ScoreBadge:  pipeline.ScoreBadge(c.Score),
			Stage:       c.Stage,
			StatusBadge: pipeline.StatusBadge(c.Stage),
			AppliedDate: c.AppliedDate,
			LastUpdated: c.LastUpdated,
		})
	}
	return out
}
