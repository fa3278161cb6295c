// Package render turns dashboard state into Bootstrap-styled HTML fragments.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/rpggio/hireboard/internal/domain/activity"
	"github.com/rpggio/hireboard/internal/domain/pipeline"
)

//go:embed templates/*.html
var templateFS embed.FS

// Badge ids used by the dashboard page.
const (
	UnreadBadgeID      = "unread-count"
	UnreadBadgeModalID = "unread-count-modal"
)

// Renderer executes the dashboard fragment templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("dashboard").Funcs(template.FuncMap{
		"timeAgo":     activity.FormatTimeAgo,
		"scoreBadge":  pipeline.ScoreBadge,
		"statusBadge": pipeline.StatusBadge,
		"percent":     func(p float64) string { return fmt.Sprintf("%.0f", p) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

type badgeView struct {
	ID    string
	Count int
}

type feedView struct {
	Records []activity.Record
	Now     time.Time
	Badge   badgeView
}

type stageView struct {
	Stage    pipeline.Stage
	Slug     string
	Count    int
	Progress float64
}

type pipelineView struct {
	Stages     []stageView
	Candidates []pipeline.Candidate
}

// ActivityList renders the dashboard's recent-activity panel and its unread badge.
func (r *Renderer) ActivityList(w io.Writer, records []activity.Record, unread int, now time.Time) error {
	return r.execute(w, "activity_list", feedView{
		Records: records,
		Now:     now,
		Badge:   badgeView{ID: UnreadBadgeID, Count: unread},
	})
}

// ActivityModal renders the full activity list shown in the modal.
func (r *Renderer) ActivityModal(w io.Writer, records []activity.Record, unread int, now time.Time) error {
	return r.execute(w, "activity_modal", feedView{
		Records: records,
		Now:     now,
		Badge:   badgeView{ID: UnreadBadgeModalID, Count: unread},
	})
}

// UnreadBadge renders a badge that is hidden when count is zero.
func (r *Renderer) UnreadBadge(w io.Writer, id string, count int) error {
	return r.execute(w, "unread_badge", badgeView{ID: id, Count: count})
}

// Pipeline renders the stage cards followed by the candidate table.
func (r *Renderer) Pipeline(w io.Writer, snap pipeline.Snapshot) error {
	view := pipelineView{Candidates: snap.Candidates}
	for _, sc := range snap.Counts {
		view.Stages = append(view.Stages, stageView{
			Stage:    sc.Stage,
			Slug:     sc.Stage.Slug(),
			Count:    sc.Count,
			Progress: snap.ProgressOf(sc.Count),
		})
	}
	return r.execute(w, "pipeline", view)
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
