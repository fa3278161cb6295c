package render

import (
	"strings"
	"testing"
	"time"

	"github.com/rpggio/hireboard/internal/domain/activity"
	"github.com/rpggio/hireboard/internal/domain/pipeline"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)

func sampleRecords() []activity.Record {
	return []activity.Record{
		{
			ID:            "ACT-1000",
			Kind:          activity.KindInterview,
			CandidateName: "Jamie Lee",
			Position:      "ML Engineer",
			Description:   "Interview scheduled with Jamie Lee",
			Timestamp:     now.Add(-3 * time.Minute),
		},
		{
			ID:            "ACT-1001",
			Kind:          activity.KindNote,
			CandidateName: "Quinn Evans",
			Position:      "Backend Developer",
			Description:   "commented on Quinn Evans's application",
			Timestamp:     now.Add(-26 * time.Hour),
			IsRead:        true,
		},
	}
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	require.NoError(t, err)
	return r
}

func TestRenderer_ActivityList(t *testing.T) {
	r := newTestRenderer(t)
	var b strings.Builder
	require.NoError(t, r.ActivityList(&b, sampleRecords(), 1, now))

	out := b.String()
	require.Contains(t, out, `id="activities-list"`)
	require.Contains(t, out, "bg-info-subtle text-info")
	require.Contains(t, out, "fa-video")
	require.Contains(t, out, "fa-sticky-note")
	require.Contains(t, out, "3 minutes ago")
	require.Contains(t, out, "yesterday")
	require.Contains(t, out, "Jamie Lee • ML Engineer")
	require.Contains(t, out, "Quinn Evans&#39;s application")
	require.Equal(t, 1, strings.Count(out, "badge-dot"))
	require.Contains(t, out, `id="unread-count"`)
	require.Contains(t, out, "display: inline-block")
}

func TestRenderer_ActivityModalHighlightsUnread(t *testing.T) {
	r := newTestRenderer(t)
	var b strings.Builder
	require.NoError(t, r.ActivityModal(&b, sampleRecords(), 1, now))

	out := b.String()
	require.Contains(t, out, `id="activities-modal-list"`)
	require.Equal(t, 1, strings.Count(out, "bg-dark bg-opacity-25 p-2 rounded"))
	require.Contains(t, out, `id="unread-count-modal"`)
}

func TestRenderer_UnreadBadgeHiddenWhenZero(t *testing.T) {
	r := newTestRenderer(t)
	var b strings.Builder
	require.NoError(t, r.UnreadBadge(&b, UnreadBadgeID, 0))
	require.Contains(t, b.String(), "display: none")
	require.Contains(t, b.String(), ">0</span>")
}

func TestRenderer_Pipeline(t *testing.T) {
	r := newTestRenderer(t)
	snap := pipeline.Snapshot{
		Counts: []pipeline.StageCount{
			{Stage: pipeline.StageSourced, Count: 1},
			{Stage: pipeline.StagePhoneScreen, Count: 3},
		},
		Candidates: []pipeline.Candidate{
			{ID: "CAN-1001", Name: "Alex Cooper", Score: 85, Stage: pipeline.StagePhoneScreen, AppliedDate: "2024-02-01"},
			{ID: "CAN-1002", Name: "Riley Lee", Score: 42, Stage: pipeline.StageSourced, AppliedDate: "2024-02-03"},
			{ID: "CAN-1003", Name: "Jamie Smith", Score: 61, Stage: pipeline.StagePhoneScreen, AppliedDate: "2024-02-05"},
			{ID: "CAN-1004", Name: "Casey Evans", Score: 70, Stage: pipeline.StagePhoneScreen, AppliedDate: "2024-02-07"},
		},
	}

	var b strings.Builder
	require.NoError(t, r.Pipeline(&b, snap))

	out := b.String()
	require.Contains(t, out, `id="pipeline-phone-screen"`)
	require.Contains(t, out, `id="phone-screen-count">3<`)
	require.Contains(t, out, `aria-valuenow="75"`)
	require.Contains(t, out, `aria-valuenow="25"`)
	require.Contains(t, out, `<span class="badge bg-success">85</span>`)
	require.Contains(t, out, `<span class="badge bg-warning">42</span>`)
	require.Contains(t, out, `<span class="badge bg-info">Phone Screen</span>`)
	require.Equal(t, 4, strings.Count(out, "<tr>")-1)
}
