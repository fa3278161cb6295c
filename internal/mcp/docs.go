package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `hireboard serves placeholder data for a recruitment dashboard: an activity feed and a candidate pipeline.

Activity feed:
- refresh_activities regenerates the whole feed (newest first). It replaces, never appends.
- list_recent_activity returns the dashboard panel (first N records); list_activity returns everything.
- mark_all_read clears the unread badge; get_unread_count reads it.
- format_time_ago turns a timestamp into the label the dashboard shows.

Pipeline:
- refresh_pipeline regenerates candidates; get_pipeline returns stage counts and the candidate table.
- interview_countdown formats the time left before an interview.
- candidate_profile_badges maps an application status and skill levels to badge classes.

Docs:
- hireboard://docs/index
- hireboard://docs/activity-feed
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "hireboard://docs/index",
		Name:        "docs_index",
		Title:       "hireboard docs index",
		Description: "What the dashboard server exposes and where to read more.",
		Content: `# hireboard

All data is generated in memory and disappears when the server stops.

## Tools

- ` + "`refresh_activities`" + `, ` + "`list_recent_activity`" + `, ` + "`list_activity`" + `, ` + "`mark_all_read`" + `, ` + "`get_unread_count`" + `, ` + "`format_time_ago`" + `
- ` + "`refresh_pipeline`" + `, ` + "`get_pipeline`" + `, ` + "`interview_countdown`" + `, ` + "`candidate_profile_badges`" + `
- ` + "`ping`" + `

## Docs

- ` + "`hireboard://docs/activity-feed`" + `: feed ordering, read state and relative-time labels.
`,
	},
	{
		URI:         "hireboard://docs/activity-feed",
		Name:        "docs_activity_feed",
		Title:       "Activity feed semantics",
		Description: "Ordering, read state and relative-time rules of the activity feed.",
		Content: `# Activity feed

## Records

Each record has an id ` + "`ACT-<n>`" + ` (unique within a generation), a type
(application, interview, status, note, email, evaluation), the candidate and
position it concerns, a description, a timestamp within the last 7 days and a
read flag.

## Ordering

Records are always newest first. A refresh replaces the feed; ids restart at
ACT-1000.

## Read state

New records start unread unless the server runs with the ` + "`random`" + `
unread policy. ` + "`mark_all_read`" + ` is idempotent.

## Relative time

Largest unit first: years, months (30 days), days, hours, minutes. A count of
one reads "1 year ago", "1 month ago", "yesterday", "1 hour ago" or
"1 minute ago"; anything under a minute is "just now".
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
