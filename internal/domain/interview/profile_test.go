package interview_test

import (
	"testing"

	"github.com/rpggio/hireboard/internal/domain/interview"
	"github.com/stretchr/testify/require"
)

func TestApplicationStatusBadge(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{status: "submitted", want: "bg-info"},
		{status: "Submitted", want: "bg-info"},
		{status: "Under Review", want: "bg-primary"},
		{status: "under REVIEW", want: "bg-primary"},
		{status: "Interview Scheduled", want: "bg-warning text-dark"},
		{status: "OFFER EXTENDED", want: "bg-success"},
		{status: "Rejected", want: "bg-danger"},
		{status: "Hired", want: "bg-secondary"},
		{status: "", want: "bg-secondary"},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			require.Equal(t, tt.want, interview.ApplicationStatusBadge(tt.status))
		})
	}
}

func TestSkillLevelBadge(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{level: 0, want: "bg-danger"},
		{level: 29, want: "bg-danger"},
		{level: 30, want: "bg-warning"},
		{level: 69, want: "bg-warning"},
		{level: 70, want: "bg-success"},
		{level: 100, want: "bg-success"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, interview.SkillLevelBadge(tt.level), "level %d", tt.level)
	}
}

func TestCheckSkillLevel(t *testing.T) {
	require.NoError(t, interview.CheckSkillLevel(0))
	require.NoError(t, interview.CheckSkillLevel(100))
	require.ErrorIs(t, interview.CheckSkillLevel(-1), interview.ErrInvalidArgument)
	require.ErrorIs(t, interview.CheckSkillLevel(101), interview.ErrInvalidArgument)
}
