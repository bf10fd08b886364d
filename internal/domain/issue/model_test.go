package issue_test

import (
	"testing"
	"time"

	"github.com/sleipnirhq/sleipnir/internal/domain/issue"
	"github.com/stretchr/testify/require"
)

func TestType_Classification(t *testing.T) {
	require.True(t, issue.TypeEpic.IsEpic())
	require.True(t, issue.TypeStory.IsStory())
	require.False(t, issue.TypeEpic.IsLeaf())
	require.False(t, issue.TypeStory.IsLeaf())

	for _, typ := range []issue.Type{issue.TypeBug, issue.TypeFeature, issue.TypePatch, issue.TypeOverhaul, issue.TypeAlteration} {
		require.True(t, typ.IsLeaf(), "%s is a leaf kind", typ)
	}
	require.True(t, issue.Type("Spike").IsLeaf(), "unknown types are treated as leaves")
}

func TestType_Tag(t *testing.T) {
	require.Equal(t, "💡 Epic", issue.TypeEpic.Tag())
	require.Equal(t, "🐞 Bug", issue.TypeBug.Tag())
	require.Equal(t, "📋 Spike", issue.Type("Spike").Tag(), "unknown types use the fallback tag")
}

func TestPriority_Tag(t *testing.T) {
	require.Equal(t, "‼ CRITICAL", issue.PriorityCritical.Tag())
	require.Equal(t, "→ NEUTRAL", issue.PriorityNeutral.Tag())
	require.Equal(t, "📋 URGENT", issue.Priority("Urgent").Tag(), "unknown priorities use the fallback tag")
}

func TestCategory_Equals(t *testing.T) {
	require.True(t, issue.CategoryBacklog.Equals(issue.Category("backlog")))
	require.True(t, issue.Category("HUB").Equals(issue.CategoryHub))
	require.False(t, issue.CategoryHub.Equals(issue.CategoryPipeline))
}

func TestIssue_Number(t *testing.T) {
	epic := &issue.Issue{Type: issue.TypeEpic, FriendlyID: 3}
	story := &issue.Issue{Type: issue.TypeStory, FriendlyID: 12}
	leaf := &issue.Issue{Type: issue.TypeBug, FriendlyID: 147}

	require.Equal(t, "Epic #00003", epic.Number())
	require.Equal(t, "Story #00012", story.Number())
	require.Equal(t, "Issue #00147", leaf.Number())
}

func TestIssue_FormattedTitle(t *testing.T) {
	tests := []struct {
		name string
		iss  issue.Issue
		want string
	}{
		{
			"full",
			issue.Issue{ProgramComponent: "Auth", SubComponents: "Login;Session", Description: "Fix timeout"},
			"Auth / Login / Session : Fix timeout",
		},
		{
			"component only",
			issue.Issue{ProgramComponent: "Auth", Description: "Fix timeout"},
			"Auth : Fix timeout",
		},
		{
			"bare description",
			issue.Issue{Description: "Fix timeout"},
			"Fix timeout",
		},
		{
			"blank sub entries skipped",
			issue.Issue{ProgramComponent: "Auth", SubComponents: " ; Login ; ", Description: "Fix timeout"},
			"Auth / Login : Fix timeout",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.iss.FormattedTitle())
		})
	}
}

func TestIssue_LocationTag(t *testing.T) {
	live := &issue.Issue{Category: issue.CategoryBacklog, Status: issue.StatusOpen}
	require.Equal(t, "Backlog", live.LocationTag())

	archived := &issue.Issue{Category: issue.CategoryHub, Status: issue.StatusArchived}
	require.Equal(t, "Hub Archive", archived.LocationTag())
}

func TestIssue_AgeString(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	iss := &issue.Issue{CreatedAt: now.Add(-3 * 24 * time.Hour)}
	require.Equal(t, "3d up", iss.AgeString(now))

	iss.CreatedAt = now.Add(-4 * time.Hour)
	require.Equal(t, "4h up", iss.AgeString(now))

	iss.CreatedAt = now.Add(-12 * time.Minute)
	require.Equal(t, "12m up", iss.AgeString(now))
}

func TestIssue_AssigneeSet(t *testing.T) {
	iss := &issue.Issue{ResponsibleUsers: "Riley; Alex ;"}
	require.Equal(t, []string{"Riley", "Alex"}, iss.Assignees())

	iss.AddAssignee("Sam")
	require.Equal(t, "Riley;Alex;Sam", iss.ResponsibleUsers)

	iss.AddAssignee("riley")
	require.Equal(t, "Riley;Alex;Sam", iss.ResponsibleUsers, "add is case-insensitive idempotent")

	iss.AddAssignee("  ")
	require.Equal(t, "Riley;Alex;Sam", iss.ResponsibleUsers)

	iss.RemoveAssignee("ALEX")
	require.Equal(t, "Riley;Sam", iss.ResponsibleUsers)

	iss.RemoveAssignee("nobody")
	require.Equal(t, "Riley;Sam", iss.ResponsibleUsers)
}

func TestIssue_ResetDerived(t *testing.T) {
	n := 7
	iss := &issue.Issue{
		FriendlyID:       3,
		Children:         []*issue.Issue{{}},
		ParentTitle:      "Epic",
		ParentFriendlyID: &n,
		SprintTag:        "Sprint 1 | Open",
		CanBeArchived:    true,
	}
	iss.ResetDerived()
	require.Zero(t, iss.FriendlyID)
	require.Nil(t, iss.Children)
	require.Empty(t, iss.ParentTitle)
	require.Nil(t, iss.ParentFriendlyID)
	require.Empty(t, iss.SprintTag)
	require.False(t, iss.CanBeArchived)
}

func TestDecideChildHandling(t *testing.T) {
	require.Equal(t, issue.ChildHandling{}, issue.DecideChildHandling(0, ""), "childless issues never prompt")
	require.Equal(t, issue.ChildHandling{}, issue.DecideChildHandling(0, issue.ChoiceCancel))

	require.Equal(t, issue.ChildHandling{CascadeChildren: true}, issue.DecideChildHandling(2, issue.ChoiceCascade))
	require.Equal(t, issue.ChildHandling{UnlinkChildren: true}, issue.DecideChildHandling(2, issue.ChoiceUnlink))
	require.Equal(t, issue.ChildHandling{Abort: true}, issue.DecideChildHandling(2, issue.ChoiceCancel))
	require.Equal(t, issue.ChildHandling{Abort: true}, issue.DecideChildHandling(2, ""), "no decision aborts")
}
