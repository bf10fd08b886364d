package board

import (
	"testing"
	"time"

	"github.com/sleipnirhq/sleipnir/internal/domain/issue"
	"github.com/sleipnirhq/sleipnir/internal/domain/sprint"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func makeIssue(id string, typ issue.Type, createdAt time.Time) *issue.Issue {
	category := issue.CategoryBacklog
	switch typ {
	case issue.TypeEpic:
		category = issue.CategoryHub
	case issue.TypeStory:
		category = issue.CategoryPipeline
	}
	return &issue.Issue{
		ID:          id,
		ProjectID:   "p1",
		Description: "Issue " + id,
		Type:        typ,
		Category:    category,
		Status:      issue.StatusOpen,
		Priority:    issue.PriorityNeutral,
		CreatedAt:   createdAt,
	}
}

func TestRefresh_FriendlyIDs(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	// Deliberately interleaved types and unsorted creation times
	issues := []*issue.Issue{
		makeIssue("epic2", issue.TypeEpic, base.Add(2*time.Hour)),
		makeIssue("bug1", issue.TypeBug, base.Add(time.Hour)),
		makeIssue("epic1", issue.TypeEpic, base),
		makeIssue("story1", issue.TypeStory, base),
		makeIssue("feature2", issue.TypeFeature, base.Add(3*time.Hour)),
	}

	Refresh(issues, nil)

	byID := indexByID(issues)
	require.Equal(t, 1, byID["epic1"].FriendlyID, "epics numbered by creation time")
	require.Equal(t, 2, byID["epic2"].FriendlyID)
	require.Equal(t, 1, byID["story1"].FriendlyID, "stories numbered independently")
	require.Equal(t, 1, byID["bug1"].FriendlyID, "leaves numbered independently")
	require.Equal(t, 2, byID["feature2"].FriendlyID)
}

func TestRefresh_BackdatedInsertShiftsIDs(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	first := makeIssue("bug1", issue.TypeBug, base)
	issues := []*issue.Issue{first}
	Refresh(issues, nil)
	require.Equal(t, 1, first.FriendlyID)

	backdated := makeIssue("bug0", issue.TypeBug, base.Add(-time.Hour))
	issues = append(issues, backdated)
	Refresh(issues, nil)
	require.Equal(t, 1, backdated.FriendlyID)
	require.Equal(t, 2, first.FriendlyID, "backdated insert shifts later ids")
}

func TestRefresh_Idempotent(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	epic := makeIssue("epic1", issue.TypeEpic, base)
	story := makeIssue("story1", issue.TypeStory, base.Add(time.Hour))
	story.ParentIssueID = strPtr("epic1")
	leaf := makeIssue("bug1", issue.TypeBug, base.Add(2*time.Hour))
	leaf.ParentIssueID = strPtr("story1")
	issues := []*issue.Issue{epic, story, leaf}

	Refresh(issues, nil)
	Refresh(issues, nil)

	require.Len(t, epic.Children, 1, "children are rebuilt, not accumulated")
	require.Len(t, story.Children, 1)
	require.Equal(t, 1, epic.FriendlyID)
	require.Equal(t, 1, story.FriendlyID)
	require.Equal(t, 1, leaf.FriendlyID)
}

func TestRefresh_Hierarchy(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	epic := makeIssue("epic1", issue.TypeEpic, base)
	epic.Description = "Auth overhaul"
	story := makeIssue("story1", issue.TypeStory, base.Add(time.Hour))
	story.Description = "Login rework"
	story.ParentIssueID = strPtr("epic1")
	leaf := makeIssue("bug1", issue.TypeBug, base.Add(2*time.Hour))
	leaf.ParentIssueID = strPtr("story1")

	Refresh([]*issue.Issue{epic, story, leaf}, nil)

	require.Equal(t, "Auth overhaul", story.ParentTitle)
	require.NotNil(t, story.ParentFriendlyID)
	require.Equal(t, 1, *story.ParentFriendlyID)

	require.Equal(t, "Login rework", leaf.ParentTitle)
	require.NotNil(t, leaf.ParentStoryFriendlyID)
	require.Equal(t, 1, *leaf.ParentStoryFriendlyID)
	require.NotNil(t, leaf.ParentFriendlyID, "leaf inherits the story's epic id")
	require.Equal(t, 1, *leaf.ParentFriendlyID)
}

func TestRefresh_LeafLinkedDirectlyToEpic(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	epic := makeIssue("epic1", issue.TypeEpic, base)
	leaf := makeIssue("bug1", issue.TypeBug, base.Add(time.Hour))
	leaf.ParentIssueID = strPtr("epic1")

	Refresh([]*issue.Issue{epic, leaf}, nil)

	require.Len(t, epic.Children, 1)
	require.NotNil(t, leaf.ParentFriendlyID)
	require.Equal(t, 1, *leaf.ParentFriendlyID)
	require.Nil(t, leaf.ParentStoryFriendlyID)
}

func TestRefresh_DanglingParent(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	story := makeIssue("story1", issue.TypeStory, base)
	story.ParentIssueID = strPtr("deleted-epic")
	leaf := makeIssue("bug1", issue.TypeBug, base.Add(time.Hour))
	leaf.ParentIssueID = strPtr("deleted-story")

	Refresh([]*issue.Issue{story, leaf}, nil)

	require.Empty(t, story.ParentTitle)
	require.Nil(t, story.ParentFriendlyID)
	require.Empty(t, leaf.ParentTitle)
	require.Nil(t, leaf.ParentStoryFriendlyID)
}

func TestRefresh_SprintTags(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	unplanned := makeIssue("i1", issue.TypeBug, base)
	planned := makeIssue("i2", issue.TypeBug, base)
	planned.SprintID = strPtr("s1")
	planned.Status = issue.StatusInProgress
	dangling := makeIssue("i3", issue.TypeBug, base)
	dangling.SprintID = strPtr("deleted-sprint")
	dangling.Status = issue.StatusBlocked

	sprints := []*sprint.Sprint{
		{ID: "s1", ProjectID: "p1", Name: "Sprint 1", StartDate: base, EndDate: base.AddDate(0, 0, 14), IsActive: true},
	}

	Refresh([]*issue.Issue{unplanned, planned, dangling}, sprints)

	require.Equal(t, "Unplanned", unplanned.SprintTag)
	require.Equal(t, "Sprint 1 | In Progress", planned.SprintTag)
	require.Equal(t, "Blocked", dangling.SprintTag, "dangling sprint ref degrades to the bare status")
}

func TestRefresh_Archivability(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	childless := makeIssue("epic1", issue.TypeEpic, base)
	done := makeIssue("epic2", issue.TypeEpic, base)
	pending := makeIssue("epic3", issue.TypeEpic, base)
	leaf := makeIssue("bug1", issue.TypeBug, base)

	finished := makeIssue("story1", issue.TypeStory, base)
	finished.ParentIssueID = strPtr("epic2")
	finished.Status = issue.StatusFinished

	open := makeIssue("story2", issue.TypeStory, base)
	open.ParentIssueID = strPtr("epic3")

	Refresh([]*issue.Issue{childless, done, pending, leaf, finished, open}, nil)

	require.True(t, childless.CanBeArchived, "childless containers are archivable")
	require.True(t, done.CanBeArchived, "all children finished")
	require.False(t, pending.CanBeArchived, "open child blocks archiving")
	require.False(t, leaf.CanBeArchived, "leaves are never marked")
}

func indexByID(issues []*issue.Issue) map[string]*issue.Issue {
	byID := make(map[string]*issue.Issue, len(issues))
	for _, iss := range issues {
		byID[iss.ID] = iss
	}
	return byID
}
