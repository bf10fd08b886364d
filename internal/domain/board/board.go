// Package board derives the render-ready view of a project's flat issue
// collection: friendly IDs, hierarchy edges, transitive tags, archivability
// and the filtered status buckets. Every pass is a full, idempotent
// recomputation over the whole in-memory set; there is no incremental path.
package board

import (
	"fmt"
	"sort"

	"github.com/sleipnirhq/sleipnir/internal/domain/issue"
	"github.com/sleipnirhq/sleipnir/internal/domain/sprint"
)

// Refresh rebuilds every derived field on the issue set: friendly IDs,
// sprint tags, parent/child edges, transitive epic tags and archivability.
// Dangling parent or sprint references are tolerated and degrade to
// untagged display.
func Refresh(issues []*issue.Issue, sprints []*sprint.Sprint) {
	for _, iss := range issues {
		iss.ResetDerived()
	}
	assignFriendlyIDs(issues)
	tagSprints(issues, sprints)
	buildHierarchy(issues)
	evaluateArchivability(issues)
}

// assignFriendlyIDs numbers issues 1..n within three partitions (epics,
// stories, everything else), ordered by creation time ascending. Ties keep
// the original collection order. IDs are recomputed from scratch each pass,
// so a backdated insert shifts later IDs in its partition.
func assignFriendlyIDs(issues []*issue.Issue) {
	var epics, stories, leaves []*issue.Issue
	for _, iss := range issues {
		switch {
		case iss.Type.IsEpic():
			epics = append(epics, iss)
		case iss.Type.IsStory():
			stories = append(stories, iss)
		default:
			leaves = append(leaves, iss)
		}
	}
	for _, partition := range [][]*issue.Issue{epics, stories, leaves} {
		sort.SliceStable(partition, func(i, j int) bool {
			return partition[i].CreatedAt.Before(partition[j].CreatedAt)
		})
		for n, iss := range partition {
			iss.FriendlyID = n + 1
		}
	}
}

// tagSprints sets each issue's sprint tag: "Unplanned" when no sprint is
// assigned, "{name} | {status}" when the sprint resolves, and the bare
// status when the reference dangles.
func tagSprints(issues []*issue.Issue, sprints []*sprint.Sprint) {
	byID := make(map[string]*sprint.Sprint, len(sprints))
	for _, sp := range sprints {
		byID[sp.ID] = sp
	}
	for _, iss := range issues {
		if iss.SprintID == nil {
			iss.SprintTag = "Unplanned"
			continue
		}
		if sp, ok := byID[*iss.SprintID]; ok {
			iss.SprintTag = fmt.Sprintf("%s | %s", sp.Name, iss.Status)
		} else {
			iss.SprintTag = string(iss.Status)
		}
	}
}

// buildHierarchy attaches children and parent tags in two ordered passes:
// stories onto epics, then leaves onto stories (copying the story's
// transitive epic id). Leaves linked straight to an epic, which older data
// can contain, resolve against the epic directly. Unresolvable parents
// leave the issue untagged.
func buildHierarchy(issues []*issue.Issue) {
	byID := make(map[string]*issue.Issue, len(issues))
	for _, iss := range issues {
		byID[iss.ID] = iss
	}

	for _, story := range issues {
		if !story.Type.IsStory() || story.ParentIssueID == nil {
			continue
		}
		epic, ok := byID[*story.ParentIssueID]
		if !ok || !epic.Type.IsEpic() {
			continue
		}
		epic.Children = append(epic.Children, story)
		story.ParentTitle = epic.Description
		story.ParentFriendlyID = intPtr(epic.FriendlyID)
	}

	for _, leaf := range issues {
		if !leaf.Type.IsLeaf() || leaf.ParentIssueID == nil {
			continue
		}
		parent, ok := byID[*leaf.ParentIssueID]
		if !ok {
			continue
		}
		switch {
		case parent.Type.IsStory():
			parent.Children = append(parent.Children, leaf)
			leaf.ParentTitle = parent.Description
			leaf.ParentStoryFriendlyID = intPtr(parent.FriendlyID)
			if parent.ParentFriendlyID != nil {
				leaf.ParentFriendlyID = intPtr(*parent.ParentFriendlyID)
			}
		case parent.Type.IsEpic():
			parent.Children = append(parent.Children, leaf)
			leaf.ParentTitle = parent.Description
			leaf.ParentFriendlyID = intPtr(parent.FriendlyID)
		}
	}
}

// evaluateArchivability marks each epic and story archivable when it has
// no children or every child is Finished.
func evaluateArchivability(issues []*issue.Issue) {
	for _, iss := range issues {
		if iss.Type.IsLeaf() {
			continue
		}
		iss.CanBeArchived = archivable(iss)
	}
}

func archivable(iss *issue.Issue) bool {
	for _, child := range iss.Children {
		if child.Status != issue.StatusFinished {
			return false
		}
	}
	return true
}

func intPtr(v int) *int { return &v }
