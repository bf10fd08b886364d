package board

import (
	"strings"

	"github.com/sleipnirhq/sleipnir/internal/domain/issue"
)

// FilterAll disables a type, priority or assignee filter.
const FilterAll = "All"

// Params are the view parameters the filter pipeline applies, in this
// fixed order: category, archive visibility / sprint scoping, free text,
// type, priority, assignee.
type Params struct {
	Category    issue.Category
	SprintID    *string // Backlog scoping; nil selects unplanned issues
	ShowArchive bool
	Query       string
	Type        string
	Priority    string
	Assignee    string
}

// View is the filtered, status-partitioned result set. Any status outside
// the four bucket statuses, Blocked included, lands in the Open bucket.
type View struct {
	All        []*issue.Issue `json:"all"`
	Open       []*issue.Issue `json:"open"`
	InProgress []*issue.Issue `json:"in_progress"`
	Testing    []*issue.Issue `json:"testing"`
	Finished   []*issue.Issue `json:"finished"`
}

// Filter projects the hierarchy-enriched issue set into the view the
// caller renders. Pure: the input set is read, never modified.
func Filter(issues []*issue.Issue, params Params) View {
	var view View
	for _, iss := range issues {
		if !iss.Category.Equals(params.Category) {
			continue
		}
		if params.ShowArchive {
			if iss.Status != issue.StatusArchived {
				continue
			}
		} else {
			if iss.Status == issue.StatusArchived {
				continue
			}
			if params.Category.Equals(issue.CategoryBacklog) && !inSelectedSprint(iss, params.SprintID) {
				continue
			}
		}
		if !matchesQuery(iss, params.Query) {
			continue
		}
		if !matchesExact(string(iss.Type), params.Type) {
			continue
		}
		if !matchesExact(string(iss.Priority), params.Priority) {
			continue
		}
		if !matchesAssignee(iss, params.Assignee) {
			continue
		}

		view.All = append(view.All, iss)
		switch iss.Status {
		case issue.StatusInProgress:
			view.InProgress = append(view.InProgress, iss)
		case issue.StatusTesting:
			view.Testing = append(view.Testing, iss)
		case issue.StatusFinished:
			view.Finished = append(view.Finished, iss)
		default:
			view.Open = append(view.Open, iss)
		}
	}
	return view
}

func inSelectedSprint(iss *issue.Issue, sprintID *string) bool {
	if sprintID == nil {
		return iss.SprintID == nil
	}
	return iss.SprintID != nil && *iss.SprintID == *sprintID
}

// matchesQuery applies the case-insensitive free-text search across the
// description, long description, the three formatted ID strings and the
// assignee list. Any single match keeps the issue.
func matchesQuery(iss *issue.Issue, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	haystacks := []string{
		iss.Description,
		iss.LongDescription,
		iss.EpicNumber(),
		iss.StoryNumber(),
		iss.IssueNumber(),
		iss.ResponsibleUsers,
	}
	for _, hay := range haystacks {
		if strings.Contains(strings.ToLower(hay), query) {
			return true
		}
	}
	return false
}

func matchesExact(value, filter string) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	return value == filter
}

func matchesAssignee(iss *issue.Issue, filter string) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	return strings.Contains(strings.ToLower(iss.ResponsibleUsers), strings.ToLower(filter))
}
