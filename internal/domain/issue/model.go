package issue

import (
	"fmt"
	"strings"
	"time"
)

// Type classifies an issue. Epic and Story are structural; the remaining
// kinds are leaf backlog work. The set is open-ended: unknown types render
// through the fallback tag and are treated as leaves.
type Type string

const (
	TypeEpic       Type = "Epic"
	TypeStory      Type = "Story"
	TypeBug        Type = "Bug"
	TypeFeature    Type = "Feature"
	TypePatch      Type = "Patch"
	TypeOverhaul   Type = "Overhaul"
	TypeAlteration Type = "Alteration"
)

// IsEpic reports whether the type is the top structural level.
func (t Type) IsEpic() bool { return t == TypeEpic }

// IsStory reports whether the type is the mid structural level.
func (t Type) IsStory() bool { return t == TypeStory }

// IsLeaf reports whether the type is a backlog leaf kind.
func (t Type) IsLeaf() bool { return t != TypeEpic && t != TypeStory }

// Tag returns the display tag for the type.
func (t Type) Tag() string {
	switch t {
	case TypeEpic:
		return "💡 Epic"
	case TypeStory:
		return "📘 Story"
	case TypeBug:
		return "🐞 Bug"
	case TypeFeature:
		return "✨ Feature"
	case TypePatch:
		return "🛠️ Patch"
	case TypeOverhaul:
		return "🏗️ Overhaul"
	case TypeAlteration:
		return "⚙️ Alteration"
	default:
		return fmt.Sprintf("📋 %s", string(t))
	}
}

// Category names the board an issue lives on. Hub holds epics, Pipeline
// holds stories, Backlog holds leaf issues. The correlation with Type is
// assumed, not enforced at write time.
type Category string

const (
	CategoryHub      Category = "Hub"
	CategoryPipeline Category = "Pipeline"
	CategoryBacklog  Category = "Backlog"
)

// Equals compares categories case-insensitively.
func (c Category) Equals(other Category) bool {
	return strings.EqualFold(string(c), string(other))
}

// Status is the workflow state of an issue.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusBlocked    Status = "Blocked"
	StatusInProgress Status = "In Progress"
	StatusTesting    Status = "Testing"
	StatusFinished   Status = "Finished"
	StatusArchived   Status = "Archived"
)

// Priority ranks an issue. Unknown values render through the fallback tag.
type Priority string

const (
	PriorityCritical   Priority = "Critical"
	PriorityVeryHigh   Priority = "Very High"
	PriorityHigh       Priority = "High"
	PriorityNeutral    Priority = "Neutral"
	PriorityLow        Priority = "Low"
	PriorityVeryLow    Priority = "Very Low"
	PriorityNiceToHave Priority = "Nice to Have"
)

// Tag returns the display tag for the priority.
func (p Priority) Tag() string {
	switch p {
	case PriorityCritical:
		return "‼ CRITICAL"
	case PriorityVeryHigh:
		return "❗ VERY HIGH"
	case PriorityHigh:
		return "↑ HIGH"
	case PriorityNeutral:
		return "→ NEUTRAL"
	case PriorityLow:
		return "↓ LOW"
	case PriorityVeryLow:
		return "- VERY LOW"
	case PriorityNiceToHave:
		return "-- NICE TO HAVE"
	default:
		return fmt.Sprintf("📋 %s", strings.ToUpper(string(p)))
	}
}

// Issue is a unit of tracked work. Fields after CreatedAt are derived:
// they are rebuilt on every recomputation pass and never persisted.
type Issue struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"project_id"`
	SprintID         *string   `json:"sprint_id,omitempty"`
	ProgramComponent string    `json:"program_component"`
	SubComponents    string    `json:"sub_components"` // semicolon separated
	Description      string    `json:"description"`
	LongDescription  string    `json:"long_description"`
	Type             Type      `json:"type"`
	Category         Category  `json:"category"`
	Status           Status    `json:"status"`
	Priority         Priority  `json:"priority"`
	ResponsibleUsers string    `json:"responsible_users"` // semicolon separated set
	ParentIssueID    *string   `json:"parent_issue_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`

	FriendlyID            int      `json:"friendly_id"`
	Children              []*Issue `json:"children,omitempty"`
	ParentTitle           string   `json:"parent_title,omitempty"`
	ParentFriendlyID      *int     `json:"parent_friendly_id,omitempty"`
	ParentStoryFriendlyID *int     `json:"parent_story_friendly_id,omitempty"`
	SprintTag             string   `json:"sprint_tag,omitempty"`
	CanBeArchived         bool     `json:"can_be_archived"`
}

// ResetDerived clears every derived field ahead of a recomputation pass.
func (i *Issue) ResetDerived() {
	i.FriendlyID = 0
	i.Children = nil
	i.ParentTitle = ""
	i.ParentFriendlyID = nil
	i.ParentStoryFriendlyID = nil
	i.SprintTag = ""
	i.CanBeArchived = false
}

// EpicNumber formats the friendly id as an epic number.
func (i *Issue) EpicNumber() string { return fmt.Sprintf("Epic #%05d", i.FriendlyID) }

// StoryNumber formats the friendly id as a story number.
func (i *Issue) StoryNumber() string { return fmt.Sprintf("Story #%05d", i.FriendlyID) }

// IssueNumber formats the friendly id as a backlog issue number.
func (i *Issue) IssueNumber() string { return fmt.Sprintf("Issue #%05d", i.FriendlyID) }

// Number formats the friendly id according to the issue's own kind.
func (i *Issue) Number() string {
	switch {
	case i.Type.IsEpic():
		return i.EpicNumber()
	case i.Type.IsStory():
		return i.StoryNumber()
	default:
		return i.IssueNumber()
	}
}

// FormattedTitle renders "Component / Sub1 / Sub2 : Description", degrading
// to the bare description when no components are set.
func (i *Issue) FormattedTitle() string {
	var subs []string
	for _, sub := range strings.Split(i.SubComponents, ";") {
		if sub = strings.TrimSpace(sub); sub != "" {
			subs = append(subs, sub)
		}
	}
	subPart := ""
	if len(subs) > 0 {
		subPart = " / " + strings.Join(subs, " / ")
	}
	componentPart := strings.TrimSpace(i.ProgramComponent)
	if componentPart == "" && subPart == "" {
		return i.Description
	}
	return fmt.Sprintf("%s%s : %s", componentPart, subPart, i.Description)
}

// LocationTag names the board region the issue appears in.
func (i *Issue) LocationTag() string {
	if i.Status == StatusArchived {
		return fmt.Sprintf("%s Archive", i.Category)
	}
	return string(i.Category)
}

// AgeString renders the age since creation as "3d up", "4h up" or "12m up".
func (i *Issue) AgeString(now time.Time) string {
	age := now.Sub(i.CreatedAt)
	switch {
	case age >= 24*time.Hour:
		return fmt.Sprintf("%dd up", int(age.Hours())/24)
	case age >= time.Hour:
		return fmt.Sprintf("%dh up", int(age.Hours()))
	default:
		return fmt.Sprintf("%dm up", int(age.Minutes()))
	}
}

// Assignees splits the stored assignee set into names.
func (i *Issue) Assignees() []string {
	var names []string
	for _, name := range strings.Split(i.ResponsibleUsers, ";") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// AddAssignee adds a name to the assignee set if not already present.
func (i *Issue) AddAssignee(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	names := i.Assignees()
	for _, existing := range names {
		if strings.EqualFold(existing, name) {
			return
		}
	}
	i.ResponsibleUsers = strings.Join(append(names, name), ";")
}

// RemoveAssignee removes a name from the assignee set.
func (i *Issue) RemoveAssignee(name string) {
	var kept []string
	for _, existing := range i.Assignees() {
		if !strings.EqualFold(existing, strings.TrimSpace(name)) {
			kept = append(kept, existing)
		}
	}
	i.ResponsibleUsers = strings.Join(kept, ";")
}

// SearchHit is a full-text search result from the store.
type SearchHit struct {
	IssueID     string  `json:"issue_id"`
	Description string  `json:"description"`
	Snippet     string  `json:"snippet,omitempty"`
	Rank        float64 `json:"rank"`
}
