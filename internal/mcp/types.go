package mcp

import (
	"github.com/sleipnirhq/sleipnir/internal/domain/auditlog"
	"github.com/sleipnirhq/sleipnir/internal/domain/board"
	"github.com/sleipnirhq/sleipnir/internal/domain/issue"
	"github.com/sleipnirhq/sleipnir/internal/domain/project"
	"github.com/sleipnirhq/sleipnir/internal/domain/sprint"
)

// Project params

type CreateProjectParams struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
}

type GetProjectParams struct {
	ID string `json:"id,omitempty"`
}

type UpdateProjectParams struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
}

type DeleteProjectParams struct {
	ID string `json:"id"`
}

type AddCollaboratorParams struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Issue params

type CreateIssueParams struct {
	ProjectID        string `json:"project_id,omitempty"`
	SprintID         string `json:"sprint_id,omitempty"`
	ParentIssueID    string `json:"parent_issue_id,omitempty"`
	ProgramComponent string `json:"program_component,omitempty"`
	SubComponents    string `json:"sub_components,omitempty"`
	Description      string `json:"description"`
	LongDescription  string `json:"long_description,omitempty"`
	Type             string `json:"type,omitempty"`
	Category         string `json:"category,omitempty"`
	Status           string `json:"status,omitempty"`
	Priority         string `json:"priority,omitempty"`
	ResponsibleUsers string `json:"responsible_users,omitempty"`
}

type UpdateIssueParams struct {
	ID               string  `json:"id"`
	ProgramComponent *string `json:"program_component,omitempty"`
	SubComponents    *string `json:"sub_components,omitempty"`
	Description      *string `json:"description,omitempty"`
	LongDescription  *string `json:"long_description,omitempty"`
	Type             *string `json:"type,omitempty"`
	Category         *string `json:"category,omitempty"`
	Priority         *string `json:"priority,omitempty"`
	ResponsibleUsers *string `json:"responsible_users,omitempty"`
	ParentIssueID    *string `json:"parent_issue_id,omitempty"`
	SprintID         *string `json:"sprint_id,omitempty"`
}

type GetIssueParams struct {
	ID string `json:"id"`
}

type SetIssueStatusParams struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ArchiveIssueParams struct {
	ID       string `json:"id"`
	Children string `json:"children,omitempty"` // "cascade" or "unlink"
}

type RestoreIssueParams struct {
	ID string `json:"id"`
}

type UnlinkIssueParams struct {
	ID string `json:"id"`
}

type DeleteIssueParams struct {
	ID       string `json:"id"`
	Children string `json:"children,omitempty"` // "cascade" or "unlink"
}

type GetIssueLogParams struct {
	ID    string `json:"id"`
	Limit int    `json:"limit,omitempty"`
}

type SearchIssuesParams struct {
	ProjectID string `json:"project_id,omitempty"`
	Query     string `json:"query"`
	Limit     int    `json:"limit,omitempty"`
}

// Sprint params

type PlanSprintParams struct {
	ProjectID string `json:"project_id,omitempty"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
}

type UpdateSprintParams struct {
	ID        string  `json:"id"`
	Name      *string `json:"name,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

type ListSprintsParams struct {
	ProjectID string `json:"project_id,omitempty"`
}

type CompleteSprintParams struct {
	ID string `json:"id"`
}

type DeleteSprintParams struct {
	ID string `json:"id"`
}

type AssignIssueToSprintParams struct {
	IssueID  string `json:"issue_id"`
	SprintID string `json:"sprint_id,omitempty"` // empty moves the issue to the backlog
}

// Board params

type GetBoardParams struct {
	ProjectID   string `json:"project_id,omitempty"`
	Category    string `json:"category"`
	SprintID    string `json:"sprint_id,omitempty"` // Backlog only; empty selects unplanned issues
	ShowArchive bool   `json:"show_archive,omitempty"`
	Query       string `json:"query,omitempty"`
	Type        string `json:"type,omitempty"`
	Priority    string `json:"priority,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
}

// Responses

type SprintListResponse struct {
	Active   []*sprint.Sprint `json:"active"`
	Archived []*sprint.Sprint `json:"archived"`
}

type BoardResponse struct {
	Project         *project.Project `json:"project"`
	View            board.View       `json:"view"`
	ActiveSprints   []*sprint.Sprint `json:"active_sprints"`
	ArchivedSprints []*sprint.Sprint `json:"archived_sprints"`
}

type IssueLogResponse struct {
	IssueID string          `json:"issue_id"`
	Entries []auditlog.Entry `json:"entries"`
}

type SearchIssuesResponse struct {
	Hits []issue.SearchHit `json:"hits"`
}
