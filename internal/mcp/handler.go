package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sleipnirhq/sleipnir/internal/domain/board"
	"github.com/sleipnirhq/sleipnir/internal/domain/issue"
	"github.com/sleipnirhq/sleipnir/internal/domain/project"
	"github.com/sleipnirhq/sleipnir/internal/domain/sprint"
)

const sprintDateLayout = "2006-01-02"

// Handler dispatches MCP commands.
type Handler struct {
	projects ProjectService
	issues   IssueService
	sprints  SprintService
	audit    AuditLogService
	engine   board.Engine
}

// NewHandler creates a new MCP handler.
func NewHandler(projects ProjectService, issues IssueService, sprints SprintService, audit AuditLogService) *Handler {
	return &Handler{
		projects: projects,
		issues:   issues,
		sprints:  sprints,
		audit:    audit,
	}
}

// Handle dispatches MCP requests to domain services.
func (h *Handler) Handle(ctx context.Context, actor, method string, params json.RawMessage) (any, error) {
	switch method {
	case "create_project":
		var req CreateProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		proj, err := h.projects.Create(ctx, project.CreateRequest{
			ID:          req.ID,
			Name:        req.Name,
			Description: req.Description,
			LogoURL:     req.LogoURL,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return proj, nil
	case "list_projects":
		projects, err := h.projects.List(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return projects, nil
	case "get_project":
		var req GetProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		proj, err := h.getProjectOrDefault(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return proj, nil
	case "update_project":
		var req UpdateProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		proj, err := h.projects.Update(ctx, project.UpdateRequest{
			ID:          req.ID,
			Name:        req.Name,
			Description: req.Description,
			LogoURL:     req.LogoURL,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return proj, nil
	case "delete_project":
		var req DeleteProjectParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.projects.Delete(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return map[string]string{"status": "deleted"}, nil
	case "add_collaborator":
		var req AddCollaboratorParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		collab, err := h.projects.AddCollaborator(ctx, req.Name, req.Email, req.AvatarURL)
		if err != nil {
			return nil, mapError(err)
		}
		return collab, nil
	case "list_collaborators":
		collabs, err := h.projects.ListCollaborators(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return collabs, nil
	case "create_issue":
		var req CreateIssueParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		projectID := req.ProjectID
		if projectID == "" {
			proj, err := h.projects.GetDefault(ctx)
			if err != nil {
				return nil, mapError(err)
			}
			projectID = proj.ID
		}
		iss, err := h.issues.Create(ctx, issue.CreateRequest{
			ProjectID:        projectID,
			SprintID:         optionalRef(req.SprintID),
			ParentIssueID:    optionalRef(req.ParentIssueID),
			ProgramComponent: req.ProgramComponent,
			SubComponents:    req.SubComponents,
			Description:      req.Description,
			LongDescription:  req.LongDescription,
			Type:             issue.Type(req.Type),
			Category:         issue.Category(req.Category),
			Status:           issue.Status(req.Status),
			Priority:         issue.Priority(req.Priority),
			ResponsibleUsers: req.ResponsibleUsers,
			Actor:            actor,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return iss, nil
	case "update_issue":
		var req UpdateIssueParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		iss, err := h.issues.Update(ctx, issue.UpdateRequest{
			ID:               req.ID,
			ProgramComponent: req.ProgramComponent,
			SubComponents:    req.SubComponents,
			Description:      req.Description,
			LongDescription:  req.LongDescription,
			Type:             typeRef(req.Type),
			Category:         categoryRef(req.Category),
			Priority:         priorityRef(req.Priority),
			ResponsibleUsers: req.ResponsibleUsers,
			ParentIssueID:    req.ParentIssueID,
			SprintID:         req.SprintID,
			Actor:            actor,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return iss, nil
	case "get_issue":
		var req GetIssueParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		iss, err := h.issues.Get(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return iss, nil
	case "set_issue_status":
		var req SetIssueStatusParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		iss, err := h.issues.SetStatus(ctx, req.ID, issue.Status(req.Status), actor)
		if err != nil {
			return nil, mapError(err)
		}
		return iss, nil
	case "archive_issue":
		var req ArchiveIssueParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		iss, err := h.issues.Archive(ctx, req.ID, issue.ChildChoice(req.Children), actor)
		if err != nil {
			return nil, mapError(err)
		}
		return iss, nil
	case "restore_issue":
		var req RestoreIssueParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		iss, err := h.issues.Restore(ctx, req.ID, actor)
		if err != nil {
			return nil, mapError(err)
		}
		return iss, nil
	case "unlink_issue":
		var req UnlinkIssueParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		iss, err := h.issues.Unlink(ctx, req.ID, actor)
		if err != nil {
			return nil, mapError(err)
		}
		return iss, nil
	case "delete_issue":
		var req DeleteIssueParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.issues.Delete(ctx, req.ID, issue.ChildChoice(req.Children), actor); err != nil {
			return nil, mapError(err)
		}
		return map[string]string{"status": "deleted"}, nil
	case "get_issue_log":
		var req GetIssueLogParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		entries, err := h.audit.ListByIssue(ctx, req.ID, req.Limit)
		if err != nil {
			return nil, mapError(err)
		}
		return IssueLogResponse{IssueID: req.ID, Entries: entries}, nil
	case "search_issues":
		var req SearchIssuesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		proj, err := h.getProjectOrDefault(ctx, req.ProjectID)
		if err != nil {
			return nil, mapError(err)
		}
		hits, err := h.issues.Search(ctx, proj.ID, req.Query, req.Limit)
		if err != nil {
			return nil, mapError(err)
		}
		return SearchIssuesResponse{Hits: hits}, nil
	case "plan_sprint":
		var req PlanSprintParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		proj, err := h.getProjectOrDefault(ctx, req.ProjectID)
		if err != nil {
			return nil, mapError(err)
		}
		start, err := parseSprintDate(req.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseSprintDate(req.EndDate)
		if err != nil {
			return nil, err
		}
		sp, err := h.sprints.Plan(ctx, sprint.PlanRequest{
			ProjectID: proj.ID,
			Name:      req.Name,
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return sp, nil
	case "update_sprint":
		var req UpdateSprintParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		update := sprint.UpdateRequest{ID: req.ID, Name: req.Name}
		if req.StartDate != nil {
			start, err := parseSprintDate(*req.StartDate)
			if err != nil {
				return nil, err
			}
			update.StartDate = &start
		}
		if req.EndDate != nil {
			end, err := parseSprintDate(*req.EndDate)
			if err != nil {
				return nil, err
			}
			update.EndDate = &end
		}
		sp, err := h.sprints.Update(ctx, update)
		if err != nil {
			return nil, mapError(err)
		}
		return sp, nil
	case "list_sprints":
		var req ListSprintsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		proj, err := h.getProjectOrDefault(ctx, req.ProjectID)
		if err != nil {
			return nil, mapError(err)
		}
		sprints, err := h.sprints.ListByProject(ctx, proj.ID)
		if err != nil {
			return nil, mapError(err)
		}
		active, archived := sprint.Partition(sprints)
		return SprintListResponse{Active: active, Archived: archived}, nil
	case "complete_sprint":
		var req CompleteSprintParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		result, err := h.sprints.Complete(ctx, req.ID, actor)
		if err != nil {
			return nil, mapError(err)
		}
		return result, nil
	case "delete_sprint":
		var req DeleteSprintParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.sprints.Delete(ctx, req.ID, actor); err != nil {
			return nil, mapError(err)
		}
		return map[string]string{"status": "deleted"}, nil
	case "assign_issue_to_sprint":
		var req AssignIssueToSprintParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.sprints.AssignIssue(ctx, req.IssueID, req.SprintID, actor); err != nil {
			return nil, mapError(err)
		}
		return map[string]string{"status": "assigned"}, nil
	case "get_board":
		var req GetBoardParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.getBoard(ctx, req)
	default:
		return nil, fmt.Errorf("unknown method: %s", method)
	}
}

// getBoard runs the full recomputation pass over the project's issue set
// and returns the filtered view.
func (h *Handler) getBoard(ctx context.Context, req GetBoardParams) (any, error) {
	proj, err := h.getProjectOrDefault(ctx, req.ProjectID)
	if err != nil {
		return nil, mapError(err)
	}
	issues, err := h.issues.ListByProject(ctx, proj.ID)
	if err != nil {
		return nil, mapError(err)
	}
	sprints, err := h.sprints.ListByProject(ctx, proj.ID)
	if err != nil {
		return nil, mapError(err)
	}

	params := board.Params{
		Category:    issue.Category(req.Category),
		SprintID:    optionalRef(req.SprintID),
		ShowArchive: req.ShowArchive,
		Query:       req.Query,
		Type:        req.Type,
		Priority:    req.Priority,
		Assignee:    req.Assignee,
	}
	view, ok := h.engine.Rebuild(issues, sprints, params)
	if !ok {
		return nil, fmt.Errorf("board rebuild already in progress")
	}

	active, archived := sprint.Partition(sprints)
	return BoardResponse{
		Project:         proj,
		View:            view,
		ActiveSprints:   active,
		ArchivedSprints: archived,
	}, nil
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	return json.Unmarshal(params, out)
}

func (h *Handler) getProjectOrDefault(ctx context.Context, projectID string) (*project.Project, error) {
	if projectID == "" {
		return h.projects.GetDefault(ctx)
	}
	return h.projects.Get(ctx, projectID)
}

func parseSprintDate(value string) (time.Time, error) {
	t, err := time.Parse(sprintDateLayout, value)
	if err != nil {
		return time.Time{}, &APIError{Code: "INVALID_DATES", Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value)}
	}
	return t, nil
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}

func optionalRef(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func typeRef(value *string) *issue.Type {
	if value == nil {
		return nil
	}
	typ := issue.Type(*value)
	return &typ
}

func categoryRef(value *string) *issue.Category {
	if value == nil {
		return nil
	}
	cat := issue.Category(*value)
	return &cat
}

func priorityRef(value *string) *issue.Priority {
	if value == nil {
		return nil
	}
	pri := issue.Priority(*value)
	return &pri
}
