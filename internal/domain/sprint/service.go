package sprint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sleipnirhq/sleipnir/internal/domain/auditlog"
	"github.com/sleipnirhq/sleipnir/internal/domain/issue"
	"github.com/sleipnirhq/sleipnir/internal/repository/repoerr"
)

// Rollover sprints run for this many days past the completed sprint's end.
const rolloverSprintDays = 15

// Service owns sprint activation, completion with rollover, and deletion
// with issue reassignment.
type Service struct {
	sprints Repository
	issues  IssueRepository
	audit   AuditLogRepository
	logger  *slog.Logger
}

// NewService creates a new sprint lifecycle service.
func NewService(sprints Repository, issues IssueRepository, audit AuditLogRepository, logger *slog.Logger) *Service {
	return &Service{
		sprints: sprints,
		issues:  issues,
		audit:   audit,
		logger:  logger,
	}
}

// PlanRequest describes a new sprint to plan.
type PlanRequest struct {
	ProjectID string
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// UpdateRequest describes a sprint edit.
type UpdateRequest struct {
	ID        string
	Name      *string
	StartDate *time.Time
	EndDate   *time.Time
}

// CompleteResult reports the outcome of completing a sprint.
type CompleteResult struct {
	RolledOver int     `json:"rolled_over"`
	Target     *Sprint `json:"target"`
	Active     []*Sprint
	Archived   []*Sprint
}

// Plan creates a sprint, deactivating any other active sprint for the
// project first so the new sprint is the single planning target.
func (s *Service) Plan(ctx context.Context, req PlanRequest) (*Sprint, error) {
	if req.ProjectID == "" || strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidDates
	}

	existing, err := s.sprints.ListByProject(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("listing sprints: %w", err)
	}
	for _, other := range existing {
		if !other.IsActive {
			continue
		}
		other.IsActive = false
		if err := s.sprints.Update(ctx, other); err != nil {
			return nil, fmt.Errorf("deactivating sprint %s: %w", other.ID, err)
		}
	}

	sp := &Sprint{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  true,
	}
	if err := s.sprints.Create(ctx, sp); err != nil {
		return nil, fmt.Errorf("creating sprint: %w", err)
	}
	return sp, nil
}

// Update edits a sprint's name and dates without touching activation.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Sprint, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}
	sp, err := s.get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		sp.Name = *req.Name
	}
	if req.StartDate != nil {
		sp.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		sp.EndDate = *req.EndDate
	}
	if sp.EndDate.Before(sp.StartDate) {
		return nil, ErrInvalidDates
	}
	if err := s.sprints.Update(ctx, sp); err != nil {
		return nil, fmt.Errorf("updating sprint: %w", err)
	}
	return sp, nil
}

// Get returns a sprint by id.
func (s *Service) Get(ctx context.Context, id string) (*Sprint, error) {
	return s.get(ctx, id)
}

// ListByProject returns all sprints for a project.
func (s *Service) ListByProject(ctx context.Context, projectID string) ([]*Sprint, error) {
	return s.sprints.ListByProject(ctx, projectID)
}

// Complete deactivates the sprint and rolls unfinished issues over to the
// next sprint, creating one when no active sprint starts after this one.
// Re-running completion is a no-op for already-migrated issues, so a
// partially failed run can be reconciled by running it again.
func (s *Service) Complete(ctx context.Context, sprintID, actor string) (*CompleteResult, error) {
	if sprintID == "" {
		return nil, ErrInvalidInput
	}
	outgoing, err := s.get(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	outgoing.IsActive = false
	if err := s.sprints.Update(ctx, outgoing); err != nil {
		return nil, fmt.Errorf("deactivating sprint: %w", err)
	}

	members, err := s.issues.ListBySprint(ctx, outgoing.ID)
	if err != nil {
		return nil, fmt.Errorf("listing sprint issues: %w", err)
	}
	var unfinished []*issue.Issue
	for _, iss := range members {
		if iss.Status != issue.StatusFinished {
			unfinished = append(unfinished, iss)
		}
	}

	all, err := s.sprints.ListByProject(ctx, outgoing.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("listing sprints: %w", err)
	}
	target := nextSprint(all, outgoing)
	if target == nil {
		target = &Sprint{
			ID:        uuid.NewString(),
			ProjectID: outgoing.ProjectID,
			Name:      fmt.Sprintf("Sprint %d", len(all)+1),
			StartDate: outgoing.EndDate.AddDate(0, 0, 1),
			EndDate:   outgoing.EndDate.AddDate(0, 0, rolloverSprintDays),
			IsActive:  true,
		}
		if err := s.sprints.Create(ctx, target); err != nil {
			return nil, fmt.Errorf("creating rollover sprint: %w", err)
		}
	}

	rolled := 0
	for _, iss := range unfinished {
		if iss.SprintID != nil && *iss.SprintID == target.ID {
			continue
		}
		iss.SprintID = &target.ID
		if err := s.issues.Update(ctx, iss); err != nil {
			return nil, fmt.Errorf("reassigning issue %s: %w", iss.ID, err)
		}
		rolled++
		s.appendAudit(ctx, &auditlog.Entry{
			IssueID:  iss.ID,
			Actor:    actor,
			Action:   auditlog.ActionRollover,
			Field:    "Sprint",
			OldValue: outgoing.Name,
			NewValue: target.Name,
			Details:  fmt.Sprintf("Moved from %s to %s (Unfinished)", outgoing.Name, target.Name),
		})
	}

	refreshed, err := s.sprints.ListByProject(ctx, outgoing.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("reloading sprints: %w", err)
	}
	active, archived := Partition(refreshed)

	s.logger.Info("sprint completed",
		"sprint", outgoing.ID,
		"target", target.ID,
		"rolled_over", rolled,
	)

	return &CompleteResult{
		RolledOver: rolled,
		Target:     target,
		Active:     active,
		Archived:   archived,
	}, nil
}

// AssignIssue puts an issue on a sprint. An empty sprintID clears the
// assignment. Assigning the sprint the issue is already on is a no-op.
func (s *Service) AssignIssue(ctx context.Context, issueID, sprintID, actor string) error {
	if issueID == "" {
		return ErrInvalidInput
	}
	iss, err := s.issues.Get(ctx, issueID)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return issue.ErrIssueNotFound
		}
		return fmt.Errorf("loading issue: %w", err)
	}

	if sprintID == "" {
		if iss.SprintID == nil {
			return nil
		}
		iss.SprintID = nil
		if err := s.issues.Update(ctx, iss); err != nil {
			return fmt.Errorf("unassigning issue: %w", err)
		}
		s.appendAudit(ctx, &auditlog.Entry{
			IssueID: iss.ID,
			Actor:   actor,
			Action:  auditlog.ActionUnassigned,
			Field:   "Sprint",
			Details: "Moved to backlog",
		})
		return nil
	}

	sp, err := s.get(ctx, sprintID)
	if err != nil {
		return err
	}
	if iss.SprintID != nil && *iss.SprintID == sp.ID {
		return nil
	}
	iss.SprintID = &sp.ID
	if err := s.issues.Update(ctx, iss); err != nil {
		return fmt.Errorf("assigning issue: %w", err)
	}
	s.appendAudit(ctx, &auditlog.Entry{
		IssueID:  iss.ID,
		Actor:    actor,
		Action:   auditlog.ActionPlanned,
		Field:    "Sprint",
		NewValue: sp.Name,
		Details:  fmt.Sprintf("Assigned to %s", sp.Name),
	})
	return nil
}

// Delete unassigns every member issue, writing one audit entry per issue,
// then removes the sprint record. Issues themselves are never deleted.
func (s *Service) Delete(ctx context.Context, sprintID, actor string) error {
	if sprintID == "" {
		return ErrInvalidInput
	}
	sp, err := s.get(ctx, sprintID)
	if err != nil {
		return err
	}

	members, err := s.issues.ListBySprint(ctx, sp.ID)
	if err != nil {
		return fmt.Errorf("listing sprint issues: %w", err)
	}
	for _, iss := range members {
		iss.SprintID = nil
		if err := s.issues.Update(ctx, iss); err != nil {
			return fmt.Errorf("unassigning issue %s: %w", iss.ID, err)
		}
		s.appendAudit(ctx, &auditlog.Entry{
			IssueID: iss.ID,
			Actor:   actor,
			Action:  auditlog.ActionUnassigned,
			Field:   "Sprint",
			Details: fmt.Sprintf("Removed from deleted sprint: %s", sp.Name),
		})
	}

	if err := s.sprints.Delete(ctx, sp.ID); err != nil {
		return fmt.Errorf("deleting sprint: %w", err)
	}
	return nil
}

func (s *Service) get(ctx context.Context, id string) (*Sprint, error) {
	sp, err := s.sprints.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrSprintNotFound
		}
		return nil, fmt.Errorf("loading sprint: %w", err)
	}
	return sp, nil
}

// nextSprint selects the active sprint (excluding the outgoing one) with
// the earliest start date not before the outgoing sprint's end date.
func nextSprint(all []*Sprint, outgoing *Sprint) *Sprint {
	var candidates []*Sprint
	for _, sp := range all {
		if sp.ID == outgoing.ID || !sp.IsActive {
			continue
		}
		if sp.StartDate.Before(outgoing.EndDate) {
			continue
		}
		candidates = append(candidates, sp)
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].StartDate.Before(candidates[j].StartDate)
	})
	return candidates[0]
}

func (s *Service) appendAudit(ctx context.Context, entry *auditlog.Entry) {
	if entry.Actor == "" {
		entry.Actor = auditlog.DefaultActor
	}
	entry.CreatedAt = time.Now()
	if err := s.audit.Append(ctx, entry); err != nil {
		s.logger.Warn("audit append failed", "issue", entry.IssueID, "action", entry.Action, "error", err)
	}
}
