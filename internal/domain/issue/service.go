package issue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sleipnirhq/sleipnir/internal/domain/auditlog"
	"github.com/sleipnirhq/sleipnir/internal/repository/repoerr"
)

// Service handles issue mutations. Every mutation persists through the
// store first and writes its audit entry only after the store confirms.
type Service struct {
	issues Repository
	audit  AuditLogRepository
	search SearchRepository
	logger *slog.Logger
}

// NewService creates a new issue service.
func NewService(issues Repository, audit AuditLogRepository, search SearchRepository, logger *slog.Logger) *Service {
	return &Service{
		issues: issues,
		audit:  audit,
		search: search,
		logger: logger,
	}
}

// CreateRequest describes an issue creation request.
type CreateRequest struct {
	ProjectID        string
	SprintID         *string
	ParentIssueID    *string
	ProgramComponent string
	SubComponents    string
	Description      string
	LongDescription  string
	Type             Type
	Category         Category
	Status           Status
	Priority         Priority
	ResponsibleUsers string
	Actor            string
}

// UpdateRequest describes an issue edit. Nil pointers leave the field
// untouched; a pointer to the empty string clears optional references.
type UpdateRequest struct {
	ID               string
	ProgramComponent *string
	SubComponents    *string
	Description      *string
	LongDescription  *string
	Type             *Type
	Category         *Category
	Priority         *Priority
	ResponsibleUsers *string
	ParentIssueID    *string
	SprintID         *string
	Actor            string
}

// Create creates an issue, defaulting type and status from the category
// the way the board does.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Issue, error) {
	if req.ProjectID == "" || req.Description == "" {
		return nil, ErrInvalidInput
	}

	typ := req.Type
	if typ == "" {
		switch req.Category {
		case CategoryHub:
			typ = TypeEpic
		case CategoryPipeline:
			typ = TypeStory
		default:
			typ = TypeBug
		}
	}
	category := req.Category
	if category == "" {
		category = CategoryBacklog
	}
	status := req.Status
	if status == "" {
		status = StatusOpen
	}
	priority := req.Priority
	if priority == "" {
		priority = PriorityNeutral
	}

	if req.ParentIssueID != nil {
		if err := s.validateParent(ctx, typ, *req.ParentIssueID); err != nil {
			return nil, err
		}
	}

	iss := &Issue{
		ID:               uuid.NewString(),
		ProjectID:        req.ProjectID,
		SprintID:         req.SprintID,
		ProgramComponent: req.ProgramComponent,
		SubComponents:    req.SubComponents,
		Description:      req.Description,
		LongDescription:  req.LongDescription,
		Type:             typ,
		Category:         category,
		Status:           status,
		Priority:         priority,
		ResponsibleUsers: req.ResponsibleUsers,
		ParentIssueID:    req.ParentIssueID,
		CreatedAt:        time.Now(),
	}
	if err := s.issues.Create(ctx, iss); err != nil {
		return nil, fmt.Errorf("creating issue: %w", err)
	}

	s.appendAudit(ctx, &auditlog.Entry{
		IssueID: iss.ID,
		Actor:   req.Actor,
		Action:  auditlog.ActionCreated,
		Details: iss.Description,
	})
	return iss, nil
}

// Update edits an issue's content and references.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Issue, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}
	iss, err := s.get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.ProgramComponent != nil {
		iss.ProgramComponent = *req.ProgramComponent
	}
	if req.SubComponents != nil {
		iss.SubComponents = *req.SubComponents
	}
	if req.Description != nil {
		iss.Description = *req.Description
	}
	if req.LongDescription != nil {
		iss.LongDescription = *req.LongDescription
	}
	if req.Type != nil {
		iss.Type = *req.Type
	}
	if req.Category != nil {
		iss.Category = *req.Category
	}
	if req.Priority != nil {
		iss.Priority = *req.Priority
	}
	if req.ResponsibleUsers != nil {
		iss.ResponsibleUsers = *req.ResponsibleUsers
	}
	if req.ParentIssueID != nil {
		if *req.ParentIssueID == "" {
			iss.ParentIssueID = nil
		} else {
			if err := s.validateParent(ctx, iss.Type, *req.ParentIssueID); err != nil {
				return nil, err
			}
			iss.ParentIssueID = req.ParentIssueID
		}
	}
	if req.SprintID != nil {
		if *req.SprintID == "" {
			iss.SprintID = nil
		} else {
			iss.SprintID = req.SprintID
		}
	}

	if err := s.issues.Update(ctx, iss); err != nil {
		return nil, fmt.Errorf("updating issue: %w", err)
	}

	s.appendAudit(ctx, &auditlog.Entry{
		IssueID: iss.ID,
		Actor:   req.Actor,
		Action:  auditlog.ActionEdited,
		Details: iss.Description,
	})
	return iss, nil
}

// SetStatus changes an issue's workflow status. When the issue is a story
// with a parent epic, finishing the last open sibling story auto-finishes
// the epic. The check is one-directional: reopening a story never reopens
// its epic.
func (s *Service) SetStatus(ctx context.Context, id string, status Status, actor string) (*Issue, error) {
	if id == "" || status == "" {
		return nil, ErrInvalidInput
	}
	iss, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if iss.Status == status {
		return iss, nil
	}

	old := iss.Status
	iss.Status = status
	if err := s.issues.Update(ctx, iss); err != nil {
		return nil, fmt.Errorf("updating issue status: %w", err)
	}

	s.appendAudit(ctx, &auditlog.Entry{
		IssueID:  iss.ID,
		Actor:    actor,
		Action:   auditlog.ActionStatusChanged,
		Field:    "Status",
		OldValue: string(old),
		NewValue: string(status),
	})

	if iss.Type.IsStory() && iss.ParentIssueID != nil {
		if err := s.closeParentEpicIfDone(ctx, *iss.ParentIssueID, actor); err != nil {
			return nil, err
		}
	}
	return iss, nil
}

// Archive sets an issue's status to Archived, handling linked children per
// the already-decided disposition. Archiving never removes records.
func (s *Service) Archive(ctx context.Context, id string, choice ChildChoice, actor string) (*Issue, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	iss, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	children, err := s.structuralChildren(ctx, iss)
	if err != nil {
		return nil, err
	}
	handling := DecideChildHandling(len(children), choice)
	if handling.Abort {
		return nil, ErrAborted
	}
	if handling.CascadeChildren {
		for _, child := range children {
			child.Status = StatusArchived
			if err := s.issues.Update(ctx, child); err != nil {
				return nil, fmt.Errorf("archiving child %s: %w", child.ID, err)
			}
			s.appendAudit(ctx, &auditlog.Entry{
				IssueID: child.ID,
				Actor:   actor,
				Action:  auditlog.ActionArchived,
				Details: fmt.Sprintf("Archived with parent %s", iss.Description),
			})
		}
	}
	if handling.UnlinkChildren {
		for _, child := range children {
			child.ParentIssueID = nil
			if err := s.issues.Update(ctx, child); err != nil {
				return nil, fmt.Errorf("unlinking child %s: %w", child.ID, err)
			}
		}
	}

	iss.Status = StatusArchived
	if err := s.issues.Update(ctx, iss); err != nil {
		return nil, fmt.Errorf("archiving issue: %w", err)
	}
	s.appendAudit(ctx, &auditlog.Entry{
		IssueID: iss.ID,
		Actor:   actor,
		Action:  auditlog.ActionArchived,
	})
	return iss, nil
}

// Restore brings an archived issue back as Finished.
func (s *Service) Restore(ctx context.Context, id, actor string) (*Issue, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	iss, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	old := iss.Status
	iss.Status = StatusFinished
	if err := s.issues.Update(ctx, iss); err != nil {
		return nil, fmt.Errorf("restoring issue: %w", err)
	}
	s.appendAudit(ctx, &auditlog.Entry{
		IssueID:  iss.ID,
		Actor:    actor,
		Action:   auditlog.ActionRestored,
		Field:    "Status",
		OldValue: string(old),
		NewValue: string(StatusFinished),
	})
	return iss, nil
}

// Unlink detaches an issue from its parent and re-evaluates the old
// parent's closure rule.
func (s *Service) Unlink(ctx context.Context, id, actor string) (*Issue, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	iss, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	oldParent := iss.ParentIssueID
	iss.ParentIssueID = nil
	if err := s.issues.Update(ctx, iss); err != nil {
		return nil, fmt.Errorf("unlinking issue: %w", err)
	}
	s.appendAudit(ctx, &auditlog.Entry{
		IssueID: iss.ID,
		Actor:   actor,
		Action:  auditlog.ActionUnlinked,
	})

	if oldParent != nil {
		if err := s.closeParentEpicIfDone(ctx, *oldParent, actor); err != nil {
			return nil, err
		}
	}
	return iss, nil
}

// Delete permanently removes an issue, handling linked children per the
// already-decided disposition: cascade deletes them, unlink detaches them.
func (s *Service) Delete(ctx context.Context, id string, choice ChildChoice, actor string) error {
	if id == "" {
		return ErrInvalidInput
	}
	iss, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	children, err := s.structuralChildren(ctx, iss)
	if err != nil {
		return err
	}
	handling := DecideChildHandling(len(children), choice)
	if handling.Abort {
		return ErrAborted
	}
	if handling.CascadeChildren {
		for _, child := range children {
			if err := s.issues.Delete(ctx, child.ID); err != nil {
				return fmt.Errorf("deleting child %s: %w", child.ID, err)
			}
		}
	}
	if handling.UnlinkChildren {
		for _, child := range children {
			child.ParentIssueID = nil
			if err := s.issues.Update(ctx, child); err != nil {
				return fmt.Errorf("unlinking child %s: %w", child.ID, err)
			}
		}
	}

	oldParent := iss.ParentIssueID
	if err := s.issues.Delete(ctx, iss.ID); err != nil {
		return fmt.Errorf("deleting issue: %w", err)
	}

	if oldParent != nil {
		if err := s.closeParentEpicIfDone(ctx, *oldParent, actor); err != nil {
			return err
		}
	}
	return nil
}

// Get returns an issue by id.
func (s *Service) Get(ctx context.Context, id string) (*Issue, error) {
	return s.get(ctx, id)
}

// ListByProject returns the full issue set for a project.
func (s *Service) ListByProject(ctx context.Context, projectID string) ([]*Issue, error) {
	return s.issues.ListByProject(ctx, projectID)
}

// Search runs full-text search over issue text in the store.
func (s *Service) Search(ctx context.Context, projectID, query string, limit int) ([]SearchHit, error) {
	if s.search == nil {
		return nil, fmt.Errorf("search repository not configured")
	}
	return s.search.Search(ctx, projectID, query, limit)
}

// closeParentEpicIfDone finishes an epic once every child story is
// Finished. Requires at least one child story; already-finished epics are
// left alone.
func (s *Service) closeParentEpicIfDone(ctx context.Context, parentID, actor string) error {
	parent, err := s.issues.Get(ctx, parentID)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("loading parent: %w", err)
	}
	if !parent.Type.IsEpic() || parent.Status == StatusFinished {
		return nil
	}

	children, err := s.issues.GetChildren(ctx, parent.ID)
	if err != nil {
		return fmt.Errorf("loading epic stories: %w", err)
	}
	stories := 0
	for _, child := range children {
		if !child.Type.IsStory() {
			continue
		}
		stories++
		if child.Status != StatusFinished {
			return nil
		}
	}
	if stories == 0 {
		return nil
	}

	old := parent.Status
	parent.Status = StatusFinished
	if err := s.issues.Update(ctx, parent); err != nil {
		return fmt.Errorf("auto-finishing epic: %w", err)
	}
	s.appendAudit(ctx, &auditlog.Entry{
		IssueID:  parent.ID,
		Actor:    actor,
		Action:   auditlog.ActionStatusChanged,
		Field:    "Status",
		OldValue: string(old),
		NewValue: string(StatusFinished),
		Details:  "All stories finished",
	})
	return nil
}

// structuralChildren returns the direct children of an epic or story.
// Leaf issues never have children.
func (s *Service) structuralChildren(ctx context.Context, iss *Issue) ([]*Issue, error) {
	if iss.Type.IsLeaf() {
		return nil, nil
	}
	children, err := s.issues.GetChildren(ctx, iss.ID)
	if err != nil {
		return nil, fmt.Errorf("loading children: %w", err)
	}
	return children, nil
}

func (s *Service) validateParent(ctx context.Context, typ Type, parentID string) error {
	parent, err := s.issues.Get(ctx, parentID)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return ErrInvalidParent
		}
		return fmt.Errorf("loading parent: %w", err)
	}
	// Stories link to epics; leaves link to stories only.
	switch {
	case typ.IsEpic():
		return ErrInvalidParent
	case typ.IsStory():
		if !parent.Type.IsEpic() {
			return ErrInvalidParent
		}
	default:
		if !parent.Type.IsStory() {
			return ErrInvalidParent
		}
	}
	return nil
}

func (s *Service) get(ctx context.Context, id string) (*Issue, error) {
	iss, err := s.issues.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repoerr.ErrNotFound) {
			return nil, ErrIssueNotFound
		}
		return nil, fmt.Errorf("loading issue: %w", err)
	}
	return iss, nil
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
