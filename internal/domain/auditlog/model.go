package auditlog

import "time"

// Action names the kind of change an audit entry records.
type Action string

const (
	ActionCreated       Action = "Created"
	ActionEdited        Action = "Edited"
	ActionStatusChanged Action = "Status Changed"
	ActionArchived      Action = "Archived"
	ActionRestored      Action = "Restored"
	ActionUnlinked      Action = "Unlinked"
	ActionPlanned       Action = "Planned"
	ActionRollover      Action = "Rollover"
	ActionUnassigned    Action = "Unassigned"
)

// Entry is one append-only audit record. Entries are never mutated or
// deleted once written.
type Entry struct {
	ID        int64     `json:"id"`
	IssueID   string    `json:"issue_id"`
	Actor     string    `json:"actor"`
	Action    Action    `json:"action"`
	Field     string    `json:"field,omitempty"`
	OldValue  string    `json:"old_value,omitempty"`
	NewValue  string    `json:"new_value,omitempty"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
