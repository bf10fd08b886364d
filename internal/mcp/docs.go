package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `Sleipnir tracks work as a three-level hierarchy inside projects:
Epics (Hub board) group Stories (Pipeline board), and Stories group leaf
issues such as Bugs and Features (Backlog board). Sprints slice the
Backlog by time.

Typical flow:

1. get_project (or create_project) to pick a workspace.
2. get_board with a category to see the current state. The board
   recomputes friendly IDs (Epic #00001 style), parent links, sprint
   tags and archivability on every call, so it is always consistent
   with the stored issues.
3. create_issue / update_issue / set_issue_status to work the items.
   Finishing the last open story of an epic finishes the epic
   automatically; reopening a story never reopens its epic.
4. plan_sprint, assign_issue_to_sprint, and complete_sprint to run the
   sprint cycle. Completing a sprint rolls unfinished issues into the
   next one, creating it when needed.

Archiving hides finished work without losing it (restore_issue brings
it back); delete_issue is permanent. Both prompt for a children
decision (cascade or unlink) when the issue has linked children.

Every mutation is recorded in the issue's audit trail (get_issue_log).
Pass the acting user's name via the X-Sleipnir-Actor header or the
"actor" metadata field so changes are attributed correctly.`

var docResources = []struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}{
	{
		URI:         "sleipnir://docs/hierarchy",
		Name:        "docs_hierarchy",
		Title:       "Issue hierarchy guide",
		Description: "How epics, stories and leaf issues relate, and how the board derives IDs and links.",
		Content: `# Issue hierarchy guide

Sleipnir issues live on one of three boards, selected by category:

- Hub: Epics. Long-running initiatives.
- Pipeline: Stories. Deliverable slices of an epic.
- Backlog: leaf issues (Bug, Feature, Patch, Overhaul, Alteration).

## Linking rules

- Stories link to epics. Leaf issues link to stories.
- Epics never have a parent.
- A leaf issue linked to a story inherits the story's epic for display.

## Derived fields

The board pass assigns friendly IDs per level in creation order
(Epic #00001, Story #00002, Issue #00003). They are display handles,
not storage keys: archiving or deleting an issue renumbers the rest.
Use the opaque issue ID for tool calls.

## Closure rule

When the last open story of an epic reaches Finished, the epic is
finished automatically and the change is logged. The rule only closes
epics; reopening a story leaves the epic finished.`,
	},
	{
		URI:         "sleipnir://docs/sprints",
		Name:        "docs_sprints",
		Title:       "Sprint workflow guide",
		Description: "Planning, completing and deleting sprints, and what happens to member issues.",
		Content: `# Sprint workflow guide

Sprints scope the Backlog board by time. An issue is on at most one
sprint; unassigned issues are "Unplanned".

## Planning

plan_sprint creates a sprint and makes it the single active planning
target (other active sprints are deactivated, not archived). Assign
issues with assign_issue_to_sprint.

## Completing

complete_sprint deactivates the sprint and rolls every unfinished
member issue into the next sprint: the earliest active sprint starting
on or after the completed sprint's end date, or a fresh two-week
sprint when none exists. Each moved issue gets a Rollover audit entry.
Finished issues stay on the completed sprint as its record.

## Deleting

delete_sprint moves member issues to the backlog (one Unassigned audit
entry each) and then removes the sprint. Issues are never deleted with
their sprint.`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
