package mcp

// ToolDefinition describes a callable tool
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]any
}

func stringProp(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func intProp(description string) map[string]any {
	return map[string]any{"type": "integer", "description": description}
}

func boolProp(description string) map[string]any {
	return map[string]any{"type": "boolean", "description": description}
}

func enumProp(description string, values ...string) map[string]any {
	return map[string]any{"type": "string", "description": description, "enum": values}
}

var statusValues = []string{"Open", "Blocked", "In Progress", "Testing", "Finished", "Archived"}

// buildToolCatalog returns all available MCP tools
func buildToolCatalog() []ToolDefinition {
	return []ToolDefinition{
		// Projects
		{
			Name:        "create_project",
			Description: "Create a new project to organize issues and sprints",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          stringProp("Unique project identifier (optional, generated if omitted)"),
					"name":        stringProp("Project display name"),
					"description": stringProp("Project description"),
					"logo_url":    stringProp("Project logo URL"),
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "list_projects",
			Description: "List all projects",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "get_project",
			Description: "Get details for a specific project or the default project",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": stringProp("Project ID (omit to get default project)"),
				},
			},
		},
		{
			Name:        "update_project",
			Description: "Update a project's name, description or logo",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          stringProp("Project ID"),
					"name":        stringProp("New display name"),
					"description": stringProp("New description"),
					"logo_url":    stringProp("New logo URL (empty string clears it)"),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "delete_project",
			Description: "Delete a project",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": stringProp("Project ID"),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "add_collaborator",
			Description: "Register a collaborator in the assignee directory",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":       stringProp("Collaborator display name"),
					"email":      stringProp("Collaborator email"),
					"avatar_url": stringProp("Avatar image URL"),
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "list_collaborators",
			Description: "List the assignee directory",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},

		// Issues
		{
			Name:        "create_issue",
			Description: "Create an issue. Type defaults from the category: Hub creates epics, Pipeline creates stories, Backlog creates leaf issues",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id":        stringProp("Project ID (omit to use default project)"),
					"sprint_id":         stringProp("Sprint to place the issue on"),
					"parent_issue_id":   stringProp("Parent issue: an epic for stories, a story for leaf issues"),
					"program_component": stringProp("Top-level component the issue belongs to"),
					"sub_components":    stringProp("Semicolon-separated sub-components"),
					"description":       stringProp("Issue title"),
					"long_description":  stringProp("Detailed description"),
					"type":              enumProp("Issue type", "Epic", "Story", "Bug", "Feature", "Patch", "Overhaul", "Alteration"),
					"category":          enumProp("Board the issue lives on", "Hub", "Pipeline", "Backlog"),
					"status":            enumProp("Initial workflow status", statusValues...),
					"priority":          stringProp("Priority label"),
					"responsible_users": stringProp("Semicolon-separated assignee names"),
				},
				"required": []string{"description"},
			},
		},
		{
			Name:        "update_issue",
			Description: "Update an issue's content and references. Empty parent_issue_id or sprint_id clears the reference",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":                stringProp("Issue ID"),
					"program_component": stringProp("New component"),
					"sub_components":    stringProp("New semicolon-separated sub-components"),
					"description":       stringProp("New title"),
					"long_description":  stringProp("New detailed description"),
					"type":              stringProp("New issue type"),
					"category":          enumProp("New board", "Hub", "Pipeline", "Backlog"),
					"priority":          stringProp("New priority label"),
					"responsible_users": stringProp("New semicolon-separated assignee names"),
					"parent_issue_id":   stringProp("New parent issue ID (empty string unlinks)"),
					"sprint_id":         stringProp("New sprint ID (empty string moves to backlog)"),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "get_issue",
			Description: "Get an issue by ID",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": stringProp("Issue ID"),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "set_issue_status",
			Description: "Change an issue's workflow status. Finishing the last open story of an epic finishes the epic",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":     stringProp("Issue ID"),
					"status": enumProp("Target status", statusValues...),
				},
				"required": []string{"id", "status"},
			},
		},
		{
			Name:        "archive_issue",
			Description: "Archive an issue. Issues with linked children need a children decision: cascade archives them too, unlink detaches them",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       stringProp("Issue ID"),
					"children": enumProp("What happens to linked children", "cascade", "unlink"),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "restore_issue",
			Description: "Restore an archived issue back to Finished",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": stringProp("Issue ID"),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "unlink_issue",
			Description: "Detach an issue from its parent",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": stringProp("Issue ID"),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "delete_issue",
			Description: "Permanently delete an issue. Issues with linked children need a children decision: cascade deletes them too, unlink detaches them",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       stringProp("Issue ID"),
					"children": enumProp("What happens to linked children", "cascade", "unlink"),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "get_issue_log",
			Description: "Get an issue's audit trail, newest first",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":    stringProp("Issue ID"),
					"limit": intProp("Maximum number of entries"),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "search_issues",
			Description: "Full-text search over issue titles, descriptions and assignees",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": stringProp("Project ID (omit to use default project)"),
					"query":      stringProp("Search query text"),
					"limit":      intProp("Maximum number of results"),
				},
				"required": []string{"query"},
			},
		},

		// Sprints
		{
			Name:        "plan_sprint",
			Description: "Plan a new sprint, deactivating any other active sprint in the project",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": stringProp("Project ID (omit to use default project)"),
					"name":       stringProp("Sprint name"),
					"start_date": stringProp("Start date (YYYY-MM-DD)"),
					"end_date":   stringProp("End date (YYYY-MM-DD)"),
				},
				"required": []string{"name", "start_date", "end_date"},
			},
		},
		{
			Name:        "update_sprint",
			Description: "Update a sprint's name or dates",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":         stringProp("Sprint ID"),
					"name":       stringProp("New sprint name"),
					"start_date": stringProp("New start date (YYYY-MM-DD)"),
					"end_date":   stringProp("New end date (YYYY-MM-DD)"),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "list_sprints",
			Description: "List a project's sprints partitioned into active and archived",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id": stringProp("Project ID (omit to use default project)"),
				},
			},
		},
		{
			Name:        "complete_sprint",
			Description: "Complete a sprint, rolling unfinished issues over to the next sprint (created automatically when none exists)",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": stringProp("Sprint ID"),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "delete_sprint",
			Description: "Delete a sprint, moving its member issues to the backlog",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": stringProp("Sprint ID"),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "assign_issue_to_sprint",
			Description: "Put an issue on a sprint, or move it to the backlog when sprint_id is omitted",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"issue_id":  stringProp("Issue ID"),
					"sprint_id": stringProp("Sprint ID (omit to move the issue to the backlog)"),
				},
				"required": []string{"issue_id"},
			},
		},

		// Board
		{
			Name:        "get_board",
			Description: "Recompute the project board (friendly IDs, hierarchy, archivability, sprint tags) and return the filtered, status-bucketed view",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"project_id":   stringProp("Project ID (omit to use default project)"),
					"category":     enumProp("Board to view", "Hub", "Pipeline", "Backlog"),
					"sprint_id":    stringProp("Backlog only: sprint to scope to (omit for unplanned issues)"),
					"show_archive": boolProp("Show only archived issues"),
					"query":        stringProp("Free-text filter over titles, descriptions, formatted IDs and assignees"),
					"type":         stringProp("Exact type filter ('All' disables)"),
					"priority":     stringProp("Exact priority filter ('All' disables)"),
					"assignee":     stringProp("Assignee substring filter ('All' disables)"),
				},
				"required": []string{"category"},
			},
		},
	}
}
