package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sleipnirhq/sleipnir/internal/domain/auditlog"
	"github.com/sleipnirhq/sleipnir/internal/domain/issue"
	"github.com/sleipnirhq/sleipnir/internal/domain/project"
	"github.com/sleipnirhq/sleipnir/internal/domain/sprint"
	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Update(ctx context.Context, req project.UpdateRequest) (*project.Project, error)
	Get(ctx context.Context, id string) (*project.Project, error)
	GetDefault(ctx context.Context) (*project.Project, error)
	List(ctx context.Context) ([]*project.Project, error)
	Delete(ctx context.Context, id string) error
	AddCollaborator(ctx context.Context, name, email, avatarURL string) (*project.Collaborator, error)
	ListCollaborators(ctx context.Context) ([]*project.Collaborator, error)
}

// IssueService defines issue operations needed by MCP.
type IssueService interface {
	Create(ctx context.Context, req issue.CreateRequest) (*issue.Issue, error)
	Update(ctx context.Context, req issue.UpdateRequest) (*issue.Issue, error)
	SetStatus(ctx context.Context, id string, status issue.Status, actor string) (*issue.Issue, error)
	Archive(ctx context.Context, id string, choice issue.ChildChoice, actor string) (*issue.Issue, error)
	Restore(ctx context.Context, id, actor string) (*issue.Issue, error)
	Unlink(ctx context.Context, id, actor string) (*issue.Issue, error)
	Delete(ctx context.Context, id string, choice issue.ChildChoice, actor string) error
	Get(ctx context.Context, id string) (*issue.Issue, error)
	ListByProject(ctx context.Context, projectID string) ([]*issue.Issue, error)
	Search(ctx context.Context, projectID, query string, limit int) ([]issue.SearchHit, error)
}

// SprintService defines sprint lifecycle operations needed by MCP.
type SprintService interface {
	Plan(ctx context.Context, req sprint.PlanRequest) (*sprint.Sprint, error)
	Update(ctx context.Context, req sprint.UpdateRequest) (*sprint.Sprint, error)
	Get(ctx context.Context, id string) (*sprint.Sprint, error)
	ListByProject(ctx context.Context, projectID string) ([]*sprint.Sprint, error)
	Complete(ctx context.Context, sprintID, actor string) (*sprint.CompleteResult, error)
	AssignIssue(ctx context.Context, issueID, sprintID, actor string) error
	Delete(ctx context.Context, sprintID, actor string) error
}

// AuditLogService defines audit trail reads needed by MCP.
type AuditLogService interface {
	ListByIssue(ctx context.Context, issueID string, limit int) ([]auditlog.Entry, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Projects ProjectService
	Issues   IssueService
	Sprints  SprintService
	Audit    AuditLogService
}

// Config contains server configuration.
type Config struct {
	Services      Services
	AuthEnabled   bool
	APIKey        string
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "sleipnir",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	// Stdio mode: always disable auth (local dev only)
	if cfg.TransportMode != "stdio" && cfg.AuthEnabled {
		server.AddReceivingMiddleware(authMiddleware(cfg.APIKey))
	}
	server.AddReceivingMiddleware(actorMiddleware())
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}

// registerTools exposes the tool catalog through the SDK server, routing
// every call through the handler dispatch.
func registerTools(server *sdkmcp.Server, services Services) {
	handler := NewHandler(services.Projects, services.Issues, services.Sprints, services.Audit)
	for _, def := range buildToolCatalog() {
		def := def
		server.AddTool(&sdkmcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: mustSchema(def.InputSchema),
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
			var args json.RawMessage
			if req != nil && req.Params != nil {
				args = req.Params.Arguments
			}
			result, err := handler.Handle(ctx, getActor(ctx), def.Name, args)
			if err != nil {
				return toolError(err), nil
			}
			data, err := json.Marshal(result)
			if err != nil {
				return nil, fmt.Errorf("marshal tool result: %w", err)
			}
			return &sdkmcp.CallToolResult{
				Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
			}, nil
		})
	}
}

func toolError(err error) *sdkmcp.CallToolResult {
	payload := err.Error()
	if apiErr, ok := err.(*APIError); ok {
		if data, jsonErr := json.Marshal(apiErr); jsonErr == nil {
			payload = string(data)
		}
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: payload}},
		IsError: true,
	}
}

func mustSchema(schema map[string]any) *jsonschema.Schema {
	data, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("invalid tool schema: %v", err))
	}
	var out jsonschema.Schema
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("invalid tool schema: %v", err))
	}
	return &out
}
