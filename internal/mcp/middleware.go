package mcp

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type contextKey int

const actorKey contextKey = iota

// getActor extracts the acting user's name from context.
func getActor(ctx context.Context) string {
	v, _ := ctx.Value(actorKey).(string)
	return v
}

// authMiddleware implements bearer token authentication as MCP middleware.
func authMiddleware(apiKey string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			// Skip auth for protocol methods
			if method == "initialize" || method == "ping" {
				return next(ctx, method, req)
			}

			extra := req.GetExtra()
			if extra == nil || extra.Header == nil {
				return nil, fmt.Errorf("unauthorized: missing headers")
			}

			auth := extra.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if token == "" {
				return nil, fmt.Errorf("unauthorized: missing bearer token")
			}
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
				return nil, fmt.Errorf("unauthorized: invalid bearer token")
			}

			return next(ctx, method, req)
		}
	}
}

// actorMiddleware extracts the acting user from the X-Sleipnir-Actor
// header (HTTP) or the "actor" metadata field (stdio). Mutations made
// without an actor are attributed to System by the audit layer.
func actorMiddleware() sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			var actor string

			extra := req.GetExtra()
			if extra != nil && extra.Header != nil {
				actor = extra.Header.Get("X-Sleipnir-Actor")
			}

			// Some notifications (like "initialized") have nil params,
			// and GetMeta can be called on a nil underlying value (SDK
			// quirk), so guard with recover.
			if actor == "" {
				if params := req.GetParams(); params != nil {
					func() {
						defer func() { recover() }()
						if meta := params.GetMeta(); meta != nil {
							if a, ok := meta["actor"].(string); ok {
								actor = a
							}
						}
					}()
				}
			}

			if actor != "" {
				ctx = context.WithValue(ctx, actorKey, actor)
			}

			return next(ctx, method, req)
		}
	}
}
