// Package mcp serves the token pipeline as Model Context Protocol tools.
package mcp

import (
	"context"
	"time"

	"bennypowers.dev/csstokens/internal/config"
	"bennypowers.dev/csstokens/internal/log"
	"bennypowers.dev/csstokens/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server exposes extraction, cycle detection, statistics and palettes
type Server struct {
	mcpServer *server.MCPServer
	// defaults for requests that do not override them
	opts config.Options
}

// NewServer creates an MCP server whose tools start from opts
func NewServer(opts config.Options) *Server {
	s := &Server{opts: opts}

	s.mcpServer = server.NewMCPServer(
		"css-tokens",
		version.GetVersion(),
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(loggingMiddleware),
	)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: extractTokensTool(), Handler: s.handleExtractTokens},
		server.ServerTool{Tool: findCyclesTool(), Handler: s.handleFindCycles},
		server.ServerTool{Tool: tokenStatisticsTool(), Handler: s.handleTokenStatistics},
		server.ServerTool{Tool: colorPaletteTool(), Handler: s.handleColorPalette},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// loggingMiddleware logs every tool call at debug level
func loggingMiddleware(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := next(ctx, req)
		switch {
		case err != nil:
			log.Error("Tool %s failed: %v", req.Params.Name, err)
		case result != nil && result.IsError:
			log.Debug("Tool %s returned an error result in %s", req.Params.Name, time.Since(start))
		default:
			log.Debug("Tool %s completed in %s", req.Params.Name, time.Since(start))
		}
		return result, err
	}
}
