// Package mcp wires the endpoint registry and dispatch client into an
// MCP server: one dynamic tool per API endpoint plus fixed convenience
// tools.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/opencamara/camara-mcp/internal/common"
	"github.com/opencamara/camara-mcp/internal/config"
	"github.com/opencamara/camara-mcp/internal/dispatch"
	"github.com/opencamara/camara-mcp/internal/openapi"
	"github.com/opencamara/camara-mcp/internal/tools"
)

// Toolset binds the dispatch client and the endpoint registry for tool
// handlers. The registry is built once and read-only afterwards.
type Toolset struct {
	client *dispatch.Client
	reg    *tools.Registry
	logger *common.Logger
}

// NewToolset creates a Toolset over a prebuilt registry. Tests use this
// with fixture registries instead of a fetched OpenAPI document.
func NewToolset(client *dispatch.Client, reg *tools.Registry, logger *common.Logger) *Toolset {
	return &Toolset{client: client, reg: reg, logger: logger}
}

// Registry returns the endpoint registry.
func (t *Toolset) Registry() *tools.Registry {
	return t.reg
}

// NewServer assembles the MCP server: loads the OpenAPI document (failing
// soft to zero endpoint tools), builds the registry, and registers
// dynamic and fixed tools.
func NewServer(ctx context.Context, cfg *config.Config, logger *common.Logger) (*server.MCPServer, *Toolset) {
	client := dispatch.NewClient(cfg.API.BaseURL, logger)

	doc := openapi.Load(ctx, cfg.API.SpecURL, cfg.API.SpecRetries, logger)
	endpoints := openapi.ParseEndpoints(doc)
	reg := tools.Build(endpoints, logger)
	ts := NewToolset(client, reg, logger)

	s := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	count := RegisterEndpointTools(s, ts)
	RegisterFixedTools(s, ts)

	logger.Info().
		Int("endpoint_tools", count).
		Str("base_url", cfg.API.BaseURL).
		Msg("MCP server initialized")

	return s, ts
}

// RegisterEndpointTools registers one MCP tool per registry descriptor.
// Descriptors sharing a derived name overwrite each other in registration
// order, matching the registry's name index.
func RegisterEndpointTools(s *server.MCPServer, ts *Toolset) int {
	for _, d := range ts.reg.Descriptors() {
		s.AddTool(tools.BuildMCPTool(d), endpointToolHandler(ts, d.Name))
	}
	return ts.reg.Len()
}

// RegisterFixedTools registers the convenience and introspection tools.
func RegisterFixedTools(s *server.MCPServer, ts *Toolset) {
	s.AddTool(findDeputyByNameTool(), handleFindDeputyByName(ts))
	s.AddTool(deputyExpensesTool(), handleDeputyExpenses(ts))
	s.AddTool(billsByAuthorTool(), handleBillsByAuthor(ts))
	s.AddTool(callEndpointTool(), handleCallEndpoint(ts))
	s.AddTool(describeEndpointTool(), handleDescribeEndpoint(ts))
	s.AddTool(versionTool(), handleVersion(ts))
}
