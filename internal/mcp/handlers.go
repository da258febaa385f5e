package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/opencamara/camara-mcp/internal/dispatch"
)

// errorResult creates a plain-text MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// envelopeResult serializes a result envelope as JSON text content.
// IsError mirrors the envelope status so MCP clients see failures without
// parsing the payload.
func envelopeResult(env dispatch.Envelope) *mcp.CallToolResult {
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("failed to serialize result: %v", err))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(string(out))},
		IsError: env.IsError(),
	}
}

// CallByName dispatches a tool invocation by registry name. This is the
// inbound (toolName, arguments) entrypoint; an unknown name produces a
// plain text error result rather than a protocol fault.
func (t *Toolset) CallByName(ctx context.Context, name string, args map[string]interface{}) *mcp.CallToolResult {
	d, ok := t.reg.ByName(name)
	if !ok {
		t.logger.Warn().Str("tool", name).Msg("called unknown tool")
		return errorResult(fmt.Sprintf("called unknown tool %q", name))
	}
	return envelopeResult(t.client.Call(ctx, d.Method, d.Path, args))
}

// endpointToolHandler routes a dynamic endpoint tool call through the
// registry.
func endpointToolHandler(t *Toolset, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return t.CallByName(ctx, name, r.GetArguments()), nil
	}
}

// --- Fixed tools ---

func findDeputyByNameTool() mcp.Tool {
	return mcp.NewTool("find_deputy_by_name",
		mcp.WithDescription("Find deputies by (partial) name. Returns the matching deputies with their ids."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Deputy name or part of it (e.g. 'Silva')")),
	)
}

func handleFindDeputyByName(t *Toolset) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := r.RequireString("name")
		if err != nil {
			return errorResult("Error: name parameter is required"), nil
		}
		return envelopeResult(t.client.FindDeputyByName(ctx, name)), nil
	}
}

func deputyExpensesTool() mcp.Tool {
	return mcp.NewTool("get_deputy_expenses",
		mcp.WithDescription("Get a deputy's declared expenses. Accepts either a deputy id or a name; a name must resolve to exactly one deputy."),
		mcp.WithString("name", mcp.Description("Deputy name, used when deputy_id is not given. Must match exactly one deputy.")),
		mcp.WithNumber("deputy_id", mcp.Description("Deputy id, as returned by find_deputy_by_name")),
		mcp.WithNumber("year", mcp.Description("Filter expenses by year (e.g. 2023)")),
		mcp.WithNumber("month", mcp.Description("Filter expenses by month (1-12)")),
	)
}

func handleDeputyExpenses(t *Toolset) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q := dispatch.ExpensesQuery{
			Name:     r.GetString("name", ""),
			DeputyID: int64(r.GetInt("deputy_id", 0)),
			Year:     r.GetInt("year", 0),
			Month:    r.GetInt("month", 0),
		}
		return envelopeResult(t.client.DeputyExpenses(ctx, q)), nil
	}
}

func billsByAuthorTool() mcp.Tool {
	return mcp.NewTool("get_bills_by_author",
		mcp.WithDescription("List bills (proposições) by author. Requires author_name or deputy_id; the date range defaults to the last 365 days."),
		mcp.WithString("author_name", mcp.Description("Author name to filter bills by")),
		mcp.WithNumber("deputy_id", mcp.Description("Deputy id to filter bills by")),
		mcp.WithString("start_date", mcp.Description("Start of the presentation date range (YYYY-MM-DD)")),
		mcp.WithString("end_date", mcp.Description("End of the presentation date range (YYYY-MM-DD)")),
	)
}

func handleBillsByAuthor(t *Toolset) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q := dispatch.BillsQuery{
			AuthorName: r.GetString("author_name", ""),
			DeputyID:   int64(r.GetInt("deputy_id", 0)),
			StartDate:  r.GetString("start_date", ""),
			EndDate:    r.GetString("end_date", ""),
		}
		return envelopeResult(t.client.BillsByAuthor(ctx, q)), nil
	}
}

func callEndpointTool() mcp.Tool {
	return mcp.NewTool("call_endpoint",
		mcp.WithDescription("Call an arbitrary API endpoint by path template. GET only; {name} placeholders in the path are filled from params."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Endpoint path template (e.g. '/deputados/{id}/despesas')")),
		mcp.WithString("method", mcp.Description("HTTP method; only GET is accepted (default GET)")),
		mcp.WithObject("params", mcp.Description("Path and query parameters as a flat object")),
	)
}

func handleCallEndpoint(t *Toolset) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := r.RequireString("path")
		if err != nil {
			return errorResult("Error: path parameter is required"), nil
		}
		method := r.GetString("method", http.MethodGet)
		if method != http.MethodGet {
			return envelopeResult(dispatch.Errorf("invalid method %q: only GET is allowed here", method)), nil
		}

		params, _ := r.GetArguments()["params"].(map[string]interface{})
		return envelopeResult(t.client.Call(ctx, http.MethodGet, path, params)), nil
	}
}

func describeEndpointTool() mcp.Tool {
	return mcp.NewTool("describe_endpoint",
		mcp.WithDescription("Describe an endpoint tool's input schema by HTTP method and path template. Use this after a 400 error to check parameter names and types."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Endpoint path template (e.g. '/deputados/{id}')")),
		mcp.WithString("method", mcp.Description("HTTP method (default GET)")),
	)
}

func handleDescribeEndpoint(t *Toolset) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := r.RequireString("path")
		if err != nil {
			return errorResult("Error: path parameter is required"), nil
		}
		method := r.GetString("method", http.MethodGet)

		d, ok := t.reg.ByKey(method, path)
		if !ok {
			return errorResult(fmt.Sprintf("no endpoint %s %s in the registry", method, path)), nil
		}

		out, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return errorResult(fmt.Sprintf("failed to serialize descriptor: %v", err)), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{mcp.NewTextContent(string(out))},
		}, nil
	}
}
