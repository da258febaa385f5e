package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/opencamara/camara-mcp/internal/common"
)

// versionInfo is the get_version payload.
type versionInfo struct {
	Version string `json:"version"`
	Build   string `json:"build"`
	Commit  string `json:"commit"`
	BaseURL string `json:"base_url"`
	Tools   int    `json:"endpoint_tools"`
}

func versionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the camara-mcp server version and the number of registered endpoint tools. Use this to verify connectivity."),
	)
}

func handleVersion(t *Toolset) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		info := versionInfo{
			Version: common.GetVersion(),
			Build:   common.GetBuild(),
			Commit:  common.GetGitCommit(),
			BaseURL: t.client.BaseURL(),
			Tools:   t.reg.Len(),
		}
		out, err := json.Marshal(info)
		if err != nil {
			return errorResult("failed to marshal version info"), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{mcp.NewTextContent(string(out))},
		}, nil
	}
}
