package tools

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/opencamara/camara-mcp/internal/openapi"
)

// BuildMCPTool converts a Descriptor into an mcp.Tool with one property
// per endpoint parameter, in document order.
func BuildMCPTool(d *Descriptor) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(d.Description)}
	for _, p := range d.Endpoint.Parameters {
		opts = append(opts, paramOption(p))
	}
	return mcp.NewTool(d.Name, opts...)
}

// paramOption maps an endpoint parameter to the matching mcp-go tool option.
func paramOption(p openapi.Parameter) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if p.Description != "" {
		opts = append(opts, mcp.Description(p.Description))
	}
	if p.Required {
		opts = append(opts, mcp.Required())
	}

	switch p.Schema.Type {
	case "integer", "number":
		return mcp.WithNumber(p.Name, opts...)
	case "boolean":
		return mcp.WithBoolean(p.Name, opts...)
	case "array":
		opts = append([]mcp.PropertyOption{mcp.WithStringItems()}, opts...)
		return mcp.WithArray(p.Name, opts...)
	default:
		// string, object, or unknown: all passed as string
		return mcp.WithString(p.Name, opts...)
	}
}
