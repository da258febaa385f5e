// Package tools derives tool names and input schemas from parsed
// endpoints and indexes the resulting descriptors for dispatch.
package tools

import (
	"strings"

	"github.com/opencamara/camara-mcp/internal/inflect"
	"github.com/opencamara/camara-mcp/internal/openapi"
)

// prefix selects the verb prefix for a tool name from the endpoint's
// HTTP method and path shape. A GET whose path ends with a placeholder
// fetches one resource ("get"); any other GET lists a collection.
func prefix(e openapi.Endpoint) string {
	switch e.Method {
	case "GET":
		if strings.HasSuffix(e.Path, "}") {
			return "get"
		}
		return "list"
	case "POST":
		return "create"
	case "PUT", "PATCH":
		return "update"
	case "DELETE":
		return "delete"
	}
	return ""
}

// isPlaceholder reports whether a path segment is a {name} parameter.
func isPlaceholder(segment string) bool {
	return strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
}

// placeholderName strips the braces from a {name} segment.
func placeholderName(segment string) string {
	return strings.TrimSuffix(strings.TrimPrefix(segment, "{"), "}")
}

// ToolName derives the agent-facing tool name for an endpoint. The name
// is descriptive, not guaranteed unique: two endpoints can collide, in
// which case the later one wins in the name index. Forms produced:
//
//	/deputados               GET  -> list_deputados
//	/deputados/{id}          GET  -> get_deputado_by_id
//	/deputados/{id}/despesas GET  -> list_despesas_by_deputado
func ToolName(e openapi.Endpoint) string {
	pre := prefix(e)

	var parts []string
	for _, part := range strings.Split(e.Path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return pre + "_"
	}

	last := parts[len(parts)-1]
	if isPlaceholder(last) {
		resource := inflect.Singularize(parts[len(parts)-2])
		return pre + "_" + resource + "_by_" + placeholderName(last)
	}

	for i, part := range parts[:len(parts)-1] {
		if !isPlaceholder(part) {
			continue
		}
		parent := parts[len(parts)-1]
		if i > 0 {
			parent = parts[i-1]
		}
		return pre + "_" + parts[i+1] + "_by_" + inflect.Singularize(parent)
	}

	return pre + "_" + strings.Join(parts, "_")
}
