// Package openapi loads the Câmara dos Deputados OpenAPI document and
// flattens it into endpoint records the tool registry is built from.
package openapi

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ParameterSchema describes the value shape of a single parameter.
type ParameterSchema struct {
	Type    string      `json:"type"`
	Format  string      `json:"format,omitempty"`
	Default interface{} `json:"default,omitempty"`
}

// Parameter is one callable input of an endpoint.
type Parameter struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Required    bool            `json:"required"`
	Schema      ParameterSchema `json:"schema"`
}

// EndpointSummary identifies one (path, method) operation.
type EndpointSummary struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description,omitempty"`
}

// Endpoint is a full callable operation with its parameters in document order.
type Endpoint struct {
	EndpointSummary
	Parameters []Parameter `json:"parameters"`
}

// Operation is the raw per-method entry of the document's path table.
type Operation struct {
	Description string              `json:"description"`
	Parameters  []DeclaredParameter `json:"parameters"`
}

// DeclaredParameter is a parameter as declared in the document, including
// its location ("in"). Only path and query parameters survive parsing.
type DeclaredParameter struct {
	Name        string          `json:"name"`
	In          string          `json:"in"`
	Description string          `json:"description"`
	Required    bool            `json:"required"`
	Schema      ParameterSchema `json:"schema"`
}

// Document is the subset of an OpenAPI document this server consumes.
// The path and method tables are ordered maps so endpoints come out in
// the same order the document declares them; plain Go maps would
// randomize the iteration order between runs.
type Document struct {
	Paths *orderedmap.OrderedMap[string, *orderedmap.OrderedMap[string, Operation]] `json:"paths"`
}
