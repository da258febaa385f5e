package openapi

import (
	"strings"
)

// ParseEndpoints flattens the document's path table into Endpoint records,
// in document order. Only path and query parameters are kept; body and
// header parameters are dropped since tools only make read-style calls
// with scalar inputs. A nil document yields no endpoints.
func ParseEndpoints(doc *Document) []Endpoint {
	if doc == nil || doc.Paths == nil {
		return nil
	}

	var endpoints []Endpoint
	for entry := doc.Paths.Oldest(); entry != nil; entry = entry.Next() {
		path := entry.Key
		for op := entry.Value.Oldest(); op != nil; op = op.Next() {
			var params []Parameter
			for _, dp := range op.Value.Parameters {
				if dp.In != "query" && dp.In != "path" {
					continue
				}
				params = append(params, Parameter{
					Name:        dp.Name,
					Description: dp.Description,
					Required:    dp.Required,
					Schema:      dp.Schema,
				})
			}
			endpoints = append(endpoints, Endpoint{
				EndpointSummary: EndpointSummary{
					Path:        path,
					Method:      strings.ToUpper(op.Key),
					Description: op.Value.Description,
				},
				Parameters: params,
			})
		}
	}
	return endpoints
}

// Placeholders returns the {name} path parameters of an endpoint's path,
// in order of appearance.
func Placeholders(path string) []string {
	var names []string
	rest := path
	for {
		open := strings.Index(rest, "{")
		if open < 0 {
			return names
		}
		close := strings.Index(rest[open:], "}")
		if close < 0 {
			return names
		}
		names = append(names, rest[open+1:open+close])
		rest = rest[open+close+1:]
	}
}
