package tools

import (
	"github.com/opencamara/camara-mcp/internal/common"
	"github.com/opencamara/camara-mcp/internal/openapi"
)

// Property describes one input parameter in a descriptor's schema.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Format      string `json:"format,omitempty"`
}

// InputSchema is the JSON-schema-like input shape of a tool.
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Descriptor is the agent-facing definition of one endpoint tool. The
// path and method are call metadata, not invocable parameters.
type Descriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema InputSchema     `json:"inputSchema"`
	Path        string          `json:"path"`
	Method      string          `json:"method"`
	Endpoint    openapi.Endpoint `json:"-"`
}

// Key is the unique registry key for an endpoint. Tool names can collide;
// method plus path cannot.
func Key(method, path string) string {
	return method + ":" + path
}

// Registry indexes tool descriptors by derived name and by (method, path).
// It is built once at startup and read-only afterwards, so concurrent
// invocations share it without locking.
type Registry struct {
	byName  map[string]*Descriptor
	byKey   map[string]*Descriptor
	ordered []*Descriptor
}

// Build converts endpoints into descriptors and indexes them. When two
// endpoints derive the same tool name the later one replaces the earlier
// in the name index; the replacement is logged since the shadowed
// endpoint stays reachable only through its (method, path) key.
func Build(endpoints []openapi.Endpoint, logger *common.Logger) *Registry {
	r := &Registry{
		byName: make(map[string]*Descriptor, len(endpoints)),
		byKey:  make(map[string]*Descriptor, len(endpoints)),
	}

	for _, e := range endpoints {
		d := newDescriptor(e)
		if prev, ok := r.byName[d.Name]; ok {
			logger.Warn().
				Str("name", d.Name).
				Str("replaced", Key(prev.Method, prev.Path)).
				Str("by", Key(d.Method, d.Path)).
				Msg("tool name collision, later endpoint wins")
		}
		r.byName[d.Name] = d
		r.byKey[Key(d.Method, d.Path)] = d
		r.ordered = append(r.ordered, d)
	}

	return r
}

// newDescriptor builds the descriptor for one endpoint.
func newDescriptor(e openapi.Endpoint) *Descriptor {
	props := make(map[string]Property, len(e.Parameters))
	required := []string{}
	for _, p := range e.Parameters {
		props[p.Name] = Property{
			Type:        p.Schema.Type,
			Description: p.Description,
			Format:      p.Schema.Format,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}

	return &Descriptor{
		Name:        ToolName(e),
		Description: e.Description,
		InputSchema: InputSchema{
			Type:       "object",
			Properties: props,
			Required:   required,
		},
		Path:     e.Path,
		Method:   e.Method,
		Endpoint: e,
	}
}

// ByName looks up a descriptor by derived tool name.
func (r *Registry) ByName(name string) (*Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// ByKey looks up a descriptor by HTTP method and path template.
func (r *Registry) ByKey(method, path string) (*Descriptor, bool) {
	d, ok := r.byKey[Key(method, path)]
	return d, ok
}

// Descriptors returns all descriptors in document order, including
// name-collided ones.
func (r *Registry) Descriptors() []*Descriptor {
	return r.ordered
}

// Len returns the number of registered endpoints.
func (r *Registry) Len() int {
	return len(r.ordered)
}
