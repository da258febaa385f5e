package tools

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/opencamara/camara-mcp/internal/common"
	"github.com/opencamara/camara-mcp/internal/openapi"
)

func expensesEndpoint() openapi.Endpoint {
	return openapi.Endpoint{
		EndpointSummary: openapi.EndpointSummary{
			Path:        "/deputados/{id}/despesas",
			Method:      "GET",
			Description: "Despesas de um deputado",
		},
		Parameters: []openapi.Parameter{
			{Name: "id", Description: "Identificador do deputado", Required: true, Schema: openapi.ParameterSchema{Type: "integer", Format: "int64"}},
			{Name: "ano", Description: "Ano das despesas", Required: false, Schema: openapi.ParameterSchema{Type: "integer"}},
			{Name: "mes", Required: false, Schema: openapi.ParameterSchema{Type: "integer"}},
		},
	}
}

func TestBuild_Indexes(t *testing.T) {
	e := expensesEndpoint()
	reg := Build([]openapi.Endpoint{e}, common.NewSilentLogger())

	if reg.Len() != 1 {
		t.Fatalf("expected 1 descriptor, got %d", reg.Len())
	}

	d, ok := reg.ByName("list_despesas_by_deputado")
	if !ok {
		t.Fatal("descriptor not found by name")
	}
	if d.Path != e.Path || d.Method != "GET" {
		t.Errorf("descriptor metadata = %s %s", d.Method, d.Path)
	}

	byKey, ok := reg.ByKey("GET", "/deputados/{id}/despesas")
	if !ok {
		t.Fatal("descriptor not found by key")
	}
	if byKey != d {
		t.Error("name and key lookups should return the same descriptor")
	}
}

// Building a registry then looking the endpoint up by its (method, path)
// key must recover the endpoint's parameters unchanged.
func TestBuild_RoundTrip(t *testing.T) {
	e := expensesEndpoint()
	reg := Build([]openapi.Endpoint{e}, common.NewSilentLogger())

	d, ok := reg.ByKey(e.Method, e.Path)
	if !ok {
		t.Fatal("endpoint not found by key")
	}
	if !reflect.DeepEqual(d.Endpoint.Parameters, e.Parameters) {
		t.Errorf("parameters changed in round trip:\ngot  %+v\nwant %+v", d.Endpoint.Parameters, e.Parameters)
	}
}

func TestBuild_InputSchema(t *testing.T) {
	reg := Build([]openapi.Endpoint{expensesEndpoint()}, common.NewSilentLogger())
	d, _ := reg.ByName("list_despesas_by_deputado")

	schema := d.InputSchema
	if schema.Type != "object" {
		t.Errorf("schema type = %q, want object", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["id"].Format != "int64" {
		t.Errorf("id format = %q, want int64", schema.Properties["id"].Format)
	}
	if !reflect.DeepEqual(schema.Required, []string{"id"}) {
		t.Errorf("required = %v, want [id]", schema.Required)
	}

	// format is omitted from the serialized schema when absent
	out, err := json.Marshal(schema.Properties["ano"])
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "format") {
		t.Errorf("absent format should be omitted, got %s", out)
	}
}

func TestBuild_NameCollisionLaterWins(t *testing.T) {
	first := openapi.Endpoint{
		EndpointSummary: openapi.EndpointSummary{Path: "/deputados", Method: "GET", Description: "first"},
	}
	// Same derived name (trailing slash splits to the same segments) but a
	// distinct (method, path) key.
	second := openapi.Endpoint{
		EndpointSummary: openapi.EndpointSummary{Path: "/deputados/", Method: "GET", Description: "second"},
	}

	reg := Build([]openapi.Endpoint{first, second}, common.NewSilentLogger())

	d, ok := reg.ByName("list_deputados")
	if !ok {
		t.Fatal("collided name not found")
	}
	if d.Description != "second" {
		t.Errorf("later endpoint should win the name index, got %q", d.Description)
	}

	// Both stay reachable by their unique key.
	if _, ok := reg.ByKey("GET", "/deputados"); !ok {
		t.Error("first endpoint lost from key index")
	}
	if _, ok := reg.ByKey("GET", "/deputados/"); !ok {
		t.Error("second endpoint lost from key index")
	}
	if reg.Len() != 2 {
		t.Errorf("Len = %d, want 2", reg.Len())
	}
}
