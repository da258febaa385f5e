package tools

import (
	"testing"

	"github.com/opencamara/camara-mcp/internal/openapi"
)

func endpoint(method, path string) openapi.Endpoint {
	return openapi.Endpoint{
		EndpointSummary: openapi.EndpointSummary{Path: path, Method: method},
	}
}

func TestToolName(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		// no placeholder: prefix + joined segments
		{"GET", "/deputados", "list_deputados"},
		{"GET", "/proposicoes", "list_proposicoes"},
		{"GET", "/referencias/proposicoes/codTema", "list_referencias_proposicoes_codTema"},
		{"POST", "/deputados", "create_deputados"},

		// trailing placeholder: get one resource, singularized parent
		{"GET", "/deputados/{id}", "get_deputado_by_id"},
		{"GET", "/proposicoes/{id}", "get_proposicao_by_id"},
		{"GET", "/votacoes/{id}", "get_votacao_by_id"},
		{"GET", "/orgaos/{id}", "get_orgao_by_id"},
		{"PUT", "/deputados/{id}", "update_deputado_by_id"},
		{"PATCH", "/deputados/{id}", "update_deputado_by_id"},
		{"DELETE", "/deputados/{id}", "delete_deputado_by_id"},

		// mid-path placeholder: sub-resource by singularized parent
		{"GET", "/deputados/{id}/despesas", "list_despesas_by_deputado"},
		{"GET", "/deputados/{id}/discursos", "list_discursos_by_deputado"},
		{"GET", "/proposicoes/{id}/autores", "list_autores_by_proposicao"},
		{"GET", "/orgaos/{id}/eventos", "list_eventos_by_orgao"},

		// unknown method: empty prefix
		{"OPTIONS", "/deputados", "_deputados"},
	}

	for _, tt := range tests {
		if got := ToolName(endpoint(tt.method, tt.path)); got != tt.want {
			t.Errorf("ToolName(%s %s) = %q, want %q", tt.method, tt.path, got, tt.want)
		}
	}
}

func TestToolName_Deterministic(t *testing.T) {
	e := endpoint("GET", "/deputados/{id}/despesas")
	first := ToolName(e)
	for i := 0; i < 5; i++ {
		if got := ToolName(e); got != first {
			t.Fatalf("ToolName not deterministic: %q vs %q", got, first)
		}
	}
}
