package dispatch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Fixed endpoints behind the convenience operations.
const (
	deputiesPath = "/deputados"
	expensesPath = "/deputados/{id}/despesas"
	billsPath    = "/proposicoes"
)

const dateLayout = "2006-01-02"

// deputyRef is the id/name pair extracted from a deputy list response.
type deputyRef struct {
	ID   int64
	Name string
}

// FindDeputyByName lists deputies filtered by (partial) name.
func (c *Client) FindDeputyByName(ctx context.Context, name string) Envelope {
	if name == "" {
		return Errorf("must provide name")
	}
	return c.Call(ctx, http.MethodGet, deputiesPath, map[string]interface{}{"nome": name})
}

// ExpensesQuery holds the inputs of the get_deputy_expenses tool.
// DeputyID wins over Name when both are given.
type ExpensesQuery struct {
	Name     string
	DeputyID int64
	Year     int
	Month    int
}

// DeputyExpenses fetches a deputy's expenses, resolving a name into a
// deputy id first when no id is given. The name must match exactly one
// deputy; zero or multiple matches produce an error envelope, the latter
// enumerating every candidate so the caller can retry with deputy_id.
func (c *Client) DeputyExpenses(ctx context.Context, q ExpensesQuery) Envelope {
	id := q.DeputyID
	if id == 0 {
		if q.Name == "" {
			return Errorf("must provide name or deputy_id")
		}
		env := c.FindDeputyByName(ctx, q.Name)
		if env.IsError() {
			return env
		}
		matches := decodeDeputies(env.Results)
		switch {
		case len(matches) == 0:
			return Errorf("no deputy found matching %q", q.Name)
		case len(matches) > 1:
			list := make([]string, 0, len(matches))
			for _, m := range matches {
				list = append(list, fmt.Sprintf("%s (id %d)", m.Name, m.ID))
			}
			return Errorf("multiple deputies match %q: %s; call again with deputy_id", q.Name, strings.Join(list, ", "))
		}
		id = matches[0].ID
	}

	params := map[string]interface{}{"id": id}
	if q.Year != 0 {
		params["ano"] = q.Year
	}
	if q.Month != 0 {
		params["mes"] = q.Month
	}
	return c.Call(ctx, http.MethodGet, expensesPath, params)
}

// BillsQuery holds the inputs of the get_bills_by_author tool.
type BillsQuery struct {
	AuthorName string
	DeputyID   int64
	StartDate  string // YYYY-MM-DD
	EndDate    string // YYYY-MM-DD
}

// BillsByAuthor lists bills by author name or deputy id. At least one of
// the two must be given. An absent date range defaults to the 365-day
// window ending today.
func (c *Client) BillsByAuthor(ctx context.Context, q BillsQuery) Envelope {
	if q.AuthorName == "" && q.DeputyID == 0 {
		return Errorf("must provide author_name or deputy_id")
	}

	end := q.EndDate
	if end == "" {
		end = c.now().Format(dateLayout)
	}
	start := q.StartDate
	if start == "" {
		start = c.now().AddDate(0, 0, -365).Format(dateLayout)
	}

	params := map[string]interface{}{
		"dataInicio": start,
		"dataFim":    end,
	}
	if q.DeputyID != 0 {
		params["idDeputadoAutor"] = q.DeputyID
	}
	if q.AuthorName != "" {
		params["autor"] = q.AuthorName
	}
	return c.Call(ctx, http.MethodGet, billsPath, params)
}

// decodeDeputies extracts id/name pairs from the "dados" array of a
// deputy list response. Entries without a numeric id are skipped.
func decodeDeputies(results interface{}) []deputyRef {
	obj, ok := results.(map[string]interface{})
	if !ok {
		return nil
	}
	items, ok := obj["dados"].([]interface{})
	if !ok {
		return nil
	}

	var refs []deputyRef
	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		id, ok := entry["id"].(float64)
		if !ok {
			continue
		}
		name, _ := entry["nome"].(string)
		refs = append(refs, deputyRef{ID: int64(id), Name: name})
	}
	return refs
}
