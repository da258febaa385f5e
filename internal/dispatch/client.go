package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/opencamara/camara-mcp/internal/common"
)

// maxResponseSize caps response bodies to prevent OOM from unexpectedly
// large responses (10MB).
const maxResponseSize = 10 << 20

// placeholderRe matches {name} path parameters in a path template.
var placeholderRe = regexp.MustCompile(`\{([^}]+)\}`)

// Client dispatches tool invocations against the open-data API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	now        func() time.Time
}

// NewClient creates a dispatch client targeting the given API base URL.
func NewClient(baseURL string, logger *common.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
		now:    time.Now,
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call relays one tool invocation as a single HTTP request and normalizes
// the outcome into an Envelope. Every {name} placeholder with a truthy
// argument is substituted into the path and removed from the query set;
// a placeholder with no truthy argument is left literal in the URL and
// the call is attempted anyway, surfacing the remote's own error instead
// of a local one. Remaining arguments become query parameters. One
// attempt, no retry.
func (c *Client) Call(ctx context.Context, method, pathTemplate string, params map[string]interface{}) Envelope {
	logger := c.logger.WithCorrelationId(uuid.NewString())

	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
	default:
		return Errorf("unsupported method %q", method)
	}

	path := pathTemplate
	remaining := make(map[string]interface{}, len(params))
	for k, v := range params {
		remaining[k] = v
	}

	for _, m := range placeholderRe.FindAllStringSubmatch(pathTemplate, -1) {
		name := m[1]
		if v, ok := remaining[name]; ok && truthy(v) {
			path = strings.ReplaceAll(path, "{"+name+"}", fmt.Sprint(v))
			delete(remaining, name)
		}
	}

	query := url.Values{}
	for k, v := range remaining {
		switch t := v.(type) {
		case nil:
		case []interface{}:
			// Array arguments become repeated pairs (id=1&id=2).
			for _, item := range t {
				query.Add(k, fmt.Sprint(item))
			}
		default:
			query.Set(k, fmt.Sprint(v))
		}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	logger.Debug().Str("method", method).Str("url", target).Msg("dispatch request")

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return Errorf("failed to build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		logger.Error().Str("method", method).Str("url", target).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("dispatch request failed")
		return Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return Errorf("failed to read response: %v", err)
	}

	logger.Debug().Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("dispatch response")

	if resp.StatusCode == http.StatusBadRequest {
		return Error(map[string]interface{}{
			"status_code": "400 Bad Request",
			"message":     fmt.Sprintf("client error for %s; check the endpoint schema with describe_endpoint", target),
		})
	}
	if resp.StatusCode >= 400 {
		logger.Error().Str("method", method).Str("url", target).Int("status", resp.StatusCode).Msg("dispatch remote error")
		return Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var results interface{}
	if err := json.Unmarshal(body, &results); err != nil {
		return Errorf("failed to parse response: %v", err)
	}
	if results == nil {
		// A JSON null body would break the exactly-one envelope invariant.
		return Errorf("empty response from %s", target)
	}
	return Success(results)
}

// truthy reports whether a tool argument counts as provided for path
// substitution. Nil, empty strings, zero numbers, and false do not; this
// mirrors the substitution behavior existing tool names were built on.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return true
	}
}
