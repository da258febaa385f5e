package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/opencamara/camara-mcp/internal/common"
)

// maxDocumentSize caps the OpenAPI document read (5MB).
const maxDocumentSize = 5 << 20

// Fetch retrieves and parses the OpenAPI document at the given URL.
func Fetch(ctx context.Context, url string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spec request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read spec response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spec server returned %d", resp.StatusCode)
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse spec: %w", err)
	}
	return &doc, nil
}

// Load fetches the OpenAPI document, retrying up to attempts times with a
// short delay. Failure is non-fatal: it is logged and nil is returned, and
// the server starts with an empty tool registry.
func Load(ctx context.Context, url string, attempts int, logger *common.Logger) *Document {
	if attempts < 1 {
		attempts = 1
	}

	var doc *Document
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		doc, err = Fetch(ctx, url)
		if err == nil {
			logger.Info().Str("url", url).Msg("OpenAPI document loaded")
			return doc
		}
		logger.Warn().
			Int("attempt", attempt).
			Int("max_attempts", attempts).
			Str("url", url).
			Str("error", err.Error()).
			Msg("failed to load OpenAPI document")
		if attempt < attempts {
			time.Sleep(2 * time.Second)
		}
	}
	return nil
}
