// Package seed provides starter word lists for an empty library.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"spellsheet/internal/ports"
)

//go:embed starter.json
var starter []byte

// Embedded serves the starter list bundled into the binary
type Embedded struct{}

var _ ports.SeedSource = Embedded{}

// Fetch returns the bundled list
func (Embedded) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]byte, len(starter))
	copy(out, starter)
	return out, nil
}

// maxSeedBytes caps the size of a remote starter list
const maxSeedBytes = 1 << 20

// HTTP fetches a starter list from a URL
type HTTP struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

var _ ports.SeedSource = (*HTTP)(nil)

// NewHTTP creates an HTTP seed source with the given request timeout
func NewHTTP(url string, timeout time.Duration, logger *slog.Logger) *HTTP {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTP{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "seed"),
	}
}

// Fetch GETs the configured URL and returns the body
func (h *HTTP) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("seed: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	h.log.DebugContext(ctx, "seed request", slog.String("url", h.url))

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("seed: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSeedBytes))
	if err != nil {
		return nil, fmt.Errorf("seed: read body: %w", err)
	}
	return body, nil
}

// Fallback tries each source in order and returns the first success
type Fallback []ports.SeedSource

// Fetch returns the first successful payload, or the last error
func (f Fallback) Fetch(ctx context.Context) ([]byte, error) {
	err := fmt.Errorf("seed: no sources configured")
	for _, src := range f {
		var data []byte
		if data, err = src.Fetch(ctx); err == nil {
			return data, nil
		}
	}
	return nil, err
}
