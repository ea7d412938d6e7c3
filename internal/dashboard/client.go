package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/domain"
)

// Client fetches dashboard resources from a command center server over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the server at baseURL.
// A zero timeout leaves requests bounded only by their context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchStats calls GET /api/stats. Every failure reports MsgStatsFailed.
func (c *Client) FetchStats(ctx context.Context) (*domain.StatSummary, error) {
	resp, err := c.get(ctx, "/api/stats")
	if err != nil {
		return nil, &FetchError{Message: MsgStatsFailed, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{Message: MsgStatsFailed, Status: resp.StatusCode}
	}

	var stats domain.StatSummary
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, &FetchError{Message: MsgStatsFailed, Status: resp.StatusCode, Err: fmt.Errorf("failed to decode stats: %w", err)}
	}
	return &stats, nil
}

// FetchRun calls GET /api/runs/{id}. A non-2xx response reports the
// body's "error" string when it has one and MsgRunFailed otherwise.
func (c *Client) FetchRun(ctx context.Context, runID string) (*domain.OrchestrationRun, error) {
	resp, err := c.get(ctx, "/api/runs/"+url.PathEscape(runID))
	if err != nil {
		return nil, &FetchError{Message: MsgRunFailed, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &FetchError{Message: extractError(body, MsgRunFailed), Status: resp.StatusCode}
	}

	var run domain.OrchestrationRun
	if err := json.NewDecoder(resp.Body).Decode(&run); err != nil {
		return nil, &FetchError{Message: MsgRunFailed, Status: resp.StatusCode, Err: fmt.Errorf("failed to decode run: %w", err)}
	}
	return &run, nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Str("request_id", requestID).Msg("dashboard fetch failed")
		return nil, err
	}
	return resp, nil
}

// extractError pulls a non-empty "error" string out of a JSON body.
func extractError(body []byte, fallback string) string {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}
	raw, ok := payload["error"]
	if !ok {
		return fallback
	}
	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil || msg == "" {
		return fallback
	}
	return msg
}
