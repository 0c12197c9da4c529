package arena

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/models"
)

const clientTimeout = 10 * time.Second

// APIClient talks to the arena endpoints of the server.
type APIClient struct {
	// config contains details on how to connect to the server
	config *config.ArenaConfig

	httpClient *http.Client
}

// NewAPIClient creates a new APIClient.
func NewAPIClient(cfg *config.ArenaConfig) *APIClient {
	return &APIClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

// logRequestAsCurl logs the request as a curl command at debug level.
func (c *APIClient) logRequestAsCurl(ctx context.Context, request *http.Request, body []byte) {
	if !slog.Default().Enabled(ctx, slog.LevelDebug) {
		return
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "curl -X %s '%s'", request.Method, request.URL)

	for key, values := range request.Header {
		if strings.EqualFold(key, "x-token") {
			values = []string{"***"}
		}
		for _, value := range values {
			fmt.Fprintf(&builder, " -H '%s: %s'", strings.ToLower(key), value)
		}
	}

	if len(body) > 0 {
		fmt.Fprintf(&builder, " -d '%s'", strings.ReplaceAll(string(body), "'", "'\\''"))
	}

	slog.Debug("Sending request", "curl", builder.String())
}

// request sends a request and decodes a JSON response into out, if out is not nil.
func (c *APIClient) request(ctx context.Context, method string, path string, payload any, out any) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
	}

	request, err := http.NewRequestWithContext(ctx, method, c.config.ServerURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("x-token", c.config.Token)

	c.logRequestAsCurl(ctx, request, body)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	slog.Debug("Received response", "status", response.Status, "body", string(responseBody))

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(responseBody, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server returned %s: %s", response.Status, apiErr.Error)
		}
		return fmt.Errorf("server returned unexpected status %s", response.Status)
	}

	if out == nil {
		return nil
	}

	if err = json.Unmarshal(responseBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// SubmitResults posts the results of a run and returns how many were stored.
func (c *APIClient) SubmitResults(ctx context.Context, payload models.ResultsPayload) (int64, error) {
	var response struct {
		Inserted int64 `json:"inserted"`
	}

	if err := c.request(ctx, http.MethodPost, "/api/arena/results", payload, &response); err != nil {
		return 0, fmt.Errorf("failed to submit results: %w", err)
	}

	return response.Inserted, nil
}

// GetStandings fetches the standings, optionally only for the given strategies.
func (c *APIClient) GetStandings(ctx context.Context, strategies []string) ([]models.Standing, error) {
	path := "/api/arena/standings"
	if len(strategies) > 0 {
		path += "?strategies=" + url.QueryEscape(strings.Join(strategies, ","))
	}

	var standings []models.Standing
	if err := c.request(ctx, http.MethodGet, path, nil, &standings); err != nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}

	return standings, nil
}
