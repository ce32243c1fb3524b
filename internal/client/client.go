// Package client provides an HTTP client for the wealth health check API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "wealthcheck/internal/errors"
	"wealthcheck/internal/models"
)

// Client communicates with a running wealthcheck server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client. A nil httpClient uses http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Analyze submits the input and returns the server's report.
func (c *Client) Analyze(ctx context.Context, in models.PortfolioInput) (*models.Report, error) {
	resp, err := c.post(ctx, "/api/v1/analysis", in)
	if err != nil {
		return nil, fmt.Errorf("analyzing portfolio: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analyzing portfolio: %w", decodeError(resp))
	}

	var result struct {
		Report *models.Report `json:"report"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding analysis response: %w", err)
	}
	if result.Report == nil {
		return nil, fmt.Errorf("decoding analysis response: missing report")
	}
	return result.Report, nil
}

// DownloadPDF submits the input and returns the rendered PDF document.
func (c *Client) DownloadPDF(ctx context.Context, in models.PortfolioInput) ([]byte, error) {
	resp, err := c.post(ctx, "/api/v1/analysis/pdf", in)
	if err != nil {
		return nil, fmt.Errorf("downloading report: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading report: %w", decodeError(resp))
	}

	doc, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}
	return doc, nil
}

func (c *Client) post(ctx context.Context, path string, in models.PortfolioInput) (*http.Response, error) {
	jsonBody, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("marshaling input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

// decodeError turns an error response into an *AppError carrying the server's
// code and message. Bodies that are not in the API error format keep only the status.
func decodeError(resp *http.Response) error {
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error.Code == "" {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return &apperrors.AppError{
		Code:       body.Error.Code,
		Message:    body.Error.Message,
		StatusCode: resp.StatusCode,
	}
}
