package site

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"destiny-global-backend/internal/domain"
	"destiny-global-backend/internal/usecase"
)

// ErrUnreachable wraps transport failures and unreadable responses
var ErrUnreachable = errors.New("enquiry API unreachable")

// Submitter posts an enquiry and returns the API's answer
type Submitter interface {
	SubmitEnquiry(ctx context.Context, e domain.Enquiry) (*domain.EnquiryResponse, error)
}

// Client talks to the enquiry API over HTTP
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the API at baseURL. A nil httpClient uses
// http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// SubmitEnquiry posts e as JSON to /api/enquiry. API-level failures (4xx/5xx
// with a JSON body) come back as a response with Success false; only
// transport and decoding problems return an error.
func (c *Client) SubmitEnquiry(ctx context.Context, e domain.Enquiry) (*domain.EnquiryResponse, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to encode enquiry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/enquiry", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var out domain.EnquiryResponse
	status, err := c.do(req, &out)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		out.Success = false
	}
	return &out, nil
}

// Health calls GET /api/health
func (c *Client) Health(ctx context.Context) (*usecase.HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var out usecase.HealthStatus
	status, err := c.do(req, &out)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: health check returned %d", ErrUnreachable, status)
	}
	return &out, nil
}

func (c *Client) do(req *http.Request, out any) (int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return 0, fmt.Errorf("%w: unexpected %d response: %v", ErrUnreachable, resp.StatusCode, err)
	}
	return resp.StatusCode, nil
}
