// ABOUTME: Typed HTTP client for the portfolio API
// ABOUTME: A 401 from any call triggers the unauthorized hook exactly once per call
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Jeonsowon/Portfolio-Project/ai"
	"github.com/Jeonsowon/Portfolio-Project/models"
)

// APIError carries the server's status code and message body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusUnauthorized
}

// Client talks to the portfolio API server.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client

	// OnUnauthorized runs when the server rejects the token, so the
	// caller can drop its stored session.
	OnUnauthorized func()
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// SetToken installs the bearer token used for authenticated calls.
func (c *Client) SetToken(token string) { c.token = token }

// AuthResult is the login/register response.
type AuthResult struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) (AuthResult, error) {
	var out AuthResult
	err := c.call(ctx, http.MethodPost, "/api/v1/auth/register",
		map[string]string{"name": name, "email": email, "password": password}, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	var out AuthResult
	err := c.call(ctx, http.MethodPost, "/api/v1/auth/login",
		map[string]string{"email": email, "password": password}, &out)
	return out, err
}

// Summary is one row of a portfolio listing.
type Summary struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Role      string `json:"role"`
	UpdatedAt string `json:"updatedAt"`
}

// Listing groups portfolio summaries by kind, BASIC before REMODEL.
type Listing struct {
	Basic   []Summary `json:"basic"`
	Remodel []Summary `json:"remodel"`
}

// All flattens the grouping into one display-ordered slice.
func (l Listing) All() []Summary {
	out := make([]Summary, 0, len(l.Basic)+len(l.Remodel))
	out = append(out, l.Basic...)
	return append(out, l.Remodel...)
}

func (l Listing) Len() int { return len(l.Basic) + len(l.Remodel) }

// ListMy fetches the caller's portfolios. The endpoint has answered two
// shapes over time: a flat array, or groups keyed "basic"/"remodel".
// Both normalize to the two-bucket grouping here.
func (c *Client) ListMy(ctx context.Context) (Listing, error) {
	var raw json.RawMessage
	if err := c.call(ctx, http.MethodGet, "/api/v1/portfolios/my", nil, &raw); err != nil {
		return Listing{}, err
	}
	return normalizeList(raw)
}

func normalizeList(raw json.RawMessage) (Listing, error) {
	var flat []Summary
	if err := json.Unmarshal(raw, &flat); err == nil {
		var out Listing
		for _, s := range flat {
			if s.Kind == models.KindRemodel {
				out.Remodel = append(out.Remodel, s)
			} else {
				out.Basic = append(out.Basic, s)
			}
		}
		return out, nil
	}

	var grouped Listing
	if err := json.Unmarshal(raw, &grouped); err != nil {
		return Listing{}, fmt.Errorf("unrecognized list response: %w", err)
	}
	return grouped, nil
}

// Detail is a full portfolio fetch.
type Detail struct {
	ID   int64                `json:"id"`
	Kind string               `json:"kind"`
	Data models.PortfolioData `json:"data"`
}

func (c *Client) Get(ctx context.Context, id int64) (Detail, error) {
	var out Detail
	err := c.call(ctx, http.MethodGet, fmt.Sprintf("/api/v1/portfolios/%d", id), nil, &out)
	return out, err
}

func (c *Client) CreateDefault(ctx context.Context, kind string) (Detail, error) {
	var out Detail
	err := c.call(ctx, http.MethodPost, "/api/v1/portfolios/create-default",
		map[string]string{"kind": kind}, &out)
	return out, err
}

func (c *Client) Save(ctx context.Context, id int64, data models.PortfolioData) error {
	return c.call(ctx, http.MethodPut, fmt.Sprintf("/api/v1/portfolios/%d", id),
		map[string]any{"data": data}, nil)
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/portfolios/%d", id), nil, nil)
}

func (c *Client) GenerateSummary(ctx context.Context, req ai.SummaryRequest) (string, error) {
	var out struct {
		Summary string `json:"summary"`
	}
	err := c.call(ctx, http.MethodPost, "/api/v1/generate-summary", req, &out)
	return out.Summary, err
}

// BuildRemodel asks the server to build and persist a remodeled copy of
// the base portfolio, tailored to a job posting.
func (c *Client) BuildRemodel(ctx context.Context, baseID int64, sourceType, title, value string) (Detail, error) {
	var out Detail
	err := c.call(ctx, http.MethodPost, "/api/v1/remodel/build", map[string]any{
		"basePortfolioId": baseID,
		"sourceType":      sourceType,
		"title":           title,
		"value":           value,
	}, &out)
	return out, err
}

func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.token = ""
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func errorMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return string(body)
}
