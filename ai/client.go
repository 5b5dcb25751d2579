// ABOUTME: Claude API client for keyword extraction and summary generation
// ABOUTME: Plain HTTP against the Messages endpoint, JSON in and out
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// ClaudeAPIEndpoint is the Anthropic API endpoint.
	ClaudeAPIEndpoint = "https://api.anthropic.com/v1/messages"
	// ClaudeModel is the default model.
	ClaudeModel = "claude-sonnet-4-20250514"
	// ClaudeAPIVersion is the API version.
	ClaudeAPIVersion = "2023-06-01"
)

// Client talks to the Claude API.
type Client struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a Claude API client. An empty model selects the default.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = ClaudeModel
	}
	return &Client{
		apiKey:   apiKey,
		model:    model,
		endpoint: ClaudeAPIEndpoint,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type claudeRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

const extractSystemPrompt = `You structure job posting requirements into keywords.
Return JSON only, no prose.
Rules:
- Technologies (frameworks, languages, databases, infrastructure) get kind=TECH
- Roles and duties (backend, server development, DevOps, ...) get kind=ROLE
- Everything else gets kind=ETC
- weight is between 0.2 and 1.0, higher for more important terms
- Merge synonyms and spelling variants into one canonical term (e.g. Spring Boot, JPA, MySQL, AWS, Redis)
Output schema:
{"keywords":[{"term":"Spring Boot","weight":0.9,"kind":"TECH"}]}`

// ExtractKeywords asks the model to turn requirement sections into
// weighted keywords. The raw weights are clamped and duplicates merged
// before returning.
func (c *Client) ExtractKeywords(ctx context.Context, sections Sections) ([]Keyword, error) {
	user := fmt.Sprintf("[Required]\n- %s\n\n[Preferred]\n- %s\n",
		strings.Join(sections.Required, "\n- "),
		strings.Join(sections.Preferred, "\n- "))

	responseText, err := c.sendRequest(ctx, extractSystemPrompt, user, 600)
	if err != nil {
		return nil, fmt.Errorf("keyword extraction request failed: %w", err)
	}

	var parsed struct {
		Keywords []Keyword `json:"keywords"`
	}
	if err := json.Unmarshal([]byte(stripMarkdownCodeFences(responseText)), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse keyword response: %w", err)
	}

	return NormalizeKeywords(parsed.Keywords), nil
}

const summarySystemPrompt = `You are a portfolio copywriter.
- Write 3 to 6 sentences, concise and concrete
- No filler adjectives
- Return plain paragraph text only`

// GenerateSummary drafts a project overview from the given material.
func (c *Client) GenerateSummary(ctx context.Context, req SummaryRequest) (string, error) {
	user := fmt.Sprintf(`[Project title] %s
[My role] %s
[Key points] %s
[Technologies] %s
[Tone] %s
Write a 3-6 sentence project overview from the information above.`,
		orDash(req.Title),
		orDash(req.Role),
		orDash(strings.Join(req.Bullets, ", ")),
		orDash(strings.Join(req.Techs, ", ")),
		orDash(req.Tone))

	responseText, err := c.sendRequest(ctx, summarySystemPrompt, user, 500)
	if err != nil {
		return "", fmt.Errorf("summary generation request failed: %w", err)
	}

	return strings.TrimSpace(responseText), nil
}

func (c *Client) sendRequest(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	reqBody, err := json.Marshal(claudeRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    system,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", ClaudeAPIVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var claudeResp claudeResponse
	if err := json.Unmarshal(respBody, &claudeResp); err != nil {
		return "", fmt.Errorf("failed to parse API response: %w", err)
	}
	if len(claudeResp.Content) == 0 {
		return "", fmt.Errorf("no content in API response")
	}

	return claudeResp.Content[0].Text, nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// stripMarkdownCodeFences removes a ```json fence around a JSON response.
func stripMarkdownCodeFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	if idx := strings.IndexByte(cleaned, '\n'); idx >= 0 {
		cleaned = cleaned[idx+1:]
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}
