// ABOUTME: Tests for the Claude API client
// ABOUTME: Runs against a local httptest server standing in for the API
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeClaude(t *testing.T, responseText string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.Header.Get("X-Api-Key"))
		assert.Equal(t, ClaudeAPIVersion, r.Header.Get("Anthropic-Version"))

		var req claudeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Messages)

		fmt.Fprintf(w, `{"content":[{"type":"text","text":%q}]}`, responseText)
	}))
	t.Cleanup(srv.Close)

	c := NewClient("test-key", "")
	c.endpoint = srv.URL
	return c
}

func TestExtractKeywordsParsesAndNormalizes(t *testing.T) {
	c := fakeClaude(t, `{"keywords":[{"term":"Spring Boot","weight":1.8,"kind":"TECH"},{"term":"spring boot","weight":0.3,"kind":"TECH"}]}`)

	got, err := c.ExtractKeywords(context.Background(), Sections{Required: []string{"Spring Boot required"}})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "Spring Boot", got[0].Term)
	assert.Equal(t, 1.0, got[0].Weight)
}

func TestExtractKeywordsStripsCodeFences(t *testing.T) {
	c := fakeClaude(t, "```json\n{\"keywords\":[{\"term\":\"Go\",\"weight\":0.8,\"kind\":\"TECH\"}]}\n```")

	got, err := c.ExtractKeywords(context.Background(), Sections{Required: []string{"Go"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Go", got[0].Term)
}

func TestGenerateSummaryReturnsTrimmedText(t *testing.T) {
	c := fakeClaude(t, "  A concise project overview.  ")

	got, err := c.GenerateSummary(context.Background(), SummaryRequest{Title: "Chat", Role: "Backend"})
	require.NoError(t, err)
	assert.Equal(t, "A concise project overview.", got)
}

func TestClientReportsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"type":"overloaded_error"}}`, http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := NewClient("test-key", "")
	c.endpoint = srv.URL

	_, err := c.GenerateSummary(context.Background(), SummaryRequest{Title: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
