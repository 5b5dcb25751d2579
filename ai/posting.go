// ABOUTME: Job posting retrieval and HTML-to-text cleanup
// ABOUTME: Fetch failures surface as errors; cleanup is deliberately simple
package ai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// FetchPosting retrieves a job posting page and returns its cleaned text.
func FetchPosting(ctx context.Context, urlStr string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; RemodelBot/1.0)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,*/*")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP request failed with status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	content := CleanHTML(string(body))
	if content == "" {
		return "", fmt.Errorf("fetched content is empty after processing")
	}
	return content, nil
}

// CleanHTML strips markup from a posting page and collapses whitespace.
func CleanHTML(html string) string {
	text := html
	for _, tag := range []string{"script", "style", "noscript", "svg", "iframe"} {
		text = removeTagAndContent(text, tag)
	}

	// Remove remaining tags, turning them into line breaks so section
	// headers stay on their own lines.
	inTag := false
	var result strings.Builder
	for _, char := range text {
		if char == '<' {
			inTag = true
			result.WriteByte('\n')
			continue
		}
		if char == '>' {
			inTag = false
			continue
		}
		if !inTag {
			result.WriteRune(char)
		}
	}
	text = result.String()

	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, "\r", "\n")

	// Collapse runs of blanks inside lines but keep line structure.
	lines := strings.Split(text, "\n")
	var kept []string
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// removeTagAndContent removes a specific HTML tag and its content.
func removeTagAndContent(html, tag string) string {
	result := html
	openTag := "<" + tag
	closeTag := "</" + tag + ">"

	for {
		startIdx := strings.Index(result, openTag)
		if startIdx == -1 {
			break
		}
		endIdx := strings.Index(result[startIdx:], closeTag)
		if endIdx == -1 {
			break
		}
		endIdx += startIdx + len(closeTag)
		result = result[:startIdx] + result[endIdx:]
	}

	return result
}
