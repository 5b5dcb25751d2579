// ABOUTME: Remodel pipeline: posting -> sections -> keywords -> reordered document
// ABOUTME: Keyword extraction failures degrade to static fallback keywords
package ai

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Jeonsowon/Portfolio-Project/models"
)

// Posting source types accepted by BuildRemodel.
const (
	SourceURL  = "url"
	SourceText = "text"
)

// ErrNoSections means the posting yielded no requirement lines; callers
// should ask the user to paste the relevant sections as text instead.
var ErrNoSections = errors.New("no requirement sections found in posting")

// BuildRemodel runs the full remodel pipeline over a base document and
// returns the reordered copy. The source is either a posting URL or
// pasted posting text.
func BuildRemodel(ctx context.Context, gen Generator, base models.PortfolioData, sourceType, value string) (models.PortfolioData, error) {
	var text string
	switch sourceType {
	case SourceURL:
		fetched, err := FetchPosting(ctx, value)
		if err != nil {
			return models.PortfolioData{}, fmt.Errorf("failed to read posting: %w", err)
		}
		text = fetched
	case SourceText:
		text = CleanHTML(value)
	default:
		return models.PortfolioData{}, fmt.Errorf("sourceType must be %q or %q", SourceURL, SourceText)
	}

	sections := ExtractSections(text)
	if sections.Empty() {
		return models.PortfolioData{}, ErrNoSections
	}

	keywords, err := gen.ExtractKeywords(ctx, sections)
	if err != nil || len(keywords) == 0 {
		if err != nil {
			log.Printf("keyword extraction failed, using fallback: %v", err)
		}
		keywords = FallbackKeywords()
	}

	return Reorder(base, keywords), nil
}
