// ABOUTME: Document resolution for the preview flow
// ABOUTME: Picks between handed-off state, the server copy, a local draft, and the empty template
package reconcile

import (
	"github.com/Jeonsowon/Portfolio-Project/models"
)

// Source tags where a resolved document came from, so the caller can tell
// a fresh server copy apart from a possibly stale local draft.
type Source string

const (
	FromNavigation Source = "navigation"
	FromServer     Source = "server"
	FromDraft      Source = "draft"
	Default        Source = "default"
)

// Resolution is a resolved preview document plus its provenance.
type Resolution struct {
	Doc    models.PortfolioData
	Source Source
	ID     *int64
}

// Fetcher loads a persisted document by id.
type Fetcher func(id int64) (models.PortfolioData, error)

// DraftLoader reads a local draft for a document identity.
type DraftLoader func(id *int64) (models.PortfolioData, bool)

// EffectiveID picks the document identity for a preview: an id carried by
// the in-app handoff wins over one parsed from the request target.
func EffectiveID(navID, queryID *int64) *int64 {
	if navID != nil {
		return navID
	}
	return queryID
}

// Resolve picks the document to show, in strict priority order: data handed
// over by in-app navigation, then a local draft, then the server copy for
// the effective id, then the empty template. Handed-over and draft documents
// may be partial and are merged over the template so absent fields render
// sanely.
func Resolve(nav *models.PortfolioData, navID, queryID *int64, fetch Fetcher, draft DraftLoader) Resolution {
	id := EffectiveID(navID, queryID)

	if nav != nil {
		return Resolution{Doc: models.Merged(models.Default(), *nav), Source: FromNavigation, ID: id}
	}

	if draft != nil {
		if doc, ok := draft(id); ok {
			return Resolution{Doc: models.Merged(models.Default(), doc), Source: FromDraft, ID: id}
		}
	}

	if id != nil && fetch != nil {
		if doc, err := fetch(*id); err == nil {
			return Resolution{Doc: doc, Source: FromServer, ID: id}
		}
	}

	return Resolution{Doc: models.Default(), Source: Default, ID: id}
}
