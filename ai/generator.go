// ABOUTME: Generator abstraction over the language model
// ABOUTME: Lets handlers and the TUI run against a stub in tests
package ai

import "context"

// KeywordKind classifies an extracted posting keyword.
type KeywordKind string

const (
	KindTech KeywordKind = "TECH"
	KindRole KeywordKind = "ROLE"
	KindEtc  KeywordKind = "ETC"
)

// Keyword is a weighted term extracted from a job posting. Weight is
// clamped to [0.2, 1.0] before use.
type Keyword struct {
	Term   string      `json:"term"`
	Weight float64     `json:"weight"`
	Kind   KeywordKind `json:"kind"`
}

// Sections holds the requirement lines pulled out of a posting.
type Sections struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// SummaryRequest carries the material for a project overview draft.
type SummaryRequest struct {
	Title   string   `json:"title"`
	Role    string   `json:"role"`
	Bullets []string `json:"bullets"`
	Techs   []string `json:"techs"`
	Tone    string   `json:"tone"`
}

// Generator produces model-backed text. The production implementation is
// Client; tests substitute a canned one.
type Generator interface {
	ExtractKeywords(ctx context.Context, sections Sections) ([]Keyword, error)
	GenerateSummary(ctx context.Context, req SummaryRequest) (string, error)
}
