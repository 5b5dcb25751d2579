// ABOUTME: Keyword normalization and keyword-weighted portfolio reordering
// ABOUTME: Pure functions so the remodel pipeline is testable without a model
package ai

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"

	"github.com/Jeonsowon/Portfolio-Project/models"
)

const (
	maxRemodelSkills   = 15
	maxRemodelProjects = 6

	minKeywordWeight = 0.2
	maxKeywordWeight = 1.0
)

// NormalizeKeywords clamps weights, drops empty terms, and merges
// case-insensitive duplicates keeping the highest weight. Order of first
// appearance is preserved.
func NormalizeKeywords(raw []Keyword) []Keyword {
	var keywords []Keyword
	seen := make(map[string]int)

	for _, k := range raw {
		k.Term = strings.TrimSpace(k.Term)
		if k.Term == "" {
			continue
		}
		if k.Weight < minKeywordWeight {
			k.Weight = minKeywordWeight
		}
		if k.Weight > maxKeywordWeight {
			k.Weight = maxKeywordWeight
		}
		switch k.Kind {
		case KindRole, KindEtc:
		default:
			k.Kind = KindTech
		}

		key := strings.ToLower(k.Term)
		if i, ok := seen[key]; ok {
			if k.Weight > keywords[i].Weight {
				keywords[i] = k
			}
			continue
		}
		seen[key] = len(keywords)
		keywords = append(keywords, k)
	}

	return keywords
}

// FallbackKeywords is used when extraction fails, so a remodel still
// produces a reasonable backend-leaning ordering.
func FallbackKeywords() []Keyword {
	return []Keyword{
		{Term: "Java", Weight: 0.8, Kind: KindTech},
		{Term: "Spring Boot", Weight: 0.9, Kind: KindTech},
		{Term: "MySQL", Weight: 0.7, Kind: KindTech},
		{Term: "AWS", Weight: 0.7, Kind: KindTech},
		{Term: "백엔드", Weight: 0.8, Kind: KindRole},
	}
}

// Reorder returns a copy of base with skills and projects sorted by
// keyword relevance and cut to the remodel caps. The remaining sections
// keep all their entries but are also sorted, most relevant first.
// Entry contents (icons, images, links) are untouched.
func Reorder(base models.PortfolioData, keywords []Keyword) models.PortfolioData {
	out := base.Clone()

	skills := out.Skills
	sort.SliceStable(skills, func(i, j int) bool {
		return skillScore(skills[i], keywords) > skillScore(skills[j], keywords)
	})
	if len(skills) > maxRemodelSkills {
		skills = skills[:maxRemodelSkills]
	}
	out.Skills = skills

	projects := out.Projects
	sort.SliceStable(projects, func(i, j int) bool {
		return projectScore(projects[i], keywords) > projectScore(projects[j], keywords)
	})
	if len(projects) > maxRemodelProjects {
		projects = projects[:maxRemodelProjects]
	}
	out.Projects = projects

	sortByTextScore(out.Contacts, keywords)
	sortByTextScore(out.Experiences, keywords)
	sortByTextScore(out.Educations, keywords)
	sortByTextScore(out.Certifications, keywords)
	sortByTextScore(out.Awards, keywords)

	return out
}

// sortByTextScore orders entries by how many weighted keywords appear in
// their JSON form. Ties keep the original order.
func sortByTextScore[T any](entries []T, keywords []Keyword) {
	type scored struct {
		entry T
		score float64
	}
	ranked := make([]scored, len(entries))
	for i, e := range entries {
		ranked[i] = scored{entry: e, score: textScore(e, keywords)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	for i, r := range ranked {
		entries[i] = r.entry
	}
}

func textScore(entry any, keywords []Keyword) float64 {
	raw, err := json.Marshal(entry)
	if err != nil {
		return 0
	}
	text := strings.ToLower(string(raw))

	var score float64
	for _, k := range keywords {
		if k.Kind != KindTech && k.Kind != KindRole {
			continue
		}
		if strings.Contains(text, strings.ToLower(k.Term)) {
			score += k.Weight
		}
	}
	return score
}

func skillScore(s models.Skill, keywords []Keyword) float64 {
	var score float64
	for _, k := range keywords {
		switch k.Kind {
		case KindTech:
			if containsToken(s.Name, k.Term) {
				score += 1.0 * k.Weight
			}
		case KindRole:
			if containsToken(s.Name, k.Term) {
				score += 0.6 * k.Weight
			}
		}
	}
	return score
}

func projectScore(p models.Project, keywords []Keyword) float64 {
	var score float64
	for _, k := range keywords {
		w := k.Weight
		if k.Kind == KindRole && containsAny(p.MyRole, k.Term) {
			score += 1.2 * w
		}
		if k.Kind != KindTech {
			continue
		}
		if containsAny(p.Title, k.Term) {
			score += 0.6 * w
		}
		if containsAny(p.Description, k.Term) {
			score += 0.8 * w
		}
		for _, t := range p.Techs {
			if containsToken(t, k.Term) {
				score += 1.0 * w
			}
		}
	}
	return score
}

func containsAny(text, needle string) bool {
	if text == "" || needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(needle))
}

var tokenStrip = regexp.MustCompile(`[^a-z0-9+#. ]`)

// containsToken compares token-wise so "Spring Boot" matches
// "spring-boot" and similar punctuation variants.
func containsToken(token, needle string) bool {
	if token == "" || needle == "" {
		return false
	}
	a := tokenStrip.ReplaceAllString(strings.ToLower(token), " ")
	b := strings.TrimSpace(tokenStrip.ReplaceAllString(strings.ToLower(needle), " "))
	if b == "" {
		// Needle had no latin tokens (e.g. Korean role names); fall back
		// to a plain substring check on the raw strings.
		return containsAny(token, needle)
	}

	if strings.Contains(a, b) {
		return true
	}

	have := make(map[string]bool)
	for _, t := range strings.Fields(a) {
		have[t] = true
	}
	for _, t := range strings.Fields(b) {
		if !have[t] {
			return false
		}
	}
	return true
}
