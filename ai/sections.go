// ABOUTME: Rule-based extraction of requirement sections from posting text
// ABOUTME: Header regexes switch collection mode; unrelated headers stop it
package ai

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	maxRequired  = 12
	maxPreferred = 10
)

var (
	reqHeader  = regexp.MustCompile(`(?i)(자격요건|지원자격|필수요건|Requirements?)`)
	prefHeader = regexp.MustCompile(`(?i)(우대사항|우대조건|가산점|Preferred|Nice to have)`)
	stopHeader = regexp.MustCompile(`(?i)(주요업무|담당업무|근무조건|전형절차|복리후생|회사소개|About|Responsibilities?)`)

	bulletMarks = strings.NewReplacer("•", "- ", "‣", "- ", "▪", "- ", "▶", "- ", "▸", "- ", "·", "- ", "ㆍ", "- ")
)

// ExtractSections pulls required and preferred lines out of cleaned
// posting text. Collection starts at a matching header, switches when the
// other header appears, and stops at any unrelated section header. Long
// sections are cut at 12 required and 10 preferred lines.
func ExtractSections(cleanText string) Sections {
	normalized := bulletMarks.Replace(cleanText)

	var required, preferred []string
	mode := 0 // 0 none, 1 required, 2 preferred

	for _, raw := range splitLines(normalized) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if reqHeader.MatchString(line) {
			mode = 1
			continue
		}
		if prefHeader.MatchString(line) {
			mode = 2
			continue
		}
		if stopHeader.MatchString(line) {
			mode = 0
			continue
		}

		item := strings.TrimSpace(strings.TrimLeft(line, "- \t"))
		if item == "" {
			continue
		}
		switch mode {
		case 1:
			if len(required) < maxRequired {
				required = append(required, item)
			}
		case 2:
			if len(preferred) < maxPreferred {
				preferred = append(preferred, item)
			}
		}
	}

	return Sections{Required: required, Preferred: preferred}
}

// Empty reports whether no requirement lines were found at all.
func (s Sections) Empty() bool {
	return len(s.Required) == 0 && len(s.Preferred) == 0
}

// splitLines breaks text on newlines and additionally after a sentence
// period followed by a capital letter or Hangul, which recovers structure
// from postings whose markup collapsed into one line.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		lines = append(lines, splitSentences(line)...)
	}
	return lines
}

func splitSentences(line string) []string {
	runes := []rune(line)
	var parts []string
	start := 0
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] != '.' || runes[i+1] != ' ' {
			continue
		}
		j := i + 1
		for j < len(runes) && runes[j] == ' ' {
			j++
		}
		if j < len(runes) && (unicode.IsUpper(runes[j]) || unicode.Is(unicode.Hangul, runes[j])) {
			parts = append(parts, string(runes[start:i+1]))
			start = j
			i = j - 1
		}
	}
	parts = append(parts, string(runes[start:]))
	return parts
}
