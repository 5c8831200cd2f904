package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const summaryMinLength = 50

var sentenceSplitter = regexp.MustCompile(`[.!?]+`)

// ExtractKeywords returns the most frequent non-stopword tokens longer than
// three characters, most frequent first.
func ExtractKeywords(text string, limit int) []string {
	freq := make(map[string]int)
	for _, tok := range Tokenize(text) {
		if len(tok) > 3 && !stopwords[tok] {
			freq[tok]++
		}
	}
	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})
	if len(words) > limit {
		words = words[:limit]
	}
	return words
}

// DetectTheme returns the dominant life-domain theme of the text, or ""
// when no theme keyword appears or two themes tie.
func DetectTheme(text string) string {
	lower := strings.ToLower(text)
	best, bestScore, tied := "", 0, false
	for _, theme := range themeOrder {
		score := 0
		for _, kw := range themeKeywords[theme] {
			score += strings.Count(lower, kw)
		}
		switch {
		case score > bestScore:
			best, bestScore, tied = theme, score, false
		case score == bestScore && score > 0:
			tied = true
		}
	}
	if bestScore == 0 || tied {
		return ""
	}
	return best
}

// Summarize produces an extractive summary of a journal entry. Text shorter
// than 50 characters is returned unchanged. Otherwise sentences are scored
// by position, overlap with the entry's top keywords and presence of
// emotional words, and the two best are stitched back in original order.
func Summarize(text string) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < summaryMinLength {
		return trimmed
	}

	sentences := make([]string, 0, 8)
	for _, raw := range sentenceSplitter.Split(trimmed, -1) {
		if s := strings.TrimSpace(raw); len(s) >= 10 {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return trimmed
	}

	keywords := ExtractKeywords(trimmed, 8)

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(sentences))
	for i, sentence := range sentences {
		lower := strings.ToLower(sentence)
		score := 0.0
		if i == 0 || i == len(sentences)-1 {
			score++
		}
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				score += 2
			}
		}
		for _, w := range sentimentWords {
			if strings.Contains(lower, w) {
				score += 1.5
				break
			}
		}
		ranked[i] = scored{index: i, score: score}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	picked := ranked
	if len(picked) > 2 {
		picked = picked[:2]
	}
	sort.Slice(picked, func(i, j int) bool { return picked[i].index < picked[j].index })

	parts := make([]string, len(picked))
	for i, p := range picked {
		parts[i] = sentences[p.index]
	}
	summary := strings.Join(parts, ". ") + "."

	if theme := DetectTheme(trimmed); theme != "" {
		summary += fmt.Sprintf(" Much of the entry centers on %s.", themePhrase(theme))
	}
	return summary
}

func themePhrase(theme string) string {
	switch theme {
	case ThemeWork:
		return "work and career"
	case ThemeRelationships:
		return "relationships and connection"
	case ThemeStress:
		return "stress and pressure"
	case ThemeJoy:
		return "joy and positive moments"
	default:
		return theme
	}
}
