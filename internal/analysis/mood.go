package analysis

import (
	"regexp"
	"strings"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/models"
)

var wordSplitter = regexp.MustCompile(`\W+`)

// MoodResult carries a detected mood label with the confidence of the
// detection and the backend tier that produced it.
type MoodResult struct {
	Mood       string  `json:"mood"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// Tokenize lowercases the text and splits it on non-word runs.
func Tokenize(text string) []string {
	raw := wordSplitter.Split(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// KeywordMood scores the text against the mood keyword tables and returns
// the winning label. A token matches a keyword when it contains it, so
// "meditating" counts toward calm. Ties and zero scores resolve to neutral.
func KeywordMood(text string) (string, float64) {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return models.MoodNeutral, 0.5
	}

	scores := make(map[string]int, len(moodOrder))
	for _, mood := range moodOrder {
		for _, kw := range moodKeywords[mood] {
			for _, tok := range tokens {
				if strings.Contains(tok, kw) {
					scores[mood]++
				}
			}
		}
	}

	best, bestScore, tied := models.MoodNeutral, 0, false
	for _, mood := range moodOrder {
		switch s := scores[mood]; {
		case s > bestScore:
			best, bestScore, tied = mood, s, false
		case s == bestScore && s > 0:
			tied = true
		}
	}
	if bestScore == 0 || tied {
		best = models.MoodNeutral
	}

	// Normalize against text length so one keyword in a long entry does
	// not claim full confidence.
	denom := float64(len(tokens)) / 10
	if denom < 1 {
		denom = 1
	}
	confidence := float64(bestScore) / denom
	if confidence > 1 {
		confidence = 1
	}
	if confidence == 0 {
		confidence = 0.5
	}
	return best, confidence
}

// MapEmotion folds a free-form classifier label onto one of the six mood
// labels. Labels already in the mood vocabulary pass through unchanged.
func MapEmotion(label string) string {
	l := strings.ToLower(strings.TrimSpace(strings.Trim(strings.TrimSpace(label), `."'`)))
	if l == "" {
		return models.MoodNeutral
	}
	if models.IsValidMood(l) {
		return l
	}
	if mapped, ok := emotionLabels[l]; ok {
		return mapped
	}
	return models.MoodNeutral
}
