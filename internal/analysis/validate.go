package analysis

import (
	"errors"
	"strings"
	"unicode"
)

const (
	minContentLength = 10
	minContentWords  = 3
	minAlphaRatio    = 0.5
)

var (
	ErrContentTooShort = errors.New("content must be at least 10 characters")
	ErrTooFewWords     = errors.New("content must contain at least 3 words")
	ErrNotEnoughText   = errors.New("content must be mostly letters")
)

// CheckContent guards the per-entry actions against text too thin to
// analyze meaningfully: minimum length, minimum word count, and a majority
// of alphabetic characters among the non-space ones.
func CheckContent(text string) error {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minContentLength {
		return ErrContentTooShort
	}
	if len(strings.Fields(trimmed)) < minContentWords {
		return ErrTooFewWords
	}

	alpha, total := 0, 0
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsLetter(r) {
			alpha++
		}
	}
	if total == 0 || float64(alpha)/float64(total) < minAlphaRatio {
		return ErrNotEnoughText
	}
	return nil
}
