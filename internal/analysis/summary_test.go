package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeShortTextUnchanged(t *testing.T) {
	tests := []string{
		"Hello world",
		"A quiet day.",
		"",
	}
	for _, text := range tests {
		assert.Equal(t, text, Summarize(text))
	}
}

func TestSummarizeSelectsTwoSentences(t *testing.T) {
	text := "The morning train was crowded and slow. " +
		"I read a book about mountains during the ride. " +
		"The station coffee tasted burnt but warm."

	got := Summarize(text)
	require.NotEmpty(t, got)
	assert.True(t, strings.HasSuffix(got, "."))
	assert.Less(t, len(got), len(text))
}

func TestSummarizeAppendsThemeClause(t *testing.T) {
	text := "Work consumed the whole day again. " +
		"The project meeting at the office ran over by an hour. " +
		"My job leaves little room for anything else right now."

	got := Summarize(text)
	assert.Contains(t, got, "work and career")
}

func TestExtractKeywords(t *testing.T) {
	text := "mountains mountains mountains rivers rivers the and a it"
	got := ExtractKeywords(text, 8)
	require.Len(t, got, 2)
	assert.Equal(t, "mountains", got[0])
	assert.Equal(t, "rivers", got[1])
}

func TestExtractKeywordsSkipsShortAndStopwords(t *testing.T) {
	got := ExtractKeywords("the cat sat on the mat today", 8)
	for _, w := range got {
		assert.Greater(t, len(w), 3)
		assert.False(t, stopwords[w], "stopword %q leaked into keywords", w)
	}
}

func TestDetectTheme(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"work", "the meeting about the project at the office", ThemeWork},
		{"relationships", "dinner with family and an old friend", ThemeRelationships},
		{"stress", "everything feels so difficult and overwhelming", ThemeStress},
		{"joy", "what a wonderful and amazing afternoon", ThemeJoy},
		{"none", "the train left the station on time", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectTheme(tt.text))
		})
	}
}
