package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/models"
)

func TestKeywordMood(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"happy text", "I feel happy and grateful today", models.MoodHappy},
		{"stressed text", "I am stressed and anxious about the deadline", models.MoodStressed},
		{"sad text", "Feeling lonely and hurt, I had to cry", models.MoodSad},
		{"calm text", "A peaceful quiet evening, very relaxed", models.MoodCalm},
		{"excited text", "So thrilled and pumped for the adventure", models.MoodExcited},
		{"no keywords", "The train arrived at the station", models.MoodNeutral},
		{"tie resolves to neutral", "happy sad", models.MoodNeutral},
		{"empty", "", models.MoodNeutral},
		{"punctuation only", "... !!! ???", models.MoodNeutral},
		{"keyword inside longer word", "We spent the evening meditating", models.MoodCalm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mood, confidence := KeywordMood(tt.text)
			assert.Equal(t, tt.want, mood)
			assert.GreaterOrEqual(t, confidence, 0.0)
			assert.LessOrEqual(t, confidence, 1.0)
		})
	}
}

func TestKeywordMoodEmptyConfidence(t *testing.T) {
	_, confidence := KeywordMood("")
	assert.InDelta(t, 0.5, confidence, 0.001)
}

func TestKeywordMoodConfidenceScalesWithLength(t *testing.T) {
	// One keyword in a long entry should not claim full confidence.
	long := "happy " +
		"the meeting ran long and the train was delayed and nothing else of note occurred " +
		"during an otherwise unremarkable stretch of hours that filled the afternoon completely"
	_, confidence := KeywordMood(long)
	assert.Less(t, confidence, 0.5)
}

func TestMapEmotion(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"joy", models.MoodExcited},
		{"sadness", models.MoodSad},
		{"fear", models.MoodStressed},
		{"anger", models.MoodStressed},
		{"anxiety", models.MoodStressed},
		{"surprise", models.MoodExcited},
		{"happy", models.MoodHappy},
		{"angry", models.MoodAngry},
		{"HAPPY", models.MoodHappy},
		{" calm.", models.MoodCalm},
		{"bewilderment", models.MoodNeutral},
		{"", models.MoodNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, MapEmotion(tt.label))
		})
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"hello", "world"}, Tokenize("Hello, World!"))
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("  ...  "))
}
