package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/models"
)

func entryOn(date time.Time, mood, content string) models.Entry {
	return models.Entry{EntryDate: date, Mood: mood, Content: content}
}

func TestAnalyzeTrendsEmpty(t *testing.T) {
	today := day(2026, 8, 28)
	got := AnalyzeTrends(nil, today)

	assert.InDelta(t, 3.0, got.AverageScore, 0.001)
	assert.Equal(t, "Write more entries to see your mood patterns!", got.Message)
	assert.Zero(t, got.EntriesLast30)
}

func TestAnalyzeTrendsFewEntriesOverride(t *testing.T) {
	today := day(2026, 8, 28)
	entries := []models.Entry{
		entryOn(day(2026, 8, 27), models.MoodHappy, "good day"),
		entryOn(day(2026, 8, 28), models.MoodHappy, "another good day"),
	}

	got := AnalyzeTrends(entries, today)
	assert.Equal(t, "Write more entries to see your mood patterns!", got.Message)
}

func TestAnalyzeTrendsGreatWeek(t *testing.T) {
	today := day(2026, 8, 28)
	entries := make([]models.Entry, 0, 7)
	for i := 0; i < 7; i++ {
		entries = append(entries, entryOn(today.AddDate(0, 0, -i), models.MoodHappy, "a lovely day indeed"))
	}

	got := AnalyzeTrends(entries, today)
	assert.InDelta(t, 4.0, got.AverageScore, 0.001)
	assert.Contains(t, got.Message, "feeling great")
	assert.Contains(t, got.Message, "positive energy is shining through")
	assert.Equal(t, models.MoodHappy, got.MostCommonMood)
	assert.Equal(t, 100, got.MoodPercentages[models.MoodHappy])
	assert.Equal(t, 7, got.EntriesLast7)
}

func TestAnalyzeTrendsStressedWeek(t *testing.T) {
	today := day(2026, 8, 28)
	entries := []models.Entry{
		entryOn(today, models.MoodStressed, "rough"),
		entryOn(today.AddDate(0, 0, -1), models.MoodStressed, "rough"),
		entryOn(today.AddDate(0, 0, -2), models.MoodStressed, "rough"),
		entryOn(today.AddDate(0, 0, -3), models.MoodCalm, "better"),
		entryOn(today.AddDate(0, 0, -4), models.MoodCalm, "better"),
	}

	got := AnalyzeTrends(entries, today)
	// (1+1+1+3+3)/5 = 1.8
	assert.InDelta(t, 1.8, got.AverageScore, 0.001)
	assert.Contains(t, got.Message, "tough time")
	assert.Contains(t, got.Message, "relaxation techniques")
}

func TestAnalyzeTrendsMixedDistribution(t *testing.T) {
	today := day(2026, 8, 28)

	// 10 entries spread over the 30-day window: 5 happy, 3 calm, 2 sad.
	moods := []string{
		models.MoodHappy, models.MoodHappy, models.MoodHappy, models.MoodHappy, models.MoodHappy,
		models.MoodCalm, models.MoodCalm, models.MoodCalm,
		models.MoodSad, models.MoodSad,
	}
	entries := make([]models.Entry, 0, len(moods))
	for i, mood := range moods {
		entries = append(entries, entryOn(today.AddDate(0, 0, -i*3), mood, "entry"))
	}

	got := AnalyzeTrends(entries, today)
	assert.Equal(t, 10, got.EntriesLast30)
	assert.Equal(t, 50, got.MoodPercentages[models.MoodHappy])
	assert.Equal(t, 30, got.MoodPercentages[models.MoodCalm])
	assert.Equal(t, 20, got.MoodPercentages[models.MoodSad])
	assert.Equal(t, models.MoodHappy, got.MostCommonMood)
}

func TestAnalyzeTrendsIgnoresOldEntries(t *testing.T) {
	today := day(2026, 8, 28)
	entries := []models.Entry{
		entryOn(day(2026, 6, 1), models.MoodSad, "long ago"),
		entryOn(today, models.MoodHappy, "now"),
	}

	got := AnalyzeTrends(entries, today)
	assert.Equal(t, 1, got.EntriesLast30)
	assert.Zero(t, got.MoodCounts[models.MoodSad])
}

func TestAnalyzeTrendsWritingStats(t *testing.T) {
	today := day(2026, 8, 28)
	entries := []models.Entry{
		entryOn(today, models.MoodNeutral, "one two three four"),
		entryOn(today.AddDate(0, 0, -1), models.MoodNeutral, "five six"),
	}

	got := AnalyzeTrends(entries, today)
	assert.Equal(t, 6, got.Writing.TotalWords)
	assert.Equal(t, 3, got.Writing.AverageWords)
}

func TestAnalyzeTrendsDailyScores(t *testing.T) {
	today := day(2026, 8, 28)
	entries := []models.Entry{
		entryOn(today, models.MoodExcited, "x"),
	}

	got := AnalyzeTrends(entries, today)
	require.Len(t, got.DailyScores, 1)
	assert.Equal(t, "2026-08-28", got.DailyScores[0].Date)
	assert.InDelta(t, 5.0, got.DailyScores[0].Score, 0.001)
}

func TestMoodScore(t *testing.T) {
	assert.InDelta(t, 5.0, MoodScore(models.MoodExcited), 0.001)
	assert.InDelta(t, 1.0, MoodScore(models.MoodAngry), 0.001)
	assert.InDelta(t, 3.0, MoodScore("unknown"), 0.001)
}
