package insights

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/models"
)

func badgeByID(t *testing.T, badges []Badge, id string) Badge {
	t.Helper()
	for _, b := range badges {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("badge %q not found", id)
	return Badge{}
}

func TestEvaluateBadgesNoEntries(t *testing.T) {
	badges := EvaluateBadges(nil, day(2026, 8, 28))
	require.Len(t, badges, len(badgeDefs))
	for _, b := range badges {
		assert.False(t, b.Earned, "badge %s should not be earned with no entries", b.ID)
	}
}

func TestFirstEntryBadge(t *testing.T) {
	entries := []models.Entry{entryOn(day(2026, 8, 28), models.MoodNeutral, "hello journal")}
	badges := EvaluateBadges(entries, day(2026, 8, 28))

	first := badgeByID(t, badges, "first_entry")
	assert.True(t, first.Earned)
	assert.Equal(t, "2026-08-28", first.EarnedDate)
}

func TestConsistencyBadges(t *testing.T) {
	today := day(2026, 8, 28)
	entries := make([]models.Entry, 0, 7)
	for i := 6; i >= 0; i-- {
		entries = append(entries, entryOn(today.AddDate(0, 0, -i), models.MoodCalm, "daily note"))
	}

	badges := EvaluateBadges(entries, today)
	assert.True(t, badgeByID(t, badges, "consistency_3").Earned)
	assert.True(t, badgeByID(t, badges, "consistency_7").Earned)
	assert.False(t, badgeByID(t, badges, "consistency_30").Earned)
}

func TestDepthBadges(t *testing.T) {
	today := day(2026, 8, 28)
	entries := []models.Entry{
		entryOn(today.AddDate(0, 0, -1), models.MoodNeutral, strings.Repeat("a", 600)),
		entryOn(today, models.MoodNeutral, strings.Repeat("b", 1200)),
	}

	badges := EvaluateBadges(entries, today)

	deep := badgeByID(t, badges, "deep_thinker")
	assert.True(t, deep.Earned)
	assert.Equal(t, "2026-08-27", deep.EarnedDate)

	novelist := badgeByID(t, badges, "novelist")
	assert.True(t, novelist.Earned)
	assert.Equal(t, "2026-08-28", novelist.EarnedDate)
}

func TestWellbeingBadges(t *testing.T) {
	today := day(2026, 8, 28)
	entries := []models.Entry{
		entryOn(day(2026, 8, 20), models.MoodSad, "hard day"),
		entryOn(day(2026, 8, 21), models.MoodHappy, "better"),
		entryOn(day(2026, 8, 22), models.MoodHappy, "better"),
		entryOn(day(2026, 8, 23), models.MoodHappy, "better"),
		entryOn(day(2026, 8, 24), models.MoodHappy, "better"),
	}

	badges := EvaluateBadges(entries, today)
	assert.True(t, badgeByID(t, badges, "resilient_soul").Earned)
	// Only 4 happy days so far.
	assert.False(t, badgeByID(t, badges, "joy_spreader").Earned)

	entries = append(entries, entryOn(day(2026, 8, 25), models.MoodHappy, "great"))
	badges = EvaluateBadges(entries, today)
	joy := badgeByID(t, badges, "joy_spreader")
	assert.True(t, joy.Earned)
	assert.Equal(t, "2026-08-25", joy.EarnedDate)
}

func TestHabitBadges(t *testing.T) {
	today := day(2026, 8, 28)
	early := entryOn(day(2026, 8, 26), models.MoodCalm, "sunrise pages")
	early.CreatedAt = time.Date(2026, 8, 26, 5, 30, 0, 0, time.UTC)
	late := entryOn(day(2026, 8, 27), models.MoodCalm, "midnight pages")
	late.CreatedAt = time.Date(2026, 8, 27, 23, 10, 0, 0, time.UTC)

	badges := EvaluateBadges([]models.Entry{early, late}, today)
	assert.True(t, badgeByID(t, badges, "early_bird").Earned)
	assert.True(t, badgeByID(t, badges, "night_owl").Earned)
}
