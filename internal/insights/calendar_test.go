package insights

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/models"
)

func TestBuildCalendar(t *testing.T) {
	today := day(2026, 8, 28)

	entry := entryOn(day(2026, 8, 27), models.MoodHappy, "yesterday")
	entry.ID = uuid.New()

	cells := BuildCalendar([]models.Entry{entry}, today)
	require.Len(t, cells, 30)

	// Oldest first, today last.
	assert.Equal(t, "2026-07-30", cells[0].Date)
	assert.Equal(t, "2026-08-28", cells[29].Date)

	yesterday := cells[28]
	assert.Equal(t, "2026-08-27", yesterday.Date)
	assert.True(t, yesterday.HasEntry)
	assert.Equal(t, models.MoodHappy, yesterday.Mood)
	require.NotNil(t, yesterday.EntryID)
	assert.Equal(t, entry.ID, *yesterday.EntryID)

	assert.False(t, cells[29].HasEntry)
	assert.Empty(t, cells[29].Mood)
	assert.Nil(t, cells[29].EntryID)
}

func TestBuildCalendarEmpty(t *testing.T) {
	cells := BuildCalendar(nil, day(2026, 8, 28))
	require.Len(t, cells, 30)
	for _, c := range cells {
		assert.False(t, c.HasEntry)
	}
}
