package insights

import (
	"time"

	"github.com/google/uuid"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/models"
)

const calendarDays = 30

// CalendarDay is one cell of the mood calendar.
type CalendarDay struct {
	Date     string     `json:"date"`
	Mood     string     `json:"mood,omitempty"`
	HasEntry bool       `json:"has_entry"`
	EntryID  *uuid.UUID `json:"entry_id,omitempty"`
}

// BuildCalendar renders the last 30 days as calendar cells, oldest first.
// Days without an entry appear as empty cells so the client can draw a
// complete grid.
func BuildCalendar(entries []models.Entry, today time.Time) []CalendarDay {
	day := today.UTC().Truncate(24 * time.Hour)

	byDay := make(map[string]*models.Entry, len(entries))
	for i := range entries {
		byDay[entries[i].EntryDate.UTC().Format("2006-01-02")] = &entries[i]
	}

	cells := make([]CalendarDay, 0, calendarDays)
	for offset := calendarDays - 1; offset >= 0; offset-- {
		date := day.AddDate(0, 0, -offset).Format("2006-01-02")
		cell := CalendarDay{Date: date}
		if entry, ok := byDay[date]; ok {
			cell.Mood = entry.Mood
			cell.HasEntry = true
			id := entry.ID
			cell.EntryID = &id
		}
		cells = append(cells, cell)
	}
	return cells
}
