package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Mood labels a diary entry can carry. "angry" is kept as a reachable
// legacy label so score maps stay total, but it is never suggested by
// the analyzer.
const (
	MoodHappy    = "happy"
	MoodExcited  = "excited"
	MoodCalm     = "calm"
	MoodNeutral  = "neutral"
	MoodStressed = "stressed"
	MoodSad      = "sad"
	MoodAngry    = "angry"
)

var MoodOptions = []string{MoodHappy, MoodExcited, MoodCalm, MoodNeutral, MoodStressed, MoodSad}

func IsValidMood(mood string) bool {
	if mood == MoodAngry {
		return true
	}
	for _, m := range MoodOptions {
		if mood == m {
			return true
		}
	}
	return false
}

// Entry is a journal record. One entry per user per calendar day; the
// unique index covers live rows only, so deleting a day frees it for a
// new entry.
type Entry struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_entries_user_date" json:"user_id"`
	EntryDate    time.Time      `gorm:"type:date;not null;uniqueIndex:idx_entries_user_date,where:deleted_at IS NULL" json:"date"`
	Title        string         `gorm:"size:200" json:"title"`
	Content      string         `gorm:"type:text" json:"content"`
	Mood         string         `gorm:"size:20;default:'neutral'" json:"mood"`
	AISummary    string         `gorm:"type:text" json:"ai_summary,omitempty"`
	AIReflection string         `gorm:"type:text" json:"ai_reflection,omitempty"`
	Images       datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"images"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// WordCount counts whitespace-separated words in the entry content.
func (e *Entry) WordCount() int {
	count := 0
	inWord := false
	for _, r := range e.Content {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			inWord = false
		} else if !inWord {
			inWord = true
			count++
		}
	}
	return count
}
