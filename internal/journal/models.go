package journal

import (
	"github.com/Gaurav-yadav-03/moodscape-flow/internal/models"
	"gorm.io/datatypes"
)

type CreateEntryRequest struct {
	Date    string         `json:"date"`
	Title   string         `json:"title"`
	Content string         `json:"content"`
	Mood    string         `json:"mood"`
	Images  datatypes.JSON `json:"images"`
}

// UpdateEntryRequest uses pointers so absent fields are left untouched.
type UpdateEntryRequest struct {
	Title   *string         `json:"title"`
	Content *string         `json:"content"`
	Mood    *string         `json:"mood"`
	Images  *datatypes.JSON `json:"images"`
}

type AnalyzeEntryRequest struct {
	ApplyMood bool `json:"apply_mood"`
}

type ListEntriesResponse struct {
	Entries []models.Entry `json:"entries"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
}

type AnalyzeEntryResponse struct {
	Entry         models.Entry `json:"entry"`
	Summary       string       `json:"summary"`
	Reflection    string       `json:"reflection"`
	SuggestedMood string       `json:"suggested_mood"`
	Confidence    float64      `json:"confidence"`
	Keywords      []string     `json:"keywords"`
	Source        string       `json:"source"`
}
