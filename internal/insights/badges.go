package insights

import (
	"time"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/models"
)

// Badge is an achievement a user can earn through journaling habits.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Earned      bool   `json:"earned"`
	EarnedDate  string `json:"earned_date,omitempty"`
}

type badgeDef struct {
	id          string
	name        string
	description string
	icon        string
	category    string
	earned      func(ctx *badgeContext) (bool, time.Time)
}

type badgeContext struct {
	entries []models.Entry
	streaks Streaks
}

// firstWhere returns the earliest entry satisfying the predicate.
func firstWhere(entries []models.Entry, pred func(models.Entry) bool) (bool, time.Time) {
	for _, e := range entries {
		if pred(e) {
			return true, e.EntryDate
		}
	}
	return false, time.Time{}
}

// nthWhere returns the entry date at which the predicate held for the
// n-th time.
func nthWhere(entries []models.Entry, n int, pred func(models.Entry) bool) (bool, time.Time) {
	count := 0
	for _, e := range entries {
		if pred(e) {
			count++
			if count == n {
				return true, e.EntryDate
			}
		}
	}
	return false, time.Time{}
}

var badgeDefs = []badgeDef{
	{
		id: "first_entry", name: "First Steps", icon: "🌱", category: "milestones",
		description: "Wrote your first journal entry",
		earned: func(ctx *badgeContext) (bool, time.Time) {
			return firstWhere(ctx.entries, func(models.Entry) bool { return true })
		},
	},
	{
		id: "consistency_3", name: "Getting Started", icon: "🔥", category: "consistency",
		description: "Wrote entries 3 days in a row",
		earned: func(ctx *badgeContext) (bool, time.Time) {
			return ctx.streaks.Longest >= 3, time.Time{}
		},
	},
	{
		id: "consistency_7", name: "Week Warrior", icon: "⚡", category: "consistency",
		description: "Wrote entries 7 days in a row",
		earned: func(ctx *badgeContext) (bool, time.Time) {
			return ctx.streaks.Longest >= 7, time.Time{}
		},
	},
	{
		id: "consistency_30", name: "Monthly Master", icon: "👑", category: "consistency",
		description: "Wrote entries 30 days in a row",
		earned: func(ctx *badgeContext) (bool, time.Time) {
			return ctx.streaks.Longest >= 30, time.Time{}
		},
	},
	{
		id: "deep_thinker", name: "Deep Thinker", icon: "🤔", category: "depth",
		description: "Wrote a reflective entry of 500+ characters",
		earned: func(ctx *badgeContext) (bool, time.Time) {
			return firstWhere(ctx.entries, func(e models.Entry) bool { return len(e.Content) > 500 })
		},
	},
	{
		id: "novelist", name: "Novelist", icon: "📚", category: "depth",
		description: "Wrote an epic entry of 1000+ characters",
		earned: func(ctx *badgeContext) (bool, time.Time) {
			return firstWhere(ctx.entries, func(e models.Entry) bool { return len(e.Content) > 1000 })
		},
	},
	{
		id: "resilient_soul", name: "Resilient Soul", icon: "💪", category: "wellbeing",
		description: "Kept journaling through a difficult day",
		earned: func(ctx *badgeContext) (bool, time.Time) {
			return firstWhere(ctx.entries, func(e models.Entry) bool {
				return e.Mood == models.MoodSad || e.Mood == models.MoodStressed
			})
		},
	},
	{
		id: "joy_spreader", name: "Joy Spreader", icon: "☀️", category: "wellbeing",
		description: "Recorded 5 happy days",
		earned: func(ctx *badgeContext) (bool, time.Time) {
			return nthWhere(ctx.entries, 5, func(e models.Entry) bool { return e.Mood == models.MoodHappy })
		},
	},
	{
		id: "early_bird", name: "Early Bird", icon: "🌅", category: "habits",
		description: "Wrote an entry before 6am",
		earned: func(ctx *badgeContext) (bool, time.Time) {
			return firstWhere(ctx.entries, func(e models.Entry) bool { return e.CreatedAt.Hour() < 6 })
		},
	},
	{
		id: "night_owl", name: "Night Owl", icon: "🦉", category: "habits",
		description: "Wrote an entry after 10pm",
		earned: func(ctx *badgeContext) (bool, time.Time) {
			return firstWhere(ctx.entries, func(e models.Entry) bool { return e.CreatedAt.Hour() >= 22 })
		},
	},
}

// EvaluateBadges checks every badge against the user's full history.
// Entries must be ordered oldest-first so earned dates point at the entry
// that unlocked the badge.
func EvaluateBadges(entries []models.Entry, today time.Time) []Badge {
	ctx := &badgeContext{
		entries: entries,
		streaks: ComputeStreaks(entryDates(entries), today),
	}

	badges := make([]Badge, 0, len(badgeDefs))
	for _, def := range badgeDefs {
		earned, at := def.earned(ctx)
		badge := Badge{
			ID:          def.id,
			Name:        def.name,
			Description: def.description,
			Icon:        def.icon,
			Category:    def.category,
			Earned:      earned,
		}
		if earned && !at.IsZero() {
			badge.EarnedDate = at.Format("2006-01-02")
		}
		badges = append(badges, badge)
	}
	return badges
}

func entryDates(entries []models.Entry) []time.Time {
	dates := make([]time.Time, len(entries))
	for i, e := range entries {
		dates[i] = e.EntryDate
	}
	return dates
}
