package insights

import (
	"sort"
	"time"
)

// Streaks describes consecutive-day writing runs.
type Streaks struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
	Total   int `json:"total_entries"`
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ComputeStreaks works over entry dates de-duplicated to calendar days.
// The current streak walks backward from today; a missing entry for today
// does not break it as long as yesterday is present. The longest streak is
// the maximal consecutive-day run over all history.
func ComputeStreaks(dates []time.Time, today time.Time) Streaks {
	if len(dates) == 0 {
		return Streaks{}
	}

	days := make(map[string]bool, len(dates))
	for _, d := range dates {
		days[dayKey(d)] = true
	}

	cursor := today.UTC().Truncate(24 * time.Hour)
	if !days[dayKey(cursor)] {
		cursor = cursor.AddDate(0, 0, -1)
	}
	current := 0
	for days[dayKey(cursor)] {
		current++
		cursor = cursor.AddDate(0, 0, -1)
	}

	unique := make([]string, 0, len(days))
	for k := range days {
		unique = append(unique, k)
	}
	sort.Strings(unique)

	longest, run := 1, 1
	for i := 1; i < len(unique); i++ {
		prev, _ := time.Parse("2006-01-02", unique[i-1])
		cur, _ := time.Parse("2006-01-02", unique[i])
		if cur.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	if current > longest {
		longest = current
	}

	return Streaks{Current: current, Longest: longest, Total: len(dates)}
}
