package insights

import (
	"math"
	"time"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/models"
)

// moodScores places each mood on a 1-5 wellbeing scale.
var moodScores = map[string]float64{
	models.MoodExcited:  5,
	models.MoodHappy:    4,
	models.MoodCalm:     3,
	models.MoodNeutral:  3,
	models.MoodSad:      2,
	models.MoodStressed: 1,
	models.MoodAngry:    1,
}

const neutralScore = 3

var moodRank = []string{
	models.MoodHappy,
	models.MoodExcited,
	models.MoodCalm,
	models.MoodNeutral,
	models.MoodStressed,
	models.MoodSad,
	models.MoodAngry,
}

type DailyScore struct {
	Date  string  `json:"date"`
	Mood  string  `json:"mood"`
	Score float64 `json:"score"`
}

type WritingStats struct {
	TotalWords   int `json:"total_words"`
	AverageWords int `json:"average_words"`
}

// TrendReport summarizes the last 30 days of moods: a 7-day average score
// with an encouraging message, and a 30-day mood distribution.
type TrendReport struct {
	Message         string         `json:"message"`
	AverageScore    float64        `json:"average_score"`
	MostCommonMood  string         `json:"most_common_mood"`
	EntriesLast7    int            `json:"entries_last_7_days"`
	EntriesLast30   int            `json:"entries_last_30_days"`
	MoodCounts      map[string]int `json:"mood_counts"`
	MoodPercentages map[string]int `json:"mood_percentages"`
	DailyScores     []DailyScore   `json:"daily_scores"`
	Writing         WritingStats   `json:"writing"`
}

// MoodScore returns the wellbeing score for a mood, neutral for unknown
// labels.
func MoodScore(mood string) float64 {
	if s, ok := moodScores[mood]; ok {
		return s
	}
	return neutralScore
}

// AnalyzeTrends computes the trend report from entries within the last 30
// days of today. Older entries are ignored.
func AnalyzeTrends(entries []models.Entry, today time.Time) TrendReport {
	day := today.UTC().Truncate(24 * time.Hour)
	cut7 := day.AddDate(0, 0, -6)
	cut30 := day.AddDate(0, 0, -29)

	report := TrendReport{
		MoodCounts:      make(map[string]int),
		MoodPercentages: make(map[string]int),
		DailyScores:     make([]DailyScore, 0, len(entries)),
	}

	var sum7 float64
	dominant7 := make(map[string]int)

	for _, e := range entries {
		d := e.EntryDate.UTC().Truncate(24 * time.Hour)
		if d.Before(cut30) || d.After(day) {
			continue
		}
		report.EntriesLast30++
		report.MoodCounts[e.Mood]++
		report.Writing.TotalWords += e.WordCount()
		report.DailyScores = append(report.DailyScores, DailyScore{
			Date:  d.Format("2006-01-02"),
			Mood:  e.Mood,
			Score: MoodScore(e.Mood),
		})

		if !d.Before(cut7) {
			report.EntriesLast7++
			sum7 += MoodScore(e.Mood)
			dominant7[e.Mood]++
		}
	}

	if report.EntriesLast30 > 0 {
		report.Writing.AverageWords = report.Writing.TotalWords / report.EntriesLast30
		for mood, count := range report.MoodCounts {
			report.MoodPercentages[mood] = int(math.Round(float64(count) / float64(report.EntriesLast30) * 100))
		}
		// Fixed order keeps ties deterministic.
		for _, mood := range moodRank {
			if report.MoodCounts[mood] > report.MoodCounts[report.MostCommonMood] {
				report.MostCommonMood = mood
			}
		}
	}

	if report.EntriesLast7 > 0 {
		report.AverageScore = math.Round(sum7/float64(report.EntriesLast7)*100) / 100
	} else {
		report.AverageScore = neutralScore
	}

	report.Message = trendMessage(report.AverageScore, report.EntriesLast7, dominant7)
	return report
}

// trendMessage picks the headline for the average score, with a secondary
// clause when one mood claims at least 3 of the last 7 days.
func trendMessage(avg float64, count7 int, dominant7 map[string]int) string {
	if count7 < 3 {
		return "Write more entries to see your mood patterns!"
	}

	var msg string
	switch {
	case avg >= 4:
		msg = "You've been feeling great lately! Keep up the positive energy! ✨"
	case avg >= 3.5:
		msg = "Your mood has been pretty stable. You're doing well! 😊"
	case avg >= 2.5:
		msg = "You seem to be going through some ups and downs. Take care of yourself! 💙"
	default:
		msg = "It looks like you've been having a tough time. Remember, it's okay to ask for help. 🤗"
	}

	best, bestCount := "", 0
	for _, mood := range moodRank {
		if count := dominant7[mood]; count > bestCount {
			best, bestCount = mood, count
		}
	}
	if bestCount >= 3 {
		switch best {
		case models.MoodStressed:
			msg += " Try some relaxation techniques or take breaks when you can."
		case models.MoodHappy, models.MoodExcited:
			msg += " Your positive energy is shining through!"
		}
	}
	return msg
}
