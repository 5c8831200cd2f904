package analysis

import (
	"context"
	"errors"
	"strings"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/models"
)

// Action names an analysis operation a backend can perform.
type Action string

const (
	ActionSummarize  Action = "summarize"
	ActionDetectMood Action = "detect-mood"
	ActionReflect    Action = "reflect"
	ActionTrend      Action = "trend-analysis"
)

// ValidAction reports whether the action is one the analyzer supports.
func ValidAction(a Action) bool {
	switch a {
	case ActionSummarize, ActionDetectMood, ActionReflect, ActionTrend:
		return true
	}
	return false
}

// Backend performs a single analysis action on a piece of text. Backends
// are tried in order; an error means "try the next tier", so backends must
// never return partial results alongside an error.
type Backend interface {
	Name() string
	Analyze(ctx context.Context, action Action, content string) (string, error)
}

var errUnknownAction = errors.New("analysis: unknown action")

// HeuristicBackend is the terminal tier of the chain. It works entirely
// from keyword tables and never needs the network, so it cannot fail for
// a known action.
type HeuristicBackend struct{}

func (HeuristicBackend) Name() string { return "keywords" }

func (HeuristicBackend) Analyze(_ context.Context, action Action, content string) (string, error) {
	switch action {
	case ActionSummarize:
		return Summarize(content), nil
	case ActionDetectMood:
		mood, _ := KeywordMood(content)
		return mood, nil
	case ActionReflect:
		return Reflect(content), nil
	case ActionTrend:
		return keywordTrend(content), nil
	}
	return "", errUnknownAction
}

// keywordTrend reads a rendered mood history (one "date: mood" line per
// entry) and comments on the dominant mood.
func keywordTrend(content string) string {
	lower := strings.ToLower(content)
	best, bestCount := models.MoodNeutral, 0
	for _, mood := range moodOrder {
		if c := strings.Count(lower, mood); c > bestCount {
			best, bestCount = mood, c
		}
	}
	if bestCount == 0 {
		return "Not enough mood history yet to see a pattern. Keep writing!"
	}
	switch best {
	case models.MoodHappy, models.MoodExcited:
		return "Your recent entries lean positive. Whatever you are doing, it seems to be working!"
	case models.MoodStressed, models.MoodSad:
		return "Your recent entries show some heaviness. Be gentle with yourself and consider what support might help."
	case models.MoodCalm:
		return "Your recent entries read as steady and calm. That balance is worth protecting."
	default:
		return "Your recent moods look fairly balanced, without a single feeling dominating."
	}
}
