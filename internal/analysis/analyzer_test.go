package analysis

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/models"
)

type stubBackend struct {
	name   string
	result string
	err    error
	calls  int
}

func (s *stubBackend) Name() string { return s.name }

func (s *stubBackend) Analyze(_ context.Context, _ Action, _ string) (string, error) {
	s.calls++
	return s.result, s.err
}

func TestAnalyzerFallsThroughOnError(t *testing.T) {
	broken := &stubBackend{name: "remote", err: errors.New("connection refused")}
	a := NewAnalyzerWithBackends(nil, broken, HeuristicBackend{})

	result, source := a.Run(context.Background(), ActionDetectMood, "I am stressed and anxious about the deadline")
	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, "keywords", source)
	assert.Equal(t, models.MoodStressed, result)
}

func TestAnalyzerPrefersFirstWorkingBackend(t *testing.T) {
	remote := &stubBackend{name: "remote", result: "joy"}
	a := NewAnalyzerWithBackends(nil, remote, HeuristicBackend{})

	result, source := a.Run(context.Background(), ActionDetectMood, "anything at all here")
	assert.Equal(t, "remote", source)
	assert.Equal(t, "joy", result)
}

func TestDetectMoodMapsModelLabels(t *testing.T) {
	remote := &stubBackend{name: "remote", result: "Joy"}
	a := NewAnalyzerWithBackends(nil, remote, HeuristicBackend{})

	got := a.DetectMood(context.Background(), "something worth classifying here")
	assert.Equal(t, models.MoodExcited, got.Mood)
	assert.Equal(t, "remote", got.Source)
	assert.InDelta(t, modelConfidence, got.Confidence, 0.001)
}

func TestDetectMoodKeywordConfidence(t *testing.T) {
	a := NewAnalyzerWithBackends(nil, HeuristicBackend{})

	got := a.DetectMood(context.Background(), "I feel happy and grateful today")
	assert.Equal(t, models.MoodHappy, got.Mood)
	assert.Equal(t, "keywords", got.Source)
	assert.Greater(t, got.Confidence, 0.0)
	assert.LessOrEqual(t, got.Confidence, 1.0)
}

func TestAnalyzeEntryNeverFails(t *testing.T) {
	broken := &stubBackend{name: "remote", err: errors.New("boom")}
	a := NewAnalyzerWithBackends(nil, broken, HeuristicBackend{})

	got := a.AnalyzeEntry(context.Background(), "Work was difficult today and the deadline pressure kept building all afternoon.")
	assert.NotEmpty(t, got.Summary)
	assert.NotEmpty(t, got.Reflection)
	assert.True(t, models.IsValidMood(got.Mood.Mood))
}

type memoryCache struct {
	values map[string]CachedResult
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string]CachedResult)}
}

func (m *memoryCache) Get(_ context.Context, action Action, content string) (CachedResult, bool) {
	res, ok := m.values[string(action)+":"+content]
	return res, ok
}

func (m *memoryCache) Set(_ context.Context, action Action, content string, res CachedResult) {
	m.values[string(action)+":"+content] = res
}

func (m *memoryCache) Close() error { return nil }

func TestCacheHitSkipsBackends(t *testing.T) {
	remote := &stubBackend{name: "remote", result: "joy"}
	a := NewAnalyzerWithBackends(newMemoryCache(), remote, HeuristicBackend{})
	text := "something worth classifying here"

	first := a.DetectMood(context.Background(), text)
	second := a.DetectMood(context.Background(), text)

	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, "remote", second.Source)
	assert.InDelta(t, modelConfidence, second.Confidence, 0.001)
}

func TestCacheHitKeepsKeywordConfidence(t *testing.T) {
	// A result the keyword tier produced must report its computed
	// confidence on cache hits too, not the model default.
	broken := &stubBackend{name: "remote", err: errors.New("offline")}
	a := NewAnalyzerWithBackends(newMemoryCache(), broken, HeuristicBackend{})
	text := "happy the meeting ran long and the train was delayed and nothing else " +
		"of note occurred during an otherwise unremarkable stretch of hours today"

	first := a.DetectMood(context.Background(), text)
	second := a.DetectMood(context.Background(), text)

	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, "keywords", first.Source)
	assert.Equal(t, "keywords", second.Source)
	assert.Greater(t, math.Abs(modelConfidence-second.Confidence), 0.001)
	assert.InDelta(t, first.Confidence, second.Confidence, 0.001)
}

func TestTrendNarrative(t *testing.T) {
	a := NewAnalyzerWithBackends(nil, HeuristicBackend{})

	t.Run("empty history", func(t *testing.T) {
		got := a.TrendNarrative(context.Background(), nil)
		assert.Contains(t, got, "Keep writing")
	})

	t.Run("positive history", func(t *testing.T) {
		day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
		history := []MoodDay{
			{Date: day, Mood: models.MoodHappy},
			{Date: day.AddDate(0, 0, 1), Mood: models.MoodHappy},
			{Date: day.AddDate(0, 0, 2), Mood: models.MoodExcited},
		}
		got := a.TrendNarrative(context.Background(), history)
		assert.Contains(t, got, "positive")
	})
}

func TestValidAction(t *testing.T) {
	assert.True(t, ValidAction(ActionSummarize))
	assert.True(t, ValidAction(ActionDetectMood))
	assert.True(t, ValidAction(ActionReflect))
	assert.True(t, ValidAction(ActionTrend))
	assert.False(t, ValidAction("translate"))
	assert.False(t, ValidAction(""))
}

func TestCheckContent(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"valid", "Today was a genuinely good day", nil},
		{"too short", "short", ErrContentTooShort},
		{"too few words", "abcdefghijklmnop", ErrTooFewWords},
		{"mostly digits", "123456 789012 345678", ErrNotEnoughText},
		{"whitespace only", "          ", ErrContentTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckContent(tt.text)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
