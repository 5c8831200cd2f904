package analysis

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/config"
)

// modelConfidence is reported for moods detected by an LLM tier, which
// returns a bare label without a score.
const modelConfidence = 0.9

// Analyzer runs analysis actions through an ordered chain of backends,
// falling through on any error: remote LLM first, then a local Ollama
// model, then the keyword heuristics. Degradation is logged at WARN and
// never surfaces to the caller.
type Analyzer struct {
	backends []Backend
	cache    ResultCache
	timeout  time.Duration
}

// NewAnalyzer wires the chain from configuration. Tiers without
// configuration are simply absent; the heuristic tier is always last.
func NewAnalyzer(cfg *config.Config) *Analyzer {
	var backends []Backend
	if remote := NewOpenAIBackend(cfg); remote != nil {
		backends = append(backends, remote)
	}
	if local := NewOllamaBackend(cfg); local != nil {
		backends = append(backends, local)
	}
	backends = append(backends, HeuristicBackend{})

	analyzer := &Analyzer{
		backends: backends,
		timeout:  cfg.AITimeout,
	}
	if cache := NewCache(cfg); cache != nil {
		analyzer.cache = cache
	}
	return analyzer
}

// NewAnalyzerWithBackends builds an analyzer over an explicit chain.
func NewAnalyzerWithBackends(cache ResultCache, backends ...Backend) *Analyzer {
	return &Analyzer{backends: backends, cache: cache, timeout: 60 * time.Second}
}

// Close releases analyzer resources.
func (a *Analyzer) Close() error {
	if a.cache == nil {
		return nil
	}
	return a.cache.Close()
}

// Run executes one action through the chain and returns the result along
// with the name of the tier that produced it. Cache hits report the tier
// that originally produced the value.
func (a *Analyzer) Run(ctx context.Context, action Action, content string) (string, string) {
	if a.cache != nil {
		if hit, ok := a.cache.Get(ctx, action, content); ok {
			return hit.Result, hit.Source
		}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	for _, backend := range a.backends {
		result, err := backend.Analyze(ctx, action, content)
		if err != nil {
			slog.Warn("analysis backend failed, falling through",
				"backend", backend.Name(),
				"action", string(action),
				"error", err,
			)
			continue
		}
		if a.cache != nil {
			a.cache.Set(ctx, action, content, CachedResult{Result: result, Source: backend.Name()})
		}
		return result, backend.Name()
	}

	// Unreachable while the heuristic tier is wired, but the chain must
	// still answer if it is not.
	result, _ := HeuristicBackend{}.Analyze(ctx, action, content)
	return result, "keywords"
}

// DetectMood classifies the entry's mood, folding whatever label the
// winning tier produced onto the mood vocabulary.
func (a *Analyzer) DetectMood(ctx context.Context, text string) MoodResult {
	raw, source := a.Run(ctx, ActionDetectMood, text)
	mood := MapEmotion(raw)

	confidence := modelConfidence
	if source == "keywords" {
		_, confidence = KeywordMood(text)
	}
	return MoodResult{Mood: mood, Confidence: confidence, Source: source}
}

// EntryAnalysis is the full per-entry result persisted onto the entry.
type EntryAnalysis struct {
	Summary    string     `json:"summary"`
	Reflection string     `json:"reflection"`
	Mood       MoodResult `json:"mood"`
	Keywords   []string   `json:"keywords"`
}

// AnalyzeEntry runs the summarize, reflect and detect-mood actions for a
// single entry.
func (a *Analyzer) AnalyzeEntry(ctx context.Context, content string) EntryAnalysis {
	summary, _ := a.Run(ctx, ActionSummarize, content)
	reflection, _ := a.Run(ctx, ActionReflect, content)
	return EntryAnalysis{
		Summary:    summary,
		Reflection: reflection,
		Mood:       a.DetectMood(ctx, content),
		Keywords:   ExtractKeywords(content, 8),
	}
}

// MoodDay is one point of mood history handed to trend analysis.
type MoodDay struct {
	Date time.Time
	Mood string
}

// TrendNarrative renders the mood history as one line per day and asks
// the chain to describe the pattern.
func (a *Analyzer) TrendNarrative(ctx context.Context, history []MoodDay) string {
	if len(history) == 0 {
		return "Not enough mood history yet to see a pattern. Keep writing!"
	}
	lines := make([]string, len(history))
	for i, day := range history {
		lines[i] = day.Date.Format("2006-01-02") + ": " + day.Mood
	}
	result, _ := a.Run(ctx, ActionTrend, strings.Join(lines, "\n"))
	return result
}
