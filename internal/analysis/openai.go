package analysis

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/config"
)

// Per-action system prompts. detect-mood is pinned to a near-zero
// temperature and a tiny completion so the model answers with a bare label.
var systemPrompts = map[Action]string{
	ActionSummarize: "You are a compassionate journaling assistant. Summarize the user's journal entry in under 100 words, " +
		"preserving their voice and the emotional core of what they wrote. Respond with the summary only.",
	ActionDetectMood: "Classify the dominant mood of this journal entry. Respond with exactly one lowercase word from: " +
		"happy, excited, calm, neutral, stressed, sad, angry.",
	ActionReflect: "You are a thoughtful journaling companion. Read the user's entry and respond with one warm, open-ended " +
		"reflection question in under 150 words. Never give advice or diagnoses.",
	ActionTrend: "You are a supportive journaling assistant. The user provides their recent mood history, one entry per line. " +
		"Describe the overall pattern in 2-3 encouraging sentences.",
}

// OpenAIBackend is the remote LLM tier of the analysis chain.
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIBackend builds the remote tier, or returns nil when no API key
// is configured so the chain skips straight to the local tier.
func NewOpenAIBackend(cfg *config.Config) *OpenAIBackend {
	if cfg.OpenAIAPIKey == "" {
		return nil
	}
	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}
	return &OpenAIBackend{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.OpenAIModel,
	}
}

func (b *OpenAIBackend) Name() string { return "remote" }

func (b *OpenAIBackend) Analyze(ctx context.Context, action Action, content string) (string, error) {
	system, ok := systemPrompts[action]
	if !ok {
		return "", errUnknownAction
	}

	maxTokens, temperature := 200, float32(0.7)
	if action == ActionDetectMood {
		maxTokens, temperature = 10, 0.1
	}

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       b.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty completion")
	}
	result := strings.TrimSpace(resp.Choices[0].Message.Content)
	if result == "" {
		return "", errors.New("openai: blank completion")
	}
	return result, nil
}
