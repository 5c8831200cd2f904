package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/config"
)

// OllamaBackend is the local model tier of the analysis chain, talking to
// an Ollama server over its HTTP API. Availability is probed once, lazily,
// on first use; if the probe fails the backend stays unavailable for the
// process lifetime.
type OllamaBackend struct {
	baseURL string
	model   string
	client  *http.Client

	probeOnce sync.Once
	probeErr  error
}

func NewOllamaBackend(cfg *config.Config) *OllamaBackend {
	if cfg.OllamaURL == "" {
		return nil
	}
	return &OllamaBackend{
		baseURL: strings.TrimRight(cfg.OllamaURL, "/"),
		model:   cfg.OllamaModel,
		client:  &http.Client{Timeout: cfg.AITimeout},
	}
}

func (b *OllamaBackend) Name() string { return "local" }

func (b *OllamaBackend) available(ctx context.Context) error {
	b.probeOnce.Do(func() {
		probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()

		req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, b.baseURL+"/api/tags", nil)
		if err != nil {
			b.probeErr = err
			return
		}
		resp, err := b.client.Do(req)
		if err != nil {
			b.probeErr = fmt.Errorf("ollama unreachable at %s: %w", b.baseURL, err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			b.probeErr = fmt.Errorf("ollama probe returned %d", resp.StatusCode)
		}
	})
	return b.probeErr
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

func (b *OllamaBackend) Analyze(ctx context.Context, action Action, content string) (string, error) {
	system, ok := systemPrompts[action]
	if !ok {
		return "", errUnknownAction
	}
	if err := b.available(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(ollamaGenerateRequest{
		Model:  b.model,
		Prompt: system + "\n\n" + content,
		Stream: false,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("ollama generate returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}
	result := strings.TrimSpace(parsed.Response)
	if result == "" {
		return "", fmt.Errorf("ollama returned empty response")
	}
	return result, nil
}
