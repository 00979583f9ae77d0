package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

func (g *implGemini) Model() string { return g.model }

// Generate sends prompt to Gemini and returns the concatenated text parts.
// Rotates API keys on 429 / quota errors.
func (g *implGemini) Generate(ctx context.Context, prompt string) (string, error) {
	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		idx, key := g.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
		if err != nil {
			if isQuotaError(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if text := responseText(result); text != "" {
			return text, nil
		}
		return "", errors.New("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func (g *implGemini) key() (int, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentKey, g.apiKeys[g.currentKey]
}

func (g *implGemini) rotateKey() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}
