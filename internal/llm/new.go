package llm

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/nguyentantai21042004/meeting-flow/internal/config"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
	openai "github.com/sashabaranov/go-openai"
)

type implGemini struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

type implOpenAI struct {
	model  string
	client *openai.Client
}

// New builds the client for cfg.LLM.Provider, resolving keys through env
func New(cfg *config.Config, env config.Env, log logger.Logger) (Client, error) {
	switch cfg.LLM.Provider {
	case "gemini":
		keys := env.List(cfg.LLM.Gemini.APIKeysEnv)
		if len(keys) == 0 {
			return nil, fmt.Errorf("gemini provider requires %s", cfg.LLM.Gemini.APIKeysEnv)
		}
		return NewGemini(keys, cfg.LLM.Model, log), nil
	case "openai":
		o := cfg.LLM.OpenAI
		key := env.Lookup(o.APIKeyEnv)
		if key == "" {
			return nil, fmt.Errorf("openai provider requires %s", o.APIKeyEnv)
		}
		timeout, err := time.ParseDuration(o.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse llm.openai.timeout: %w", err)
		}
		return NewOpenAI(o.Endpoint, cfg.LLM.Model, key, &http.Client{Timeout: timeout}), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLM.Provider)
	}
}

// NewGemini creates a Client that rotates through the supplied Gemini API keys.
func NewGemini(apiKeys []string, model string, log logger.Logger) Client {
	return &implGemini{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}

// NewOpenAI creates a Client for an OpenAI-compatible chat/completions endpoint.
func NewOpenAI(endpoint, model, apiKey string, hc *http.Client) Client {
	if hc == nil {
		hc = &http.Client{Timeout: 300 * time.Second}
	}
	oc := openai.DefaultConfig(apiKey)
	oc.BaseURL = strings.TrimRight(endpoint, "/")
	oc.HTTPClient = hc
	return &implOpenAI{model: model, client: openai.NewClientWithConfig(oc)}
}
