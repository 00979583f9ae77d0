package transcribe

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-flow/internal/config"
	"github.com/nguyentantai21042004/meeting-flow/internal/logger"
	"github.com/nguyentantai21042004/meeting-flow/pkg/executor"
	openai "github.com/sashabaranov/go-openai"
)

type implWhisper struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

type implOpenAI struct {
	model  string
	client *openai.Client
	logger logger.Logger
}

// New picks the backend named in cfg.Transcription.Backend
func New(cfg *config.Config, exec executor.Executor, env config.Env, log logger.Logger) (Transcriber, error) {
	switch cfg.Transcription.Backend {
	case "whisper":
		return NewWhisper(cfg.Transcription.Whisper, exec, log), nil
	case "openai":
		o := cfg.Transcription.OpenAI
		key := env.Lookup(o.APIKeyEnv)
		if key == "" {
			return nil, fmt.Errorf("openai transcription requires %s", o.APIKeyEnv)
		}
		timeout, err := time.ParseDuration(o.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse transcription.openai.timeout: %w", err)
		}
		return NewOpenAI(o.Endpoint, o.Model, key, &http.Client{Timeout: timeout}, log), nil
	default:
		return nil, fmt.Errorf("unknown transcription backend: %s", cfg.Transcription.Backend)
	}
}

// NewWhisper creates a Transcriber backed by the whisper.cpp CLI
func NewWhisper(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implWhisper{cfg: cfg, executor: exec, logger: log}
}

// NewOpenAI creates a Transcriber backed by an OpenAI-compatible audio/transcriptions endpoint
func NewOpenAI(endpoint, model, apiKey string, hc *http.Client, log logger.Logger) Transcriber {
	if hc == nil {
		hc = &http.Client{Timeout: 60 * time.Minute}
	}
	oc := openai.DefaultConfig(apiKey)
	oc.BaseURL = strings.TrimRight(endpoint, "/")
	oc.HTTPClient = hc
	return &implOpenAI{model: model, client: openai.NewClientWithConfig(oc), logger: log}
}
