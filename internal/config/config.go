package config

import (
	"fmt"
	"strings"
)

type Config struct {
	Transcription TranscriptionConfig `yaml:"transcription"`
	LLM           LLMConfig           `yaml:"llm"`
	Download      DownloadConfig      `yaml:"download"`
	Paths         PathsConfig         `yaml:"paths"`
	Steps         StepsConfig         `yaml:"steps"`
	SMTP          SMTPConfig          `yaml:"smtp"`
	Logging       LoggingConfig       `yaml:"logging"`
	Session       SessionConfig       `yaml:"session"`
	EnvFile       string              `yaml:"env_file"`
}

type TranscriptionConfig struct {
	Backend string        `yaml:"backend"` // whisper | openai
	Whisper WhisperConfig `yaml:"whisper"`
	OpenAI  OpenAIConfig  `yaml:"openai"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	// FFmpegPath converts every input to the 16 kHz mono WAV whisper.cpp reads.
	FFmpegPath string `yaml:"ffmpeg_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type OpenAIConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
	Timeout   string `yaml:"timeout"`
}

type LLMConfig struct {
	Provider string       `yaml:"provider"` // gemini | openai
	Model    string       `yaml:"model"`
	Gemini   GeminiConfig `yaml:"gemini"`
	OpenAI   OpenAIConfig `yaml:"openai"`
}

type GeminiConfig struct {
	// APIKeysEnv names an env var holding one or more comma-separated keys.
	APIKeysEnv string `yaml:"api_keys_env"`
}

type DownloadConfig struct {
	BinaryPath  string `yaml:"binary_path"`
	AudioFormat string `yaml:"audio_format"`
}

type PathsConfig struct {
	Downloads string `yaml:"downloads"`
	Uploads   string `yaml:"uploads"`
	Inbox     string `yaml:"inbox"`
	Output    string `yaml:"output"`
	StateDB   string `yaml:"state_db"`
}

// StepsConfig holds the default toggles used when a flag is not given.
type StepsConfig struct {
	Summarize bool `yaml:"summarize"`
	Actions   bool `yaml:"actions"`
	Email     bool `yaml:"email"`
	Send      bool `yaml:"send"`
}

type SMTPConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	SenderEnv   string `yaml:"sender_env"`
	ReceiverEnv string `yaml:"receiver_env"`
	PasswordEnv string `yaml:"password_env"`
}

type LoggingConfig struct {
	Level   string `yaml:"level"`
	Verbose bool   `yaml:"verbose"`
}

type SessionConfig struct {
	Name string `yaml:"name"`
}

// Validate rejects unknown backends and fills in defaults for everything optional.
func (c *Config) Validate() error {
	c.Transcription.Backend = strings.ToLower(c.Transcription.Backend)
	switch c.Transcription.Backend {
	case "":
		c.Transcription.Backend = "whisper"
	case "whisper", "openai":
	default:
		return fmt.Errorf("transcription.backend %q is not supported", c.Transcription.Backend)
	}
	if c.Transcription.Backend == "whisper" && c.Transcription.Whisper.ModelPath == "" {
		return fmt.Errorf("transcription.whisper.model_path is required")
	}

	c.LLM.Provider = strings.ToLower(c.LLM.Provider)
	switch c.LLM.Provider {
	case "":
		c.LLM.Provider = "gemini"
	case "gemini", "openai":
	default:
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}

	w := &c.Transcription.Whisper
	if w.BinaryPath == "" {
		w.BinaryPath = "whisper-cli"
	}
	if w.FFmpegPath == "" {
		w.FFmpegPath = "ffmpeg"
	}
	if w.Language == "" {
		w.Language = "en"
	}
	if w.Threads == 0 {
		w.Threads = 8
	}

	o := &c.Transcription.OpenAI
	if o.Endpoint == "" {
		o.Endpoint = "https://api.openai.com/v1"
	}
	if o.Model == "" {
		o.Model = "gpt-4o-mini-transcribe"
	}
	if o.APIKeyEnv == "" {
		o.APIKeyEnv = "OPENAI_API_KEY"
	}
	if o.Timeout == "" {
		o.Timeout = "60m"
	}

	if c.LLM.Model == "" {
		if c.LLM.Provider == "gemini" {
			c.LLM.Model = "gemini-2.5-flash"
		} else {
			c.LLM.Model = "gpt-4o-mini"
		}
	}
	if c.LLM.Gemini.APIKeysEnv == "" {
		c.LLM.Gemini.APIKeysEnv = "GEMINI_API_KEYS"
	}
	if c.LLM.OpenAI.Endpoint == "" {
		c.LLM.OpenAI.Endpoint = "https://api.openai.com/v1"
	}
	if c.LLM.OpenAI.APIKeyEnv == "" {
		c.LLM.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
	}
	if c.LLM.OpenAI.Timeout == "" {
		c.LLM.OpenAI.Timeout = "300s"
	}

	if c.Download.BinaryPath == "" {
		c.Download.BinaryPath = "yt-dlp"
	}
	if c.Download.AudioFormat == "" {
		c.Download.AudioFormat = "mp3"
	}

	if c.Paths.Downloads == "" {
		c.Paths.Downloads = "my_audio_folder"
	}
	if c.Paths.Uploads == "" {
		c.Paths.Uploads = "uploads"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.StateDB == "" {
		c.Paths.StateDB = "data/state.db"
	}

	if c.SMTP.Host == "" {
		c.SMTP.Host = "smtp.gmail.com"
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}
	if c.SMTP.SenderEnv == "" {
		c.SMTP.SenderEnv = "SMTP_EMAIL"
	}
	if c.SMTP.ReceiverEnv == "" {
		c.SMTP.ReceiverEnv = "SMTP_RECEIVER"
	}
	if c.SMTP.PasswordEnv == "" {
		c.SMTP.PasswordEnv = "SMTP_PASSWORD"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Session.Name == "" {
		c.Session.Name = "default"
	}
	if c.EnvFile == "" {
		c.EnvFile = ".env"
	}

	return nil
}
