package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Env resolves secrets and defaults from an env file first and the process environment second.
// It never writes to the process environment.
type Env map[string]string

// ReadEnvFile parses a dotenv file. A missing file yields an empty Env.
// Values in single quotes are taken literally; use them for secrets containing $.
func ReadEnvFile(path string) (Env, error) {
	if path == "" {
		return Env{}, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Env{}, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return Env(values), nil
}

// Lookup returns the file value for key, falling back to the process environment.
func (e Env) Lookup(key string) string {
	if key == "" {
		return ""
	}
	if v, ok := e[key]; ok && v != "" {
		return v
	}
	return os.Getenv(key)
}

// List splits a comma-separated value, dropping blanks.
func (e Env) List(key string) []string {
	var out []string
	for _, p := range strings.Split(e.Lookup(key), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
