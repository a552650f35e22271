package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the coach needs at startup.
type Config struct {
	ServerAddr    string     `json:"server_addr,omitempty"`
	AllowedSender string     `json:"allowed_sender,omitempty"`
	StorePath     string     `json:"store_path,omitempty"`
	LogLevel      string     `json:"log_level,omitempty"`
	LLM           *LLMConfig `json:"llm,omitempty"`
	SearchLLM     *LLMConfig `json:"search_llm,omitempty"`
}

// LLMConfig configures one model endpoint. APIKeyEnv, when set, names an
// environment variable that overrides APIKey.
type LLMConfig struct {
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
	APIKey    string `json:"api_key,omitempty"`
	APIKeyEnv string `json:"api_key_env,omitempty"`
	BaseURL   string `json:"base_url,omitempty"`
}

// Load reads a JSON config file. A .env file next to the process, if any,
// is loaded first so api_key_env references resolve.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.LLM.resolveKey()
	cfg.SearchLLM.resolveKey()
	return cfg, nil
}

func (c *LLMConfig) resolveKey() {
	if c == nil || c.APIKeyEnv == "" {
		return
	}
	if v := os.Getenv(c.APIKeyEnv); v != "" {
		c.APIKey = v
	}
}
