package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_addr": ":9090",
		"allowed_sender": "sagar@example.com",
		"store_path": "data/coach.db",
		"llm": {"provider": "openai", "model": "gpt-5", "api_key": "sk-test"}
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "sagar@example.com", cfg.AllowedSender)
	require.NotNil(t, cfg.LLM)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Nil(t, cfg.SearchLLM)
}

func TestLoadResolvesKeyFromEnv(t *testing.T) {
	t.Setenv("COACH_TEST_KEY", "sk-from-env")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"llm": {"provider": "openai", "model": "gpt-5", "api_key_env": "COACH_TEST_KEY"}
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-from-env", cfg.LLM.APIKey)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
