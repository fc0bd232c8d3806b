package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"MODE", "HTTP_ADDR", "CORS_ORIGINS", "QUIZ_ID_SECRET", "QUIZ_BANK_PATH", "REQUEST_TIMEOUT"} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := FromEnv()
	assert.Equal(t, ModeOffline, cfg.Mode)
	assert.Equal(t, ":8787", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.BankPath)
	assert.True(t, cfg.DevErrors())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MODE", "online")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	cfg := FromEnv()
	assert.Equal(t, ModeOnline, cfg.Mode)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.DevErrors())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "quizd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mode: online
http_addr: ":7000"
bank_path: /etc/quiz/bank.yaml
request_timeout: 10s
cors_origins:
  - https://quiz.example
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ModeOnline, cfg.Mode)
	assert.Equal(t, ":7000", cfg.HTTPAddr)
	assert.Equal(t, "/etc/quiz/bank.yaml", cfg.BankPath)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"https://quiz.example"}, cfg.CORSOrigins)
	assert.Equal(t, "quiz-dev-secret", cfg.QuizIDSecret)

	t.Setenv("HTTP_ADDR", ":7001")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7001", cfg.HTTPAddr)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: [unterminated"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)

	t.Setenv("MODE", "staging")
	_, err = Load("")
	assert.Error(t, err)
}
