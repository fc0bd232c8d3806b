package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode     Mode   `yaml:"mode"`
	HTTPAddr string `yaml:"http_addr"`

	CORSOrigins []string `yaml:"cors_origins"`

	// QuizIDSecret signs quiz identifiers.
	QuizIDSecret string `yaml:"quiz_id_secret"`
	// BankPath points at a YAML question bank; empty means the built-in bank.
	BankPath string `yaml:"bank_path"`

	RequestTimeout time.Duration `yaml:"request_timeout"`
}

func defaults() Config {
	return Config{
		Mode:           ModeOffline,
		HTTPAddr:       ":8787",
		CORSOrigins:    []string{"http://localhost:3000", "http://localhost:3001"},
		QuizIDSecret:   "quiz-dev-secret",
		RequestTimeout: 30 * time.Second,
	}
}

// FromEnv builds a Config from defaults and environment variables.
func FromEnv() Config {
	cfg := defaults()
	applyEnv(&cfg)
	return cfg
}

// Load builds a Config from defaults, then the YAML file at path (if any),
// then environment variables. Environment wins.
func Load(path string) (Config, error) {
	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	if cfg.Mode != ModeOffline && cfg.Mode != ModeOnline {
		return cfg, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	return cfg, nil
}

// DevErrors reports whether internal error details may be sent to clients.
func (c Config) DevErrors() bool { return c.Mode != ModeOnline }

func applyEnv(cfg *Config) {
	cfg.Mode = Mode(envOr("MODE", string(cfg.Mode)))
	cfg.HTTPAddr = envOr("HTTP_ADDR", cfg.HTTPAddr)
	cfg.CORSOrigins = csvOr("CORS_ORIGINS", cfg.CORSOrigins)
	cfg.QuizIDSecret = envOr("QUIZ_ID_SECRET", cfg.QuizIDSecret)
	cfg.BankPath = envOr("QUIZ_BANK_PATH", cfg.BankPath)
	cfg.RequestTimeout = durationOr("REQUEST_TIMEOUT", cfg.RequestTimeout)
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func durationOr(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func csvOr(k string, def []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
