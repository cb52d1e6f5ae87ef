// Package config loads runtime configuration from environment
// variables and an optional JSON config file. Every value has a safe
// default: with zero configuration the service runs with the local
// heuristic evaluator only and no database.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Evaluator configures the optional external LLM-backed evaluator.
type Evaluator struct {
	Enabled  bool
	Provider string // "ollama", "anthropic", or "mock"
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

// Config holds all runtime settings for the backend.
type Config struct {
	Port          string
	DatabaseURL   string // empty disables persistence
	JWTSecret     string
	RubricVersion string
	MaxPromptLen  int
	QuizPath      string
	ExamplesPath  string
	Evaluator     Evaluator
}

// HTTPAddress returns the listen address for the HTTP server.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// Load reads configuration from an optional .env file, an optional
// config file named by PROMPT_TRAINER_CONFIG, and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("PROMPT_TRAINER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("port", "8080")
	v.SetDefault("database_url", "")
	v.SetDefault("jwt_secret", "prompt-trainer-dev-signing-key")
	v.SetDefault("rubric", "question-v2")
	v.SetDefault("max_prompt_len", 4000)
	v.SetDefault("quiz_path", "data/quiz.json")
	v.SetDefault("examples_path", "data/examples.json")
	v.SetDefault("evaluator.enabled", false)
	v.SetDefault("evaluator.provider", "ollama")
	v.SetDefault("evaluator.base_url", "http://localhost:11434")
	v.SetDefault("evaluator.model", "llama3.1")
	v.SetDefault("evaluator.timeout_sec", 20)

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	timeoutSec := v.GetInt("evaluator.timeout_sec")
	if timeoutSec <= 0 {
		timeoutSec = 20
	}
	maxLen := v.GetInt("max_prompt_len")
	if maxLen <= 0 {
		maxLen = 4000
	}

	return Config{
		Port:          v.GetString("port"),
		DatabaseURL:   v.GetString("database_url"),
		JWTSecret:     v.GetString("jwt_secret"),
		RubricVersion: v.GetString("rubric"),
		MaxPromptLen:  maxLen,
		QuizPath:      v.GetString("quiz_path"),
		ExamplesPath:  v.GetString("examples_path"),
		Evaluator: Evaluator{
			Enabled:  v.GetBool("evaluator.enabled"),
			Provider: v.GetString("evaluator.provider"),
			BaseURL:  v.GetString("evaluator.base_url"),
			Model:    v.GetString("evaluator.model"),
			Timeout:  time.Duration(timeoutSec) * time.Second,
		},
	}, nil
}
