package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskIntent    TaskType = "intent"
	TaskBreakdown TaskType = "breakdown"
	TaskRecipe    TaskType = "recipe"
	TaskSchedule  TaskType = "schedule"
	TaskGeneral   TaskType = "general"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Endpoint   string
	APIKey     string
	Model      string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The API key has
// no default; callers must supply one.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://api.openai.com/v1",
		Model:      "gpt-4o-mini",
		TimeoutMs:  30000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskIntent:    {Temperature: 0.3, MaxTokens: 512},
			TaskBreakdown: {Temperature: 0.5, MaxTokens: 1024},
			TaskRecipe:    {Temperature: 0.7, MaxTokens: 2048},
			TaskSchedule:  {Temperature: 0.5, MaxTokens: 1024},
			TaskGeneral:   {Temperature: 0.7, MaxTokens: 1024},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values. OPENAI_API_KEY is
// honored for compatibility with the usual OpenAI tooling.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("CONCIERGE_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("CONCIERGE_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("CONCIERGE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("CONCIERGE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("CONCIERGE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("CONCIERGE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
