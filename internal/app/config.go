package app

import "time"

// Config carries all runtime settings for the service. Precedence is
// flags > environment > config file > built-in defaults.
type Config struct {
	// Addr is the listen address for the HTTP server, e.g. ":8000".
	Addr string

	// DatasetPath points at a curated curriculum JSON file. Empty selects
	// the embedded dataset.
	DatasetPath string

	// LLM connection settings. An empty API key disables the generative
	// tier and the assistants fall back to advisory replies.
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// AssistModel optionally overrides LLMModel for chat, syllabus, gap
	// and resource calls.
	AssistModel string

	GenTimeout    time.Duration
	AssistTimeout time.Duration

	CacheDir    string
	CacheMaxAge time.Duration

	AllowOrigins []string

	Verbose bool
}

// Defaults returns a Config populated with built-in defaults.
func Defaults() Config {
	return Config{
		Addr:          ":8000",
		GenTimeout:    30 * time.Second,
		AssistTimeout: 30 * time.Second,
		CacheDir:      ".curricuforge-cache",
	}
}
