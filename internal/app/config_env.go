package app

import (
	"errors"
	"os"
	"strings"
	"time"
)

// LoadEnvFiles reads dotenv files of KEY=VALUE pairs into the process
// environment so flag defaults and ApplyEnvToConfig can pick them up.
// Missing files are skipped; later files win. Comments, blank lines and an
// optional "export " prefix are tolerated, values may be single- or
// double-quoted, and no variable expansion is performed.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		b, err := os.ReadFile(p)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
		for _, line := range strings.Split(string(b), "\n") {
			line = strings.TrimSpace(line)
			line = strings.TrimPrefix(line, "export ")
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			key, val, ok := strings.Cut(line, "=")
			key = strings.TrimSpace(key)
			if !ok || key == "" {
				continue
			}
			_ = os.Setenv(key, unquote(strings.TrimSpace(val)))
		}
	}
	return nil
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Addr == "" {
		cfg.Addr = os.Getenv("ADDR")
	}
	if cfg.DatasetPath == "" {
		cfg.DatasetPath = os.Getenv("DATASET_PATH")
	}

	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = os.Getenv("LLM_BASE_URL")
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = os.Getenv("LLM_MODEL")
	}
	if cfg.LLMAPIKey == "" {
		// Support both LLM_API_KEY and OPENROUTER_API_KEY; prefer LLM_API_KEY
		v := os.Getenv("LLM_API_KEY")
		if v == "" {
			v = os.Getenv("OPENROUTER_API_KEY")
		}
		cfg.LLMAPIKey = v
	}
	if cfg.AssistModel == "" {
		cfg.AssistModel = os.Getenv("ASSIST_MODEL")
	}

	if cfg.CacheDir == "" {
		cfg.CacheDir = os.Getenv("CACHE_DIR")
	}
	if cfg.CacheMaxAge == 0 {
		if s := os.Getenv("CACHE_MAX_AGE"); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.CacheMaxAge = d
			}
		}
	}

	if len(cfg.AllowOrigins) == 0 {
		if v := strings.TrimSpace(os.Getenv("ALLOW_ORIGINS")); v != "" {
			for _, o := range strings.Split(v, ",") {
				if o = strings.TrimSpace(o); o != "" {
					cfg.AllowOrigins = append(cfg.AllowOrigins, o)
				}
			}
		}
	}

	if !cfg.Verbose {
		switch strings.ToLower(strings.TrimSpace(os.Getenv("VERBOSE"))) {
		case "1", "true", "yes", "on":
			cfg.Verbose = true
		}
	}
}
