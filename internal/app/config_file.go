package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally to flags and env vars.
type FileConfig struct {
	Addr    string `yaml:"addr" json:"addr"`
	Dataset string `yaml:"dataset" json:"dataset"`

	LLM struct {
		BaseURL     string `yaml:"base" json:"base"`
		Model       string `yaml:"model" json:"model"`
		APIKey      string `yaml:"key" json:"key"`
		AssistModel string `yaml:"assistModel" json:"assistModel"`
	} `yaml:"llm" json:"llm"`

	Timeouts struct {
		Generate time.Duration `yaml:"generate" json:"generate"`
		Assist   time.Duration `yaml:"assist" json:"assist"`
	} `yaml:"timeouts" json:"timeouts"`

	Cache struct {
		Dir    string        `yaml:"dir" json:"dir"`
		MaxAge time.Duration `yaml:"maxAge" json:"maxAge"`
	} `yaml:"cache" json:"cache"`

	AllowOrigins []string `yaml:"allowOrigins" json:"allowOrigins"`
	Verbose      bool     `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for fields still
// at their defaults, so explicit flags and env keep precedence.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	def := Defaults()

	if (cfg.Addr == "" || cfg.Addr == def.Addr) && fc.Addr != "" {
		cfg.Addr = fc.Addr
	}
	if cfg.DatasetPath == "" && fc.Dataset != "" {
		cfg.DatasetPath = fc.Dataset
	}

	if cfg.LLMBaseURL == "" && fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if cfg.LLMModel == "" && fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if cfg.LLMAPIKey == "" && fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if cfg.AssistModel == "" && fc.LLM.AssistModel != "" {
		cfg.AssistModel = fc.LLM.AssistModel
	}

	if (cfg.GenTimeout == 0 || cfg.GenTimeout == def.GenTimeout) && fc.Timeouts.Generate > 0 {
		cfg.GenTimeout = fc.Timeouts.Generate
	}
	if (cfg.AssistTimeout == 0 || cfg.AssistTimeout == def.AssistTimeout) && fc.Timeouts.Assist > 0 {
		cfg.AssistTimeout = fc.Timeouts.Assist
	}

	if (cfg.CacheDir == "" || cfg.CacheDir == def.CacheDir) && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge > 0 {
		cfg.CacheMaxAge = fc.Cache.MaxAge
	}

	if len(cfg.AllowOrigins) == 0 && len(fc.AllowOrigins) > 0 {
		cfg.AllowOrigins = append([]string{}, fc.AllowOrigins...)
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal validation for required settings. The
// service runs without LLM settings (generative tier disabled), but a key
// without a model is a misconfiguration.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.Addr) == "" {
		return errors.New("config: addr is required")
	}
	if cfg.LLMAPIKey != "" && strings.TrimSpace(cfg.LLMModel) == "" {
		return errors.New("config: llm.model is required when an API key is set (or set LLM_MODEL)")
	}
	if cfg.GenTimeout < 0 || cfg.AssistTimeout < 0 || cfg.CacheMaxAge < 0 {
		return errors.New("config: negative durations are not allowed")
	}
	return nil
}
