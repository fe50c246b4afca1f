// Package config loads the application configuration: the ordered plugin
// list, drill sizing, the syllabus source, and the learner profile id.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
)

// Config is the full application configuration.
type Config struct {
	// Plugins is the ordered list of question factory identifiers loaded
	// into the registry at startup.
	Plugins []string `json:"plugins"`

	// QuestionsPerSet is how many concepts are sampled per test set.
	QuestionsPerSet int `json:"questions_per_set"`

	// OptionsPerQuestion is the option count per question, answer included.
	OptionsPerQuestion int `json:"options_per_question"`

	// Syllabus selects the concept source: "builtin" or a lexicon file path.
	Syllabus string `json:"syllabus"`

	// ProfileID identifies the local learner. Minted on first run.
	ProfileID string `json:"profile_id"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Plugins:            []string{"reading", "surface", "gloss"},
		QuestionsPerSet:    10,
		OptionsPerQuestion: 4,
		Syllabus:           "builtin",
	}
}

// DefaultPath resolves the config file path in priority order:
// 1. KANJIDRILL_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/kanjidrill/config.json
// 3. ~/.config/kanjidrill/config.json
func DefaultPath() (string, error) {
	if p := os.Getenv("KANJIDRILL_CONFIG"); p != "" {
		return p, nil
	}

	confHome := os.Getenv("XDG_CONFIG_HOME")
	if confHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		confHome = filepath.Join(home, ".config")
	}
	return filepath.Join(confHome, "kanjidrill", "config.json"), nil
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist. The raw payload is validated against the embedded
// JSON schema before unmarshalling, then env overrides are applied and a
// profile id is minted if missing.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// First run: defaults.
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := validateSchema(raw); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.ProfileID == "" {
		cfg.ProfileID = uuid.New().String()
		if err := Save(path, cfg); err != nil {
			return Config{}, fmt.Errorf("persist profile id: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// applyEnv overlays KANJIDRILL_* environment overrides.
func applyEnv(cfg *Config) {
	if v := os.Getenv("KANJIDRILL_QUESTIONS_PER_SET"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.QuestionsPerSet = n
		}
	}
	if v := os.Getenv("KANJIDRILL_OPTIONS_PER_QUESTION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.OptionsPerQuestion = n
		}
	}
	if v := os.Getenv("KANJIDRILL_SYLLABUS"); v != "" {
		cfg.Syllabus = v
	}
}

// Validate checks the semantic constraints the schema cannot express
// relative to each other.
func (c Config) Validate() error {
	if len(c.Plugins) == 0 {
		return errors.New("config: at least one plugin must be configured")
	}
	if c.QuestionsPerSet < 1 {
		return errors.New("config: questions_per_set must be at least 1")
	}
	if c.OptionsPerQuestion < 2 {
		return errors.New("config: options_per_question must be at least 2")
	}
	if c.Syllabus == "" {
		return errors.New("config: syllabus must be set")
	}
	return nil
}
