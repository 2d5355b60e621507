// Package config loads the run configuration of the updates command: an
// optional YAML file, defaults for everything it leaves out, and overrides
// from the environment (including a .env file).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/andybalholm/cascadia"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/gaurav-prasanna/updatesheet/core/extract"
	"github.com/gaurav-prasanna/updatesheet/core/fetch"
)

const (
	DefaultAWSFeed   = "https://aws.amazon.com/about-aws/whats-new/recent/feed/"
	DefaultAzureFeed = "https://www.microsoft.com/releasecommunications/api/v2/azure/rss"
	DefaultOutput    = "cloud_updates.xlsx"
	DefaultTestLimit = 3

	DefaultFeedTimeout = 10 * time.Second
)

// Environment variables that override the file.
const (
	EnvUserAgent  = "UPDATESHEET_USER_AGENT"
	EnvOutput     = "UPDATESHEET_OUTPUT"
	EnvChromePath = "UPDATESHEET_CHROME_PATH"
)

// Config is the run configuration of the updates command.
type Config struct {
	Feeds  Feeds  `yaml:"feeds"`
	Output string `yaml:"output"`

	UserAgent   string        `yaml:"user_agent"`
	FeedTimeout time.Duration `yaml:"feed_timeout"`
	PageTimeout time.Duration `yaml:"page_timeout"`

	Render Render `yaml:"render"`

	TestLimit         int    `yaml:"test_limit"`
	DescriptionFormat string `yaml:"description_format"`
}

// Feeds holds the feed URL of each provider.
type Feeds struct {
	AWS   string `yaml:"aws"`
	Azure string `yaml:"azure"`
}

// Render configures the headless render path.
type Render struct {
	Disabled      bool          `yaml:"disabled"`
	ChromePath    string        `yaml:"chrome_path"`
	Wait          time.Duration `yaml:"wait"`
	ReadySelector string        `yaml:"ready_selector"`
	// Rules select the rendered URLs; every fragment of a rule must appear in the URL.
	Rules [][]string `yaml:"rules"`
}

// Load reads the YAML file at path, applies defaults and environment
// overrides, and validates the result. An empty path means defaults only.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, NewConfigError("failed to read config file", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, NewConfigError("failed to parse YAML", err)
		}
	}

	setDefaults(&cfg)
	applyEnv(&cfg, os.LookupEnv)

	if err := validate(&cfg); err != nil {
		return nil, NewConfigError("invalid config", err)
	}
	return &cfg, nil
}

// LoadEnv loads variables from the given .env files, or .env when none are
// named. Missing files are not an error; variables already set win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return NewConfigError("failed to load "+f, err)
		}
	}
	return nil
}

func setDefaults(cfg *Config) {
	if cfg.Feeds.AWS == "" {
		cfg.Feeds.AWS = DefaultAWSFeed
	}
	if cfg.Feeds.Azure == "" {
		cfg.Feeds.Azure = DefaultAzureFeed
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = fetch.DefaultUserAgent
	}
	if cfg.FeedTimeout == 0 {
		cfg.FeedTimeout = DefaultFeedTimeout
	}
	if cfg.PageTimeout == 0 {
		cfg.PageTimeout = fetch.DefaultTimeout
	}
	if cfg.Render.Wait == 0 {
		cfg.Render.Wait = fetch.DefaultRenderWait
	}
	if cfg.Render.ReadySelector == "" {
		cfg.Render.ReadySelector = fetch.DefaultReadySelector
	}
	if cfg.Render.Rules == nil {
		cfg.Render.Rules = fetch.DefaultRenderRules
	}
	if cfg.TestLimit == 0 {
		cfg.TestLimit = DefaultTestLimit
	}
	if cfg.DescriptionFormat == "" {
		cfg.DescriptionFormat = extract.FormatText
	}
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvUserAgent); ok && v != "" {
		cfg.UserAgent = v
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		cfg.Output = v
	}
	if v, ok := lookup(EnvChromePath); ok && v != "" {
		cfg.Render.ChromePath = v
	}
}

func validate(cfg *Config) error {
	for name, u := range map[string]string{"aws": cfg.Feeds.AWS, "azure": cfg.Feeds.Azure} {
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			return fmt.Errorf("%s feed URL must be http(s): %q", name, u)
		}
	}
	if cfg.FeedTimeout < 0 || cfg.PageTimeout < 0 || cfg.Render.Wait < 0 {
		return fmt.Errorf("timeouts must be non-negative")
	}
	if cfg.TestLimit < 0 {
		return fmt.Errorf("test limit must be non-negative")
	}
	switch cfg.DescriptionFormat {
	case extract.FormatText, extract.FormatMarkdown:
	default:
		return fmt.Errorf("invalid description format: %s", cfg.DescriptionFormat)
	}
	if _, err := cascadia.Compile(cfg.Render.ReadySelector); err != nil {
		return fmt.Errorf("invalid ready selector %q: %w", cfg.Render.ReadySelector, err)
	}
	for i, rule := range cfg.Render.Rules {
		if len(rule) == 0 {
			return fmt.Errorf("render rule at index %d is empty", i)
		}
	}
	return nil
}
