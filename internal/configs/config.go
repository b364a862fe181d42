package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/followscraper/internal/errors"
)

// DefaultFile is the configuration file used when --config is not given.
const DefaultFile = "FollowingsAndFollowerScraper.json"

// Config is the tool configuration document.
type Config struct {
	Log     LogConfig     `json:"LOG" toml:"LOG" yaml:"LOG"`
	Twitter TwitterConfig `json:"TWITTER" toml:"TWITTER" yaml:"TWITTER"`
	Output  OutputConfig  `json:"OUTPUT" toml:"OUTPUT" yaml:"OUTPUT"`

	// Path is the absolute path the document was loaded from.
	Path string `json:"-" toml:"-" yaml:"-"`
}

type LogConfig struct {
	Level  string `json:"LEVEL" toml:"LEVEL" yaml:"LEVEL"`
	File   string `json:"FILE" toml:"FILE" yaml:"FILE"`
	Stdout string `json:"STDOUT" toml:"STDOUT" yaml:"STDOUT"`
}

type TwitterConfig struct {
	ConsumerKey    string `json:"CONSUMER_KEY" toml:"CONSUMER_KEY" yaml:"CONSUMER_KEY"`
	ConsumerSecret string `json:"CONSUMER_SEC_KEY" toml:"CONSUMER_SEC_KEY" yaml:"CONSUMER_SEC_KEY"`
	AccessToken    string `json:"ACCESS_TOKEN" toml:"ACCESS_TOKEN" yaml:"ACCESS_TOKEN"`
	AccessSecret   string `json:"ACCESS_SEC_TOKEN" toml:"ACCESS_SEC_TOKEN" yaml:"ACCESS_SEC_TOKEN"`
	BearerToken    string `json:"BEARER_TOKEN,omitempty" toml:"BEARER_TOKEN,omitempty" yaml:"BEARER_TOKEN,omitempty"`
	ID             string `json:"ID" toml:"ID" yaml:"ID"`
}

type OutputConfig struct {
	Followers  string `json:"FOLLOWERS" toml:"FOLLOWERS" yaml:"FOLLOWERS"`
	Followings string `json:"FOLLOWINGS" toml:"FOLLOWINGS" yaml:"FOLLOWINGS"`
}

// StdoutEnabled interprets LOG.STDOUT. ON, TRUE, YES and 1 are accepted.
func (c LogConfig) StdoutEnabled() bool {
	switch strings.ToUpper(strings.TrimSpace(c.Stdout)) {
	case "ON", "TRUE", "YES", "1":
		return true
	}
	return false
}

// Load reads the configuration at path. charset names the file's character
// encoding; "" means UTF-8. Values from FOLLOWSCRAPER_* environment variables
// and a .env file next to the configuration override the document.
func Load(path, charset string) (*Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if os.IsNotExist(err) || (err == nil && !info.Mode().IsRegular()) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrConfigNotFound, abs)
	}
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", abs, err)
	}

	raw, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", abs, err)
	}

	data, err := decodeCharset(raw, charset)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", abs, err)
	}

	config := &Config{Path: abs}
	if err := unmarshal(abs, data, config); err != nil {
		return nil, err
	}

	if err := ApplyEnv(config, filepath.Dir(abs)); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the fields the lifecycle runner needs. LOG.FILE may be
// empty, in which case the logger's default file is used.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Log.Level) == "" {
		return fmt.Errorf("%w: LOG.LEVEL", kerrors.ErrConfigFieldMissing)
	}
	if strings.TrimSpace(c.Log.Stdout) == "" {
		return fmt.Errorf("%w: LOG.STDOUT", kerrors.ErrConfigFieldMissing)
	}
	return nil
}

// Template returns a configuration with placeholder values, used by
// "followscraper config init".
func Template() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "INFO",
			File:   "./log/followscraper_%DATE%.log",
			Stdout: "ON",
		},
		Twitter: TwitterConfig{
			ConsumerKey:    "<consumer key>",
			ConsumerSecret: "<consumer secret>",
			AccessToken:    "<access token>",
			AccessSecret:   "<access token secret>",
			ID:             "<screen name or user id>",
		},
		Output: OutputConfig{
			Followers:  "./followers.csv",
			Followings: "./followings.csv",
		},
	}
}
