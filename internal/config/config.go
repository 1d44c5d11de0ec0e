package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// SourceWeb resolves releases against the release web origin.
	SourceWeb = "web"
	// SourceAPI resolves releases through the GitHub REST API.
	SourceAPI = "api"

	DefaultBaseURL   = "https://github.com/docker/buildx/releases"
	DefaultAPIURL    = "https://api.github.com/"
	DefaultOwner     = "docker"
	DefaultRepo      = "buildx"
	DefaultUserAgent = "setup-buildx"
)

type Config struct {
	Source     string        `mapstructure:"source"`
	BaseURL    string        `mapstructure:"base_url"`
	APIURL     string        `mapstructure:"api_url"`
	Owner      string        `mapstructure:"owner"`
	Repo       string        `mapstructure:"repo"`
	UserAgent  string        `mapstructure:"user_agent"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Retries    uint64        `mapstructure:"retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Source:     SourceWeb,
		BaseURL:    DefaultBaseURL,
		APIURL:     DefaultAPIURL,
		Owner:      DefaultOwner,
		Repo:       DefaultRepo,
		UserAgent:  DefaultUserAgent,
		RetryDelay: time.Second,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Source {
	case SourceWeb:
		if err := validateHTTPURL(c.BaseURL); err != nil {
			return fmt.Errorf("invalid base_url: %w", err)
		}
	case SourceAPI:
		if err := validateHTTPURL(c.APIURL); err != nil {
			return fmt.Errorf("invalid api_url: %w", err)
		}
		if err := ValidateGitHubOwnerRepo(c.Owner, c.Repo); err != nil {
			return fmt.Errorf("invalid github configuration: %w", err)
		}
	default:
		return fmt.Errorf("unknown source %q: expected %q or %q", c.Source, SourceWeb, SourceAPI)
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		return errors.New("user_agent cannot be empty")
	}
	if c.Timeout < 0 {
		return errors.New("timeout cannot be negative")
	}
	if c.RetryDelay < 0 {
		return errors.New("retry_delay cannot be negative")
	}
	return nil
}

func validateHTTPURL(raw string) error {
	if raw == "" {
		return errors.New("url cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}

// ValidateGitHubOwnerRepo validates GitHub owner and repository names (exported for reuse)
func ValidateGitHubOwnerRepo(owner, repo string) error {
	if owner == "" {
		return fmt.Errorf("owner cannot be empty")
	}
	if repo == "" {
		return fmt.Errorf("repository cannot be empty")
	}
	validName := regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9\-_.]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)
	if !validName.MatchString(owner) {
		return fmt.Errorf("invalid owner format: %s", owner)
	}
	if len(owner) > 39 {
		return fmt.Errorf("owner too long: maximum 39 characters")
	}
	if !validName.MatchString(repo) {
		return fmt.Errorf("invalid repository format: %s", repo)
	}
	if len(repo) > 100 {
		return fmt.Errorf("repository too long: maximum 100 characters")
	}
	return nil
}

// LoadConfig reads .buildx-release.yaml from the working directory of fs,
// overlaid with BUILDX_RELEASE_* environment variables.
func LoadConfig(fs afero.Fs) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName(".buildx-release")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("BUILDX_RELEASE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	defaults := DefaultConfig()
	v.SetDefault("source", defaults.Source)
	v.SetDefault("base_url", defaults.BaseURL)
	v.SetDefault("api_url", defaults.APIURL)
	v.SetDefault("owner", defaults.Owner)
	v.SetDefault("repo", defaults.Repo)
	v.SetDefault("user_agent", defaults.UserAgent)
	v.SetDefault("timeout", defaults.Timeout)
	v.SetDefault("retries", defaults.Retries)
	v.SetDefault("retry_delay", defaults.RetryDelay)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
