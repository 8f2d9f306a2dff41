package contract

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/statscard/statscard/schema"
)

// Default values for configuration.
const (
	DefaultRenderDir = "generated"
	DefaultTimeout   = 2 * time.Minute
	MaxTimeout       = 30 * time.Minute
)

// DateFormat is the calendar date representation used in output and storage.
const DateFormat = "2006-01-02"

// Config holds the runtime configuration for a statscard run.
// This struct is the final, validated config; every core entry point
// receives it as an explicit immutable value.
type Config struct {
	Username string
	Token    string

	ExcludeRepos map[string]struct{} // Lowercased "owner/name" identities
	ExcludeLangs map[string]struct{} // Lowercased language names
	ExcludeForks bool

	ContribThresholds []int
	StarThresholds    []int
	RepoThresholds    []int

	Output     schema.OutputMode
	OutputFile string
	RenderDir  string

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	Timeout   time.Duration
	UseEmojis bool
	UseColors bool
	Width     int // Terminal width override (0 = auto-detect)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	User             string `mapstructure:"user"`
	Token            string `mapstructure:"token"`
	ExcludeRepos     string `mapstructure:"exclude-repos"`
	ExcludeLangs     string `mapstructure:"exclude-langs"`
	ExcludeForks     bool   `mapstructure:"exclude-forks"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	RenderDir        string `mapstructure:"render-dir"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Timeout          string `mapstructure:"timeout"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`
	Width            int    `mapstructure:"width"`

	ContribThresholds []int `mapstructure:"contrib-thresholds"`
	StarThresholds    []int `mapstructure:"star-thresholds"`
	RepoThresholds    []int `mapstructure:"repo-thresholds"`
}

// ProcessAndValidate performs all complex parsing and validation on the raw
// inputs and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if input.User == "" {
		return fmt.Errorf("a GitHub username is required (--user or STATSCARD_USER)")
	}
	cfg.Username = input.User
	cfg.Token = input.Token

	cfg.ExcludeRepos = ParseExcludeSet(input.ExcludeRepos)
	cfg.ExcludeLangs = ParseExcludeSet(input.ExcludeLangs)
	cfg.ExcludeForks = input.ExcludeForks

	output := schema.OutputMode(input.Output)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	cfg.RenderDir = input.RenderDir
	if cfg.RenderDir == "" {
		cfg.RenderDir = DefaultRenderDir
	}

	backend := schema.DatabaseBackend(input.HistoryBackend)
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid history backend %q", input.HistoryBackend)
	}
	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = input.HistoryDBConnect

	timeout := DefaultTimeout
	if input.Timeout != "" {
		parsed, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", input.Timeout, err)
		}
		timeout = parsed
	}
	if timeout <= 0 || timeout > MaxTimeout {
		return fmt.Errorf("timeout must be between 0 and %v", MaxTimeout)
	}
	cfg.Timeout = timeout

	for _, ladder := range []struct {
		name   string
		raw    []int
		target *[]int
		def    []int
	}{
		{"contrib-thresholds", input.ContribThresholds, &cfg.ContribThresholds, schema.DefaultContribThresholds},
		{"star-thresholds", input.StarThresholds, &cfg.StarThresholds, schema.DefaultStarThresholds},
		{"repo-thresholds", input.RepoThresholds, &cfg.RepoThresholds, schema.DefaultRepoThresholds},
	} {
		values := ladder.raw
		if len(values) == 0 {
			values = ladder.def
		}
		if err := checkAscending(ladder.name, values); err != nil {
			return err
		}
		*ladder.target = slices.Clone(values)
	}

	cfg.UseEmojis = parseYesNo(input.Emoji, true)
	cfg.UseColors = parseYesNo(input.Color, true)
	cfg.Width = input.Width

	return nil
}

// checkAscending rejects threshold ladders that are empty-valued, unordered
// or contain duplicates, since milestone detection assumes a strictly
// ascending sequence.
func checkAscending(name string, values []int) error {
	for i, v := range values {
		if v <= 0 {
			return fmt.Errorf("%s: threshold %d must be positive", name, v)
		}
		if i > 0 && v <= values[i-1] {
			return fmt.Errorf("%s: thresholds must be strictly ascending", name)
		}
	}
	return nil
}

// parseYesNo interprets yes/no style flag values with a fallback default.
func parseYesNo(value string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "on", "1":
		return true
	case "no", "false", "off", "0":
		return false
	default:
		return def
	}
}

// RepoExcluded reports whether a repository identity is in the exclusion set.
func (c *Config) RepoExcluded(fullName string) bool {
	_, ok := c.ExcludeRepos[strings.ToLower(fullName)]
	return ok
}

// LangExcluded reports whether a language name is in the exclusion set.
func (c *Config) LangExcluded(name string) bool {
	_, ok := c.ExcludeLangs[strings.ToLower(name)]
	return ok
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.ExcludeRepos != nil {
		clone.ExcludeRepos = make(map[string]struct{}, len(c.ExcludeRepos))
		maps.Copy(clone.ExcludeRepos, c.ExcludeRepos)
	}
	if c.ExcludeLangs != nil {
		clone.ExcludeLangs = make(map[string]struct{}, len(c.ExcludeLangs))
		maps.Copy(clone.ExcludeLangs, c.ExcludeLangs)
	}
	clone.ContribThresholds = slices.Clone(c.ContribThresholds)
	clone.StarThresholds = slices.Clone(c.StarThresholds)
	clone.RepoThresholds = slices.Clone(c.RepoThresholds)
	return &clone
}
