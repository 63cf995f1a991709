// Package config provides configuration management for skillmart.
// It supports a YAML configuration file, environment variables, and
// sensible defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/skillmart/skillmart/internal/util"
)

// Config represents the complete skillmart configuration.
type Config struct {
	// Skills configures where skills and the active-skill state live
	Skills SkillsConfig `yaml:"skills"`

	// Marketplace configures skill sources
	Marketplace MarketplaceConfig `yaml:"marketplace"`

	// Output configures display preferences
	Output OutputConfig `yaml:"output"`
}

// SkillsConfig holds skill storage locations.
type SkillsConfig struct {
	// Dir is the directory installed skills live under, one subdirectory
	// per skill. Supports ~ expansion.
	Dir string `yaml:"dir"`
	// StateFile is the active-skill state file path. Supports ~ expansion.
	StateFile string `yaml:"state_file"`
}

// MarketplaceConfig holds marketplace settings.
type MarketplaceConfig struct {
	// SourcesFile is the TOML file listing marketplace repositories.
	SourcesFile string `yaml:"sources_file"`
}

// OutputConfig holds display preferences.
type OutputConfig struct {
	// Color controls color output (auto, always, never)
	Color string `yaml:"color"`
	// Verbose enables verbose output
	Verbose bool `yaml:"verbose"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Skills: SkillsConfig{
			Dir:       util.DefaultSkillsPath(),
			StateFile: util.DefaultStateFilePath(),
		},
		Marketplace: MarketplaceConfig{
			SourcesFile: util.DefaultSourcesFilePath(),
		},
		Output: OutputConfig{
			Color:   "auto",
			Verbose: false,
		},
	}
}

// configFileName is the name of the config file.
const configFileName = "config.yaml"

// FilePath returns the path to the config file.
func FilePath() string {
	return filepath.Join(util.SkillmartConfigPath(), configFileName)
}

// Load loads the configuration from file, merging with defaults.
// If the config file doesn't exist, returns default configuration.
func Load() (*Config, error) {
	cfg := Default()

	configPath := FilePath()
	// #nosec G304 - configPath is constructed from the trusted config directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvironment()
			cfg.expandPaths()
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnvironment()
	cfg.expandPaths()
	return cfg, nil
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	// #nosec G304 - path is provided by caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnvironment()
	cfg.expandPaths()
	return cfg, nil
}

// Save writes the configuration to the config file.
func (c *Config) Save() error {
	configPath := FilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// #nosec G306 - config file should be readable by user
	return os.WriteFile(configPath, data, 0o644)
}

// applyEnvironment applies environment variable overrides.
// Environment variables follow the pattern SKILLMART_<SECTION>_<KEY>.
func (c *Config) applyEnvironment() {
	if v := os.Getenv("SKILLMART_SKILLS_DIR"); v != "" {
		c.Skills.Dir = v
	}
	if v := os.Getenv("SKILLMART_STATE_FILE"); v != "" {
		c.Skills.StateFile = v
	}
	if v := os.Getenv("SKILLMART_SOURCES_FILE"); v != "" {
		c.Marketplace.SourcesFile = v
	}
	if v := os.Getenv("SKILLMART_OUTPUT_COLOR"); v != "" {
		c.Output.Color = v
	}
	if v := os.Getenv("SKILLMART_OUTPUT_VERBOSE"); v != "" {
		c.Output.Verbose = parseBool(v)
	}
}

// expandPaths resolves ~ in all configured locations.
func (c *Config) expandPaths() {
	c.Skills.Dir = util.ExpandPath(c.Skills.Dir, "")
	c.Skills.StateFile = util.ExpandPath(c.Skills.StateFile, "")
	c.Marketplace.SourcesFile = util.ExpandPath(c.Marketplace.SourcesFile, "")
}

// parseBool parses a boolean from common string representations.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// Exists returns true if a config file exists.
func Exists() bool {
	_, err := os.Stat(FilePath())
	return err == nil
}
