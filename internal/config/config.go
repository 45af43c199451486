package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/thumbpouch/internal/logging"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	SymbolsUnicode = "unicode"
	SymbolsASCII   = "ascii"
)

// Config represents the application configuration
type Config struct {
	Color     string `toml:"color"`
	Symbols   string `toml:"symbols"`
	Prompt    string `toml:"prompt"`
	ShowRules bool   `toml:"show_rules"`
	LogLevel  string `toml:"log_level"`
	LogFile   string `toml:"log_file"`
	Theme     Theme  `toml:"theme"`
}

// Theme holds the hex colours used to draw the board. Empty values keep the
// terminal's default colour.
type Theme struct {
	Red    string `toml:"red"`
	Black  string `toml:"black"`
	Header string `toml:"header"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Color:     ColorAuto,
		Symbols:   SymbolsUnicode,
		Prompt:    "prompt :> ",
		ShowRules: true,
		LogLevel:  "warn",
		Theme: Theme{
			Red:    "#e03c31",
			Header: "#3fb4c9",
		},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "thumbpouch", "config.toml")
}

// LoadConfig loads the config file from its default location, creating it
// when missing, and applies environment overrides
func LoadConfig() (*Config, error) {
	return Load("")
}

// Load reads the config at path (the default location when empty) and
// applies environment overrides
func Load(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	var config *Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		config, err = createDefaultConfig(path)
		if err != nil {
			return nil, err
		}
	} else {
		config, err = decodeFile(path)
		if err != nil {
			return nil, err
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

func decodeFile(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) (*Config, error) {
	config := Default()
	if err := Save(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes config to path as TOML
func Save(path string, config *Config) error {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// Set updates one option by its TOML key
func (c *Config) Set(key, value string) error {
	switch key {
	case "color":
		c.Color = value
	case "symbols":
		c.Symbols = value
	case "prompt":
		c.Prompt = value
	case "show_rules":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("show_rules must be true or false, got %q", value)
		}
		c.ShowRules = b
	case "log_level":
		c.LogLevel = value
	case "log_file":
		c.LogFile = value
	case "theme.red":
		c.Theme.Red = value
	case "theme.black":
		c.Theme.Black = value
	case "theme.header":
		c.Theme.Header = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// applyEnv loads a .env file if present and lets THUMBPOUCH_* variables
// override the file
func (c *Config) applyEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error loading .env file: %w", err)
	}

	overrides := map[string]string{
		"THUMBPOUCH_COLOR":     "color",
		"THUMBPOUCH_SYMBOLS":   "symbols",
		"THUMBPOUCH_LOG_LEVEL": "log_level",
		"THUMBPOUCH_LOG_FILE":  "log_file",
	}
	for env, key := range overrides {
		if value := os.Getenv(env); value != "" {
			if err := c.Set(key, value); err != nil {
				return err
			}
		}
	}
	return nil
}

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validate checks option values without touching the filesystem
func (c *Config) Validate() ValidationResults {
	var results ValidationResults

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		results.Errors = append(results.Errors,
			fmt.Sprintf("color must be one of auto, always, never (got %q)", c.Color))
	}

	switch c.Symbols {
	case SymbolsUnicode, SymbolsASCII:
	default:
		results.Errors = append(results.Errors,
			fmt.Sprintf("symbols must be unicode or ascii (got %q)", c.Symbols))
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		results.Errors = append(results.Errors, err.Error())
	}

	themeColors := []struct {
		key   string
		value string
	}{
		{"theme.red", c.Theme.Red},
		{"theme.black", c.Theme.Black},
		{"theme.header", c.Theme.Header},
	}
	for _, tc := range themeColors {
		if tc.value == "" {
			continue
		}
		if _, err := colorful.Hex(tc.value); err != nil {
			results.Errors = append(results.Errors,
				fmt.Sprintf("%s is not a hex colour: %q", tc.key, tc.value))
		}
	}

	if strings.TrimSpace(c.Prompt) == "" {
		results.Warnings = append(results.Warnings, "prompt is empty")
	}
	if c.LogFile != "" && !filepath.IsAbs(c.LogFile) {
		results.Warnings = append(results.Warnings,
			fmt.Sprintf("log_file %q is relative to the directory the game is started from", c.LogFile))
	}

	return results
}
