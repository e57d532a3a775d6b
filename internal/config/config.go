package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. DATAEXPLORER_HEAD_ROWS.
const EnvPrefix = "DATAEXPLORER"

// Global configuration structure.
type Global struct {
	ZeroAsMissing bool   `mapstructure:"zero_as_missing" yaml:"zero_as_missing"`
	HeadRows      int    `mapstructure:"head_rows" yaml:"head_rows"`
	ChartDir      string `mapstructure:"chart_dir" yaml:"chart_dir"`
	ChartFormat   string `mapstructure:"chart_format" yaml:"chart_format"`
	// Chart size in inches
	ChartWidthIn  float64 `mapstructure:"chart_width_in" yaml:"chart_width_in"`
	ChartHeightIn float64 `mapstructure:"chart_height_in" yaml:"chart_height_in"`
	// Input delimiter override; empty means detect from the extension
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
}

var defaults = map[string]any{
	"zero_as_missing": false,
	"head_rows":       5,
	"chart_dir":       ".",
	"chart_format":    "png",
	"chart_width_in":  8.0,
	"chart_height_in": 5.0,
	"delimiter":       "",
	"log_level":       "warn",
}

var chartFormats = []string{"png", "svg", "pdf", "jpg", "jpeg", "tif", "tiff", "eps"}

// Keys lists the settable configuration keys.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() *Global {
	return &Global{
		HeadRows:      defaults["head_rows"].(int),
		ChartDir:      defaults["chart_dir"].(string),
		ChartFormat:   defaults["chart_format"].(string),
		ChartWidthIn:  defaults["chart_width_in"].(float64),
		ChartHeightIn: defaults["chart_height_in"].(float64),
		LogLevel:      defaults["log_level"].(string),
	}
}

// DefaultPath returns ~/.data-explorer/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".data-explorer", "config.yaml"), nil
}

// Save writes the given configuration to cfgFile, or to DefaultPath when
// cfgFile is empty, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Command flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(filepath.Dir(p))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects values the commands cannot use.
func (c *Global) Validate() error {
	if c.HeadRows < 0 {
		return fmt.Errorf("head_rows must be >= 0, got %d", c.HeadRows)
	}
	if c.ChartWidthIn <= 0 || c.ChartHeightIn <= 0 {
		return fmt.Errorf("chart size must be positive, got %gx%g", c.ChartWidthIn, c.ChartHeightIn)
	}
	if !validFormat(c.ChartFormat) {
		return fmt.Errorf("chart_format %q not supported (use %s)", c.ChartFormat, strings.Join(chartFormats, ", "))
	}
	return nil
}

func validFormat(f string) bool {
	f = strings.ToLower(strings.TrimPrefix(f, "."))
	for _, ok := range chartFormats {
		if f == ok {
			return true
		}
	}
	return false
}

// Set assigns a key from its string form.
func (c *Global) Set(key, value string) error {
	switch key {
	case "zero_as_missing":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid bool for %s: %w", key, err)
		}
		c.ZeroAsMissing = b
	case "head_rows":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid int for %s: %w", key, err)
		}
		c.HeadRows = n
	case "chart_dir":
		c.ChartDir = value
	case "chart_format":
		c.ChartFormat = strings.ToLower(strings.TrimPrefix(value, "."))
	case "chart_width_in", "chart_height_in":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid number for %s: %w", key, err)
		}
		if key == "chart_width_in" {
			c.ChartWidthIn = f
		} else {
			c.ChartHeightIn = f
		}
	case "delimiter":
		c.Delimiter = value
	case "log_level":
		c.LogLevel = strings.ToLower(value)
	default:
		return fmt.Errorf("unknown key: %s (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	return c.Validate()
}
