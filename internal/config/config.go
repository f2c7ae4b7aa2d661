// Package config loads treectl configuration from flags, environment
// variables, .env files and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"treectl/internal/arglist"
	"treectl/internal/objtree"
	"treectl/internal/output"
	"treectl/internal/version"
)

// EnvPrefix prefixes every environment variable treectl reads.
const EnvPrefix = "TREECTL"

// Config is the resolved configuration.
type Config struct {
	LogLevel string `mapstructure:"log-level"`
	LogFile  string `mapstructure:"log-file"`
	Output   string `mapstructure:"output"`
	// Requires is the minimum treectl version the config file was written for.
	Requires string `mapstructure:"requires"`
	// Autostart holds command lines executed before the first user command.
	Autostart []string `mapstructure:"autostart"`
	// Attributes maps dotted attribute paths to the text assigned at startup.
	Attributes map[string]string `mapstructure:"-"`
	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// Load reads configuration into v and returns the result. configFile may be
// empty, in which case treectl.yaml is searched in the user config directory
// and the working directory; a missing file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v.SetDefault("log-level", "warn")
	v.SetDefault("output", "auto")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("treectl")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "treectl"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Attributes = flatten("", v.GetStringMap("attributes"))
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields that have a closed set of values.
func (c *Config) Validate() error {
	if _, ok := output.ParseMode(c.Output); !ok {
		return fmt.Errorf("invalid output mode '%s' (use auto, styled, plain or json)", c.Output)
	}
	if c.Requires != "" {
		cmp, err := version.CompareVersions(version.Version, c.Requires)
		if err != nil {
			return fmt.Errorf("invalid 'requires' in config: %w", err)
		}
		if cmp < 0 {
			return fmt.Errorf("config requires treectl %s or newer, this is %s", c.Requires, version.Version)
		}
	}
	return nil
}

// OutputMode returns the configured printer mode.
func (c *Config) OutputMode() output.Mode {
	mode, _ := output.ParseMode(c.Output)
	return mode
}

// Apply assigns every configured attribute through its converter, in path
// order. The first failure aborts and is returned with the offending path.
func (c *Config) Apply(root *objtree.Object) error {
	paths := make([]string, 0, len(c.Attributes))
	for path := range c.Attributes {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		attr, err := root.ResolveAttribute(arglist.SplitPath(path, arglist.DefaultPathDelimiter))
		if err != nil {
			return fmt.Errorf("config attribute %s: %w", path, err)
		}
		if err := attr.Change(c.Attributes[path]); err != nil {
			return fmt.Errorf("config attribute %s: %w", path, err)
		}
	}
	return nil
}

// loadDotEnv loads .env from the working directory and from the user config
// directory. Variables already set in the environment win.
func loadDotEnv() error {
	candidates := []string{".env"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "treectl", ".env"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// flatten turns nested YAML maps into dotted attribute paths. Scalars are
// rendered with fmt so "frame_gap: 3" and "frame_gap: '3'" are equivalent.
func flatten(prefix string, in map[string]interface{}) map[string]string {
	out := make(map[string]string)
	for key, value := range in {
		path := key
		if prefix != "" {
			path = prefix + string(arglist.DefaultPathDelimiter) + key
		}
		switch v := value.(type) {
		case map[string]interface{}:
			for p, text := range flatten(path, v) {
				out[p] = text
			}
		case map[interface{}]interface{}:
			nested := make(map[string]interface{}, len(v))
			for k, val := range v {
				nested[fmt.Sprint(k)] = val
			}
			for p, text := range flatten(path, nested) {
				out[p] = text
			}
		case nil:
			out[path] = ""
		default:
			out[path] = fmt.Sprint(v)
		}
	}
	return out
}
