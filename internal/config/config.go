package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"swatchbook/internal/archive"
)

// EnvPrefix is prepended to every environment override, e.g. SWATCHBOOK_OUTPUT_DIR.
const EnvPrefix = "SWATCHBOOK"

// Config holds all swatchbook settings.
type Config struct {
	OutputDir   string `mapstructure:"output_dir"`
	Extension   string `mapstructure:"extension"`
	Compression string `mapstructure:"compression"`
	Preview     bool   `mapstructure:"preview"`
	MetricsFile string `mapstructure:"metrics_file"`
}

// Load reads configuration with sensible defaults. An explicit path must
// exist; otherwise SWATCHBOOK_CONFIG or <user config dir>/swatchbook/config.*
// is read when present. Environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("output_dir", os.TempDir())
	v.SetDefault("extension", ".swatches")
	v.SetDefault("compression", "deflate")
	v.SetDefault("preview", false)
	v.SetDefault("metrics_file", "")

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "swatchbook"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if !strings.HasPrefix(cfg.Extension, ".") && cfg.Extension != "" {
		cfg.Extension = "." + cfg.Extension
	}
	return cfg, nil
}

// Validate checks the configuration for errors and returns helpful messages.
func (c *Config) Validate() error {
	var errs []string

	if c.OutputDir == "" {
		errs = append(errs, "output_dir is required")
	} else if info, err := os.Stat(c.OutputDir); err != nil {
		errs = append(errs, fmt.Sprintf("output_dir not accessible: %s", c.OutputDir))
	} else if !info.IsDir() {
		errs = append(errs, fmt.Sprintf("output_dir is not a directory: %s", c.OutputDir))
	}

	if c.Extension == "" {
		errs = append(errs, "extension is required")
	} else if strings.ContainsAny(c.Extension, `/\`) {
		errs = append(errs, fmt.Sprintf("extension must not contain path separators: %s", c.Extension))
	}

	if _, err := archive.ParseMethod(c.Compression); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}

// Method returns the zip compression method for Compression.
func (c *Config) Method() uint16 {
	m, err := archive.ParseMethod(c.Compression)
	if err != nil {
		return archive.DefaultMethod
	}
	return m
}
