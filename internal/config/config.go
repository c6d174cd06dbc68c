package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds operational defaults for a run. Command-line flags override
// these values; they exist so a deployment can pin an output directory or
// log level without repeating flags on every invocation.
type Config struct {
	Output   OutputConfig
	Log      LogConfig
	Progress ProgressConfig
}

type OutputConfig struct {
	Dir string
}

type LogConfig struct {
	Level  string
	Pretty bool
}

type ProgressConfig struct {
	Enabled bool
}

// Load reads configuration from an optional config.yaml and the
// environment. A missing config file is fine; env vars win over the file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	v.SetDefault("output.dir", ".")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("progress.enabled", true)

	// Override from environment
	v.BindEnv("output.dir", "OUTPUT_DIR")
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.pretty", "LOG_PRETTY")
	v.BindEnv("progress.enabled", "PROGRESS_ENABLED")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
