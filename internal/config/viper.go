// Package config provides environment loading and Viper-based
// hierarchical configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Parser struct {
		MinFragmentLength int    `mapstructure:"min_fragment_length" yaml:"min_fragment_length"`
		DefaultCurrency   string `mapstructure:"default_currency" yaml:"default_currency"`
	} `mapstructure:"parser" yaml:"parser"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Data struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"data" yaml:"data"`

	Tags struct {
		RulesFile string `mapstructure:"rules_file" yaml:"rules_file"`
	} `mapstructure:"tags" yaml:"tags"`
}

// Load initializes configuration with the hierarchy defaults < yaml
// config file < MOMO_-prefixed environment variables.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.momo-csv")
	v.AddConfigPath(".momo-csv")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MOMO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
		// No config file is fine; defaults and env vars apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("parser.min_fragment_length", 15)
	v.SetDefault("parser.default_currency", "UGX")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("data.directory", "data")

	v.SetDefault("tags.rules_file", "")
}

func validate(config *Config) error {
	switch config.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level: %s", config.Log.Level)
	}

	if config.Parser.MinFragmentLength < 0 {
		return fmt.Errorf("parser.min_fragment_length must not be negative")
	}

	if len(config.Parser.DefaultCurrency) != 3 {
		return fmt.Errorf("parser.default_currency must be a 3-letter code, got %q", config.Parser.DefaultCurrency)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv.delimiter must be a single character, got %q", config.CSV.Delimiter)
	}
	return nil
}
