// Package config resolves the sheetkit configuration. Viper stays contained
// in this package - the rest of the codebase receives an explicit Config
// struct. Sources are resolved in this order: flags > environment > config
// file > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the resolved configuration handed to the commands.
type Config struct {
	Credentials string
	Token       string
	Spreadsheet string
	URL         string
	RateLimit   float64
	Burst       int
	Verbose     bool
}

// Init sets the defaults, environment bindings and config file search paths.
// Environment variables use the SHEETKIT_ prefix with hyphens mapped to
// underscores (SHEETKIT_CREDENTIALS, SHEETKIT_RATE_LIMIT, ...); the config
// file is an optional
// $HOME/.sheetkit/config.yaml or ./config.yaml.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	workdir := filepath.Join(home, ".sheetkit")

	viper.SetDefault("credentials", filepath.Join(workdir, "client_secret.json"))
	viper.SetDefault("token", filepath.Join(workdir, "token.json"))
	viper.SetDefault("spreadsheet", "")
	viper.SetDefault("url", "")
	viper.SetDefault("rate-limit", 4.0)
	viper.SetDefault("burst", 8)
	viper.SetDefault("verbose", false)

	viper.SetEnvPrefix("SHEETKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(workdir)
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file (%w)", err)
		}
	}

	return nil
}

// Load returns the resolved configuration.
func Load() (Config, error) {
	cfg := Config{
		Credentials: viper.GetString("credentials"),
		Token:       viper.GetString("token"),
		Spreadsheet: viper.GetString("spreadsheet"),
		URL:         viper.GetString("url"),
		RateLimit:   viper.GetFloat64("rate-limit"),
		Burst:       viper.GetInt("burst"),
		Verbose:     viper.GetBool("verbose"),
	}

	if cfg.RateLimit <= 0 {
		return Config{}, fmt.Errorf("invalid rate-limit %v - must be positive", cfg.RateLimit)
	}

	if cfg.Burst < 1 {
		return Config{}, fmt.Errorf("invalid burst %v - must be at least 1", cfg.Burst)
	}

	return cfg, nil
}
