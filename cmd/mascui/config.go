package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the settings shared by the CLI commands. Flags take
// precedence over MASCUI_* environment variables, which take precedence over
// mascui.toml.
type Config struct {
	Port int
	Dir  string
	Open bool
	Out  string
}

// loadConfig reads configuration for cmd. The config file is MASCUI_CONFIG
// when set, otherwise mascui.toml in the working directory if present.
func loadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()

	v.SetDefault("port", 8000)
	v.SetDefault("dir", ".")
	v.SetDefault("open", true)
	v.SetDefault("out", "dist")

	v.SetConfigType("toml")
	if path := os.Getenv("MASCUI_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("mascui")
	}

	v.SetEnvPrefix("MASCUI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// appDir returns the positional app directory if given, else the configured one.
func (c Config) appDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return c.Dir
}
