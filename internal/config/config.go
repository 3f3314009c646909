// Package config holds process-level settings shared by every command.
// Values come from flags first, then YOLOTOOLS_* environment variables,
// then an optional .env file; nothing here is baked into stage logic.
package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings are the global knobs bound to the root command.
type Settings struct {
	Debug    bool
	LogLevel string
}

// Load primes viper with environment defaults. A .env file is loaded
// when present and silently skipped otherwise.
func Load() *Settings {
	_ = godotenv.Load()

	viper.SetEnvPrefix("YOLOTOOLS")
	viper.AutomaticEnv()
	viper.SetDefault("debug", false)
	viper.SetDefault("log_level", "info")

	return &Settings{
		Debug:    viper.GetBool("debug"),
		LogLevel: viper.GetString("log_level"),
	}
}
