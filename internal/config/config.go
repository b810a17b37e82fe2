package config

import (
	"github.com/fsmod-labs/fsmod/internal/branding"
	"github.com/spf13/viper"
)

// Setting keys. Each maps to <PREFIX>_<KEY> in the environment.
const (
	KeyLogFile = "log_file"
	KeyColor   = "color"
)

// DefaultLogFile is the debug log path, relative to the working directory.
const DefaultLogFile = "log.txt"

// Load initializes Viper defaults and environment binding.
func Load() {
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyLogFile, DefaultLogFile)
	viper.SetDefault(KeyColor, true)
}

// LogFile returns the debug log path.
func LogFile() string {
	if v := viper.GetString(KeyLogFile); v != "" {
		return v
	}
	return DefaultLogFile
}

// ColorEnabled reports whether status output may be styled.
func ColorEnabled() bool {
	return viper.GetBool(KeyColor)
}
