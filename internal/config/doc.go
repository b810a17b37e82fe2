// Package config exposes the runtime settings of the CLI. Settings come from
// FSMOD_* environment variables through Viper; no configuration file is read
// or written.
package config
