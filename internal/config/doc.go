// Package config stores user settings at ~/.doppio/config.yaml via Viper,
// with DOPPIO_* environment variables taking precedence over file values.
package config
