// Package config handles loading and validation of application
// configuration from environment variables and optional config files.
package config
